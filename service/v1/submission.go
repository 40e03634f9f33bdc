package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	xcommon "github.com/hallowlabs/academy-backend/common"
	"github.com/hallowlabs/academy-backend/dao"
	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	"github.com/hallowlabs/academy-backend/stores/gdb/contest"
	types "github.com/hallowlabs/academy-backend/types/v1"
)

// CreateSubmission enforces one entry per wallet per contest. The lookup
// before insert exists only for the friendly error message; a concurrent
// duplicate that slips past it is caught by the unique index and mapped to
// the same 400.
func CreateSubmission(ctx context.Context, s *svc.ServerCtx, req types.CreateSubmissionRequest) (*contest.Submission, error) {
	address, err := xcommon.UnifyAddress(req.Address)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr(err.Error())
	}

	record, err := s.Dao.GetContestByID(ctx, req.ContestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("contest not found")
		}
		return nil, errors.Wrap(err, "failed on get contest")
	}
	if record.Status != contest.StatusActive {
		return nil, errcode.NewInvalidParamsErr("contest is not accepting submissions")
	}

	submitter, err := s.Dao.FindOrCreateUser(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed on find or create submitter")
	}

	if _, err := s.Dao.GetSubmission(ctx, req.ContestID, address); err == nil {
		return nil, errcode.NewInvalidParamsErr("wallet already submitted to this contest")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed on submission pre-check")
	}

	submission := &contest.Submission{
		ContestID:        req.ContestID,
		SubmitterID:      submitter.ID,
		SubmitterAddress: address,
		MediaURL:         req.MediaURL,
		MediaType:        req.MediaType,
		Description:      req.Description,
	}
	if err := s.Dao.CreateSubmission(ctx, submission); err != nil {
		if dao.IsUniqueViolation(err) {
			return nil, errcode.NewInvalidParamsErr("wallet already submitted to this contest")
		}
		return nil, errors.Wrap(err, "failed on create submission")
	}
	return submission, nil
}

func GetContestSubmissions(ctx context.Context, s *svc.ServerCtx, contestSlug, sort string) (*types.SubmissionListResp, error) {
	record, err := GetContestBySlug(ctx, s, contestSlug)
	if err != nil {
		return nil, err
	}

	orderBy := "created_at DESC"
	if sort == "votes" {
		orderBy = "vote_count DESC, created_at DESC"
	}
	submissions, err := s.Dao.GetSubmissionsByContest(ctx, record.ID, orderBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed on list submissions")
	}
	return &types.SubmissionListResp{Result: submissions}, nil
}

// SyncSubmissionOnChainID reconciles a submission's contract-assigned id.
// Reads the voting contract at most once per call and patches the row in
// place when the chain knows an id the database lacks.
func SyncSubmissionOnChainID(ctx context.Context, s *svc.ServerCtx, submissionID uint) (*types.OnChainIDResp, error) {
	submission, err := s.Dao.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("submission not found")
		}
		return nil, errors.Wrap(err, "failed on get submission")
	}

	if submission.OnChainID != nil {
		return &types.OnChainIDResp{SubmissionID: submission.ID, OnChainID: submission.OnChainID}, nil
	}

	record, err := s.Dao.GetContestByID(ctx, submission.ContestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get contest")
	}
	if record.ContractAddress == "" {
		return nil, errcode.NewInvalidParamsErr("contest has no on-chain contract")
	}

	onChainID, err := s.Voting.GetUserSubmission(ctx, record.ContractAddress, submission.SubmitterAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed on read on-chain submission")
	}

	if onChainID > 0 {
		if err := s.Dao.SetSubmissionOnChainID(ctx, submission.ID, onChainID); err != nil {
			return nil, errors.Wrap(err, "failed on backfill on-chain id")
		}
		submission.OnChainID = &onChainID
	}
	return &types.OnChainIDResp{SubmissionID: submission.ID, OnChainID: submission.OnChainID}, nil
}
