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

// CastVote records a wallet's vote. Vote row and the denormalized counter
// move inside one transaction in the dao layer.
func CastVote(ctx context.Context, s *svc.ServerCtx, req types.VoteRequest) (*contest.Vote, error) {
	address, err := xcommon.UnifyAddress(req.Address)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr(err.Error())
	}

	submission, err := s.Dao.GetSubmissionByID(ctx, req.SubmissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("submission not found")
		}
		return nil, errors.Wrap(err, "failed on get submission")
	}

	record, err := s.Dao.GetContestByID(ctx, submission.ContestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get contest")
	}
	if record.Status != contest.StatusActive && record.Status != contest.StatusVoting {
		return nil, errcode.NewInvalidParamsErr("contest is not open for voting")
	}

	// voters become users on first interaction
	if _, err := s.Dao.FindOrCreateUser(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed on find or create voter")
	}

	vote := &contest.Vote{
		SubmissionID: submission.ID,
		VoterAddress: address,
	}
	if err := s.Dao.CreateVote(ctx, vote); err != nil {
		if dao.IsUniqueViolation(err) {
			return nil, errcode.NewInvalidParamsErr("wallet already voted for this submission")
		}
		return nil, errors.Wrap(err, "failed on create vote")
	}
	return vote, nil
}

// RemoveVote deletes the wallet's vote, decrementing the counter in the same
// transaction.
func RemoveVote(ctx context.Context, s *svc.ServerCtx, req types.VoteRequest) error {
	address, err := xcommon.UnifyAddress(req.Address)
	if err != nil {
		return errcode.NewInvalidParamsErr(err.Error())
	}

	if err := s.Dao.DeleteVote(ctx, req.SubmissionID, address); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errcode.NewNotFoundErr("vote not found")
		}
		return errors.Wrap(err, "failed on delete vote")
	}
	return nil
}
