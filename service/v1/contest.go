package service

import (
	"context"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/logger/xzap"
	"github.com/hallowlabs/academy-backend/service/svc"
	"github.com/hallowlabs/academy-backend/stores/gdb/contest"
	types "github.com/hallowlabs/academy-backend/types/v1"
)

// statusOnChain maps the status enum to the voting contract's uint8 encoding.
var statusOnChain = map[contest.ContestStatus]uint8{
	contest.StatusDraft:     0,
	contest.StatusActive:    1,
	contest.StatusVoting:    2,
	contest.StatusEnded:     3,
	contest.StatusCancelled: 4,
}

// CreateContest persists a new contest in DRAFT. The slug carries a unix
// timestamp suffix so no uniqueness pre-check is needed.
func CreateContest(ctx context.Context, s *svc.ServerCtx, creatorAddress string, req types.CreateContestRequest) (*contest.Contest, error) {
	prize, err := decimal.NewFromString(req.PrizeAmount)
	if err != nil || prize.IsNegative() {
		return nil, errcode.NewInvalidParamsErr("invalid prize amount")
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr("invalid start_time")
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr("invalid end_time")
	}
	votingEnd, err := time.Parse(time.RFC3339, req.VotingEndTime)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr("invalid voting_end_time")
	}
	if !end.After(start) || !votingEnd.After(end) {
		return nil, errcode.NewInvalidParamsErr("contest windows must be ordered: start < end < voting end")
	}

	creator, err := s.Dao.FindOrCreateUser(ctx, creatorAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed on find or create creator")
	}

	prizeToken := req.PrizeToken
	if prizeToken == "" {
		prizeToken = "ETH"
	}

	record := &contest.Contest{
		Slug:          slug.Make(req.Title) + "-" + strconv.FormatInt(time.Now().Unix(), 10),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		PrizeAmount:   prize,
		PrizeToken:    prizeToken,
		StartTime:     start,
		EndTime:       end,
		VotingEndTime: votingEnd,
		Status:        contest.StatusDraft,
		CreatorID:     creator.ID,
	}
	if err := s.Dao.CreateContest(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed on create contest")
	}
	return record, nil
}

func GetContests(ctx context.Context, s *svc.ServerCtx, status string, page, pageSize int) (*types.ContestListResp, error) {
	var filter contest.ContestStatus
	if status != "" {
		filter = contest.ContestStatus(status)
		if !filter.Valid() {
			return nil, errcode.NewInvalidParamsErr("unknown contest status")
		}
	}
	records, total, err := s.Dao.GetContestsByPage(ctx, filter, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed on list contests")
	}
	return &types.ContestListResp{Result: records, Total: total}, nil
}

func GetContestBySlug(ctx context.Context, s *svc.ServerCtx, contestSlug string) (*contest.Contest, error) {
	record, err := s.Dao.GetContestBySlug(ctx, contestSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("contest not found")
		}
		return nil, errors.Wrap(err, "failed on get contest")
	}
	return record, nil
}

func UpdateContest(ctx context.Context, s *svc.ServerCtx, id uint, req types.UpdateContestRequest) (*contest.Contest, error) {
	record, err := s.Dao.GetContestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("contest not found")
		}
		return nil, errors.Wrap(err, "failed on get contest")
	}

	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.Category != "" {
		record.Category = req.Category
	}
	if req.PrizeAmount != "" {
		prize, err := decimal.NewFromString(req.PrizeAmount)
		if err != nil || prize.IsNegative() {
			return nil, errcode.NewInvalidParamsErr("invalid prize amount")
		}
		record.PrizeAmount = prize
	}
	if req.PrizeToken != "" {
		record.PrizeToken = req.PrizeToken
	}
	if req.ContractAddress != "" {
		record.ContractAddress = req.ContractAddress
	}

	if err := s.Dao.UpdateContest(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed on update contest")
	}
	return record, nil
}

// UpdateContestStatus validates the move against the transition table before
// persisting. When the contest is deployed on-chain the transition is
// mirrored to the voting contract; the mirror is best-effort and a failed
// RPC write is logged, not rolled back, since the sweep cannot rewind an
// admin decision.
func UpdateContestStatus(ctx context.Context, s *svc.ServerCtx, id uint, status string) (*types.ContestStatusResp, error) {
	next := contest.ContestStatus(status)
	if !next.Valid() {
		return nil, errcode.NewInvalidParamsErr("unknown contest status")
	}

	record, err := s.Dao.GetContestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("contest not found")
		}
		return nil, errors.Wrap(err, "failed on get contest")
	}

	if !record.Status.CanTransition(next) {
		return nil, errcode.NewInvalidParamsErr("illegal status transition from " + string(record.Status))
	}

	if err := s.Dao.UpdateContestStatus(ctx, id, next); err != nil {
		return nil, errors.Wrap(err, "failed on update contest status")
	}

	resp := &types.ContestStatusResp{Status: next}
	if record.ContractAddress != "" {
		txHash, err := s.Voting.UpdateContestStatus(ctx, record.ContractAddress, statusOnChain[next])
		if err != nil {
			xzap.WithContext(ctx).Warn("on-chain status mirror failed",
				zap.Uint("contest_id", id), zap.Error(err))
		} else {
			resp.TxHash = txHash
		}
	}
	return resp, nil
}
