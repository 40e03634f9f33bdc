package svc

import (
	"context"
	"math/big"

	"github.com/hallowlabs/academy-backend/acl"
	"github.com/hallowlabs/academy-backend/config"
	"github.com/hallowlabs/academy-backend/contract"
	"github.com/hallowlabs/academy-backend/dao"
	"github.com/hallowlabs/academy-backend/logger/xzap"
)

// BadgeClient is the slice of the badge contract the services need. Tests
// swap in a double instead of dialing an RPC node.
type BadgeClient interface {
	IsEnrolled(ctx context.Context, tokenID int64, user string) (bool, error)
	BalanceOf(ctx context.Context, user string, tokenID int64) (*big.Int, error)
	Enroll(ctx context.Context, tokenID int64, user string) (string, error)
}

// VotingClient is the slice of the contest voting contract the services need.
type VotingClient interface {
	GetUserSubmission(ctx context.Context, contractAddress, user string) (int64, error)
	UpdateContestStatus(ctx context.Context, contractAddress string, status uint8) (string, error)
}

type ServerCtx struct {
	C      *config.Config
	Dao    *dao.Dao
	Badge  BadgeClient
	Voting VotingClient
	Acl    acl.Authorizer
}

func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	xzap.SetUp(c.Log.Mode)

	db, err := dao.NewGormDB(c.DB.DSN)
	if err != nil {
		return nil, err
	}

	badge, err := contract.NewBadgeContract(c)
	if err != nil {
		return nil, err
	}

	voting, err := contract.NewVotingContract(c)
	if err != nil {
		return nil, err
	}

	return &ServerCtx{
		C:      c,
		Dao:    dao.New(context.Background(), db),
		Badge:  badge,
		Voting: voting,
		Acl:    acl.NewAllowlist(c.Admin.Allowlist),
	}, nil
}
