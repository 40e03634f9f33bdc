package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	xcommon "github.com/hallowlabs/academy-backend/common"
	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	"github.com/hallowlabs/academy-backend/stores/gdb/course"
	types "github.com/hallowlabs/academy-backend/types/v1"
)

func courseToken(record *course.Course) int64 {
	if record.BadgeTokenID != nil {
		return *record.BadgeTokenID
	}
	return CourseTokenID(record.ID)
}

// VerifyEnrollment answers whether a wallet holds the course badge. The badge
// contract is authoritative; when the chain reports an enrollment the local
// cache row is patched in place, at most once per call. RPC failures
// propagate to the caller as a 500.
func VerifyEnrollment(ctx context.Context, s *svc.ServerCtx, req types.VerifyEnrollmentRequest) (*types.EnrollmentStatusResp, error) {
	address, err := xcommon.UnifyAddress(req.Address)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr(err.Error())
	}

	record, err := s.Dao.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("course not found")
		}
		return nil, errors.Wrap(err, "failed on get course")
	}
	tokenID := courseToken(record)

	enrolled, err := s.Badge.IsEnrolled(ctx, tokenID, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed on read badge contract")
	}

	resp := &types.EnrollmentStatusResp{
		CourseID: record.ID,
		TokenID:  tokenID,
		Enrolled: enrolled,
	}

	cached, err := s.Dao.GetEnrollment(ctx, record.ID, address)
	switch {
	case err == nil:
		resp.Cached = true
		if enrolled && !cached.OnChain {
			if err := s.Dao.SetEnrollmentOnChain(ctx, cached.ID); err != nil {
				return nil, errors.Wrap(err, "failed on patch enrollment cache")
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if enrolled {
			user, err := s.Dao.FindOrCreateUser(ctx, address)
			if err != nil {
				return nil, errors.Wrap(err, "failed on find or create user")
			}
			err = s.Dao.UpsertEnrollment(ctx, &course.CourseEnrollment{
				CourseID:      record.ID,
				UserID:        user.ID,
				WalletAddress: address,
				OnChain:       true,
			})
			if err != nil {
				return nil, errors.Wrap(err, "failed on cache enrollment")
			}
		}
	default:
		return nil, errors.Wrap(err, "failed on read enrollment cache")
	}
	return resp, nil
}

// Enroll submits the on-chain enrollment through the operator wallet and
// caches the pending row keyed by the returned tx hash. Confirmation lands
// via the reconcile sweep or a later VerifyEnrollment call.
func Enroll(ctx context.Context, s *svc.ServerCtx, req types.EnrollRequest) (*types.EnrollResp, error) {
	address, err := xcommon.UnifyAddress(req.Address)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr(err.Error())
	}

	record, err := s.Dao.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("course not found")
		}
		return nil, errors.Wrap(err, "failed on get course")
	}
	tokenID := courseToken(record)

	// a confirmed wallet gets no second operator tx
	cached, err := s.Dao.GetEnrollment(ctx, record.ID, address)
	switch {
	case err == nil && cached.OnChain:
		return nil, errcode.NewInvalidParamsErr("wallet already enrolled in this course")
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errors.Wrap(err, "failed on read enrollment cache")
	}

	txHash, err := s.Badge.Enroll(ctx, tokenID, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed on submit enroll tx")
	}

	user, err := s.Dao.FindOrCreateUser(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed on find or create user")
	}
	err = s.Dao.UpsertEnrollment(ctx, &course.CourseEnrollment{
		CourseID:      record.ID,
		UserID:        user.ID,
		WalletAddress: address,
		OnChain:       false,
		TxHash:        txHash,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed on cache pending enrollment")
	}

	return &types.EnrollResp{CourseID: record.ID, TokenID: tokenID, TxHash: txHash}, nil
}

func GetEnrollments(ctx context.Context, s *svc.ServerCtx, address string) (*types.EnrollmentListResp, error) {
	unified, err := xcommon.UnifyAddress(address)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr(err.Error())
	}
	records, err := s.Dao.GetEnrollmentsByWallet(ctx, unified)
	if err != nil {
		return nil, errors.Wrap(err, "failed on list enrollments")
	}
	return &types.EnrollmentListResp{Result: records}, nil
}
