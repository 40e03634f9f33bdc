package service

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/hallowlabs/academy-backend/logger/xzap"
	"github.com/hallowlabs/academy-backend/service/svc"
)

const reconcileBatch = 100

// StartReconciler runs the periodic on-chain sweep: submissions still missing
// their contract-assigned id and enrollments not yet confirmed on-chain.
// Singleton mode keeps overlapping sweeps from racing each other.
func StartReconciler(s *svc.ServerCtx) (gocron.Scheduler, error) {
	interval := time.Duration(s.C.Reconcile.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			ReconcileSubmissions(ctx, s)
			ReconcileEnrollments(ctx, s)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

// ReconcileSubmissions backfills on-chain ids for entries in deployed
// contests. Individual RPC read failures skip the row; the next sweep
// retries it.
func ReconcileSubmissions(ctx context.Context, s *svc.ServerCtx) {
	submissions, err := s.Dao.GetSubmissionsMissingOnChainID(ctx, reconcileBatch)
	if err != nil {
		xzap.WithContext(ctx).Error("reconcile submission sweep failed", zap.Error(err))
		return
	}

	for _, submission := range submissions {
		record, err := s.Dao.GetContestByID(ctx, submission.ContestID)
		if err != nil || record.ContractAddress == "" {
			continue
		}
		onChainID, err := s.Voting.GetUserSubmission(ctx, record.ContractAddress, submission.SubmitterAddress)
		if err != nil {
			xzap.WithContext(ctx).Warn("on-chain submission read failed",
				zap.Uint("submission_id", submission.ID), zap.Error(err))
			continue
		}
		if onChainID == 0 {
			continue
		}
		if err := s.Dao.SetSubmissionOnChainID(ctx, submission.ID, onChainID); err != nil {
			xzap.WithContext(ctx).Warn("on-chain id backfill failed",
				zap.Uint("submission_id", submission.ID), zap.Error(err))
		}
	}
}

// ReconcileEnrollments confirms pending enrollment rows against the badge
// contract.
func ReconcileEnrollments(ctx context.Context, s *svc.ServerCtx) {
	enrollments, err := s.Dao.GetUnconfirmedEnrollments(ctx, reconcileBatch)
	if err != nil {
		xzap.WithContext(ctx).Error("reconcile enrollment sweep failed", zap.Error(err))
		return
	}

	for _, enrollment := range enrollments {
		record, err := s.Dao.GetCourseByID(ctx, enrollment.CourseID)
		if err != nil {
			continue
		}
		enrolled, err := s.Badge.IsEnrolled(ctx, courseToken(record), enrollment.WalletAddress)
		if err != nil {
			xzap.WithContext(ctx).Warn("badge contract read failed",
				zap.Uint("enrollment_id", enrollment.ID), zap.Error(err))
			continue
		}
		if !enrolled {
			continue
		}
		if err := s.Dao.SetEnrollmentOnChain(ctx, enrollment.ID); err != nil {
			xzap.WithContext(ctx).Warn("enrollment confirm failed",
				zap.Uint("enrollment_id", enrollment.ID), zap.Error(err))
		}
	}
}
