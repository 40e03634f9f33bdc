package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/hallowlabs/academy-backend/stores/gdb/contest"
)

// CreateVote inserts the vote row and bumps the denormalized counter inside
// one transaction, so vote_count never drifts from count(votes).
func (d *Dao) CreateVote(c context.Context, record *contest.Vote) error {
	return d.DB.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&contest.Submission{}).
			Where("id = ?", record.SubmissionID).
			Update("vote_count", gorm.Expr("vote_count + 1")).Error
	})
}

// DeleteVote removes a wallet's vote and decrements the counter in the same
// transaction. Returns gorm.ErrRecordNotFound when no vote exists.
func (d *Dao) DeleteVote(c context.Context, submissionID uint, voterAddress string) error {
	return d.DB.WithContext(c).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("submission_id = ? AND voter_address = ?", submissionID, voterAddress).
			Delete(&contest.Vote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&contest.Submission{}).
			Where("id = ?", submissionID).
			Update("vote_count", gorm.Expr("vote_count - 1")).Error
	})
}

func (d *Dao) GetVote(c context.Context, submissionID uint, voterAddress string) (*contest.Vote, error) {
	var record contest.Vote
	err := d.DB.WithContext(c).
		Where("submission_id = ? AND voter_address = ?", submissionID, voterAddress).
		First(&record).Error
	return &record, err
}

// CountVotes aggregates the vote rows directly. Read paths needing the exact
// figure use this instead of the denormalized counter.
func (d *Dao) CountVotes(c context.Context, submissionID uint) (int64, error) {
	var count int64
	err := d.DB.WithContext(c).Model(&contest.Vote{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error
	return count, err
}
