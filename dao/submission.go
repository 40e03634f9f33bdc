package dao

import (
	"context"

	"github.com/hallowlabs/academy-backend/stores/gdb/contest"
)

func (d *Dao) CreateSubmission(c context.Context, record *contest.Submission) error {
	return d.DB.WithContext(c).Create(record).Error
}

func (d *Dao) GetSubmissionByID(c context.Context, id uint) (*contest.Submission, error) {
	var record contest.Submission
	err := d.DB.WithContext(c).First(&record, id).Error
	return &record, err
}

// GetSubmission looks up a wallet's entry in a contest. Used as the
// duplicate pre-check; the unique index remains the real guarantee.
func (d *Dao) GetSubmission(c context.Context, contestID uint, submitterAddress string) (*contest.Submission, error) {
	var record contest.Submission
	err := d.DB.WithContext(c).
		Where("contest_id = ? AND submitter_address = ?", contestID, submitterAddress).
		First(&record).Error
	return &record, err
}

func (d *Dao) GetSubmissionsByContest(c context.Context, contestID uint, orderBy string) ([]contest.Submission, error) {
	var records []contest.Submission
	err := d.DB.WithContext(c).
		Where("contest_id = ?", contestID).
		Order(orderBy).
		Find(&records).Error
	return records, err
}

func (d *Dao) SetSubmissionOnChainID(c context.Context, id uint, onChainID int64) error {
	return d.DB.WithContext(c).Model(&contest.Submission{}).
		Where("id = ?", id).Update("on_chain_id", onChainID).Error
}

// GetSubmissionsMissingOnChainID feeds the reconciliation sweep: entries in
// contests that have a contract address but no backfilled on-chain id yet.
func (d *Dao) GetSubmissionsMissingOnChainID(c context.Context, limit int) ([]contest.Submission, error) {
	var records []contest.Submission
	err := d.DB.WithContext(c).
		Joins("JOIN contests ON contests.id = submissions.contest_id").
		Where("submissions.on_chain_id IS NULL AND contests.contract_address <> ''").
		Limit(limit).
		Find(&records).Error
	return records, err
}
