package dao

import (
	"context"

	"github.com/hallowlabs/academy-backend/stores/gdb/contest"
)

func (d *Dao) CreateContest(c context.Context, record *contest.Contest) error {
	return d.DB.WithContext(c).Create(record).Error
}

func (d *Dao) GetContestByID(c context.Context, id uint) (*contest.Contest, error) {
	var record contest.Contest
	err := d.DB.WithContext(c).First(&record, id).Error
	return &record, err
}

func (d *Dao) GetContestBySlug(c context.Context, slug string) (*contest.Contest, error) {
	var record contest.Contest
	err := d.DB.WithContext(c).
		Preload("Submissions").
		Where("slug = ?", slug).First(&record).Error
	return &record, err
}

// GetContestsByPage lists contests newest first, optionally filtered by status.
func (d *Dao) GetContestsByPage(c context.Context, status contest.ContestStatus, page, pageSize int) ([]contest.Contest, int64, error) {
	var (
		records []contest.Contest
		total   int64
	)
	query := d.DB.WithContext(c).Model(&contest.Contest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&records).Error
	return records, total, err
}

func (d *Dao) UpdateContest(c context.Context, record *contest.Contest) error {
	return d.DB.WithContext(c).Save(record).Error
}

func (d *Dao) UpdateContestStatus(c context.Context, id uint, status contest.ContestStatus) error {
	return d.DB.WithContext(c).Model(&contest.Contest{}).
		Where("id = ?", id).Update("status", status).Error
}
