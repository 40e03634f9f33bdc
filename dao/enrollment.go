package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hallowlabs/academy-backend/stores/gdb/course"
)

func (d *Dao) GetEnrollment(c context.Context, courseID uint, walletAddress string) (*course.CourseEnrollment, error) {
	var record course.CourseEnrollment
	err := d.DB.WithContext(c).
		Where("course_id = ? AND wallet_address = ?", courseID, walletAddress).
		First(&record).Error
	return &record, err
}

func (d *Dao) GetEnrollmentsByWallet(c context.Context, walletAddress string) ([]course.CourseEnrollment, error) {
	var records []course.CourseEnrollment
	err := d.DB.WithContext(c).
		Where("wallet_address = ?", walletAddress).
		Find(&records).Error
	return records, err
}

// UpsertEnrollment patches the cache row in place when the chain already
// knows the enrollment, creating it on first observation. on_chain can only
// move forward: a confirmed row is never flipped back to pending by a repeat
// enroll landing behind a confirmation.
func (d *Dao) UpsertEnrollment(c context.Context, record *course.CourseEnrollment) error {
	return d.DB.WithContext(c).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "course_id"}, {Name: "wallet_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"on_chain":   gorm.Expr("course_enrollments.on_chain OR excluded.on_chain"),
			"tx_hash":    gorm.Expr("excluded.tx_hash"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(record).Error
}

func (d *Dao) SetEnrollmentOnChain(c context.Context, id uint) error {
	return d.DB.WithContext(c).Model(&course.CourseEnrollment{}).
		Where("id = ?", id).Update("on_chain", true).Error
}

// GetUnconfirmedEnrollments feeds the reconciliation sweep.
func (d *Dao) GetUnconfirmedEnrollments(c context.Context, limit int) ([]course.CourseEnrollment, error) {
	var records []course.CourseEnrollment
	err := d.DB.WithContext(c).
		Where("on_chain = ?", false).
		Limit(limit).
		Find(&records).Error
	return records, err
}

// CountEnrollments reports confirmed enrollments for a course.
func (d *Dao) CountEnrollments(c context.Context, courseID uint) (int64, error) {
	var count int64
	err := d.DB.WithContext(c).Model(&course.CourseEnrollment{}).
		Where("course_id = ? AND on_chain = ?", courseID, true).
		Count(&count).Error
	return count, err
}
