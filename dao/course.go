package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/hallowlabs/academy-backend/stores/gdb/course"
)

// CreateCourseTree persists a course with its modules and lessons in a single
// transaction. A failure anywhere leaves no partial rows.
func (d *Dao) CreateCourseTree(c context.Context, record *course.Course) error {
	return d.DB.WithContext(c).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

func (d *Dao) GetCourseByID(c context.Context, id uint) (*course.Course, error) {
	var record course.Course
	err := d.DB.WithContext(c).First(&record, id).Error
	return &record, err
}

func (d *Dao) GetCourseBySlug(c context.Context, slug string) (*course.Course, error) {
	var record course.Course
	err := d.DB.WithContext(c).
		Preload("Category").
		Preload("Level").
		Preload("Instructor").
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("modules.index ASC")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.index ASC")
		}).
		Where("slug = ?", slug).First(&record).Error
	return &record, err
}

func (d *Dao) GetCoursesByPage(c context.Context, page, pageSize int) ([]course.Course, int64, error) {
	var (
		records []course.Course
		total   int64
	)
	query := d.DB.WithContext(c).Model(&course.Course{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Category").Preload("Level").Preload("Instructor").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&records).Error
	return records, total, err
}

func (d *Dao) SetCourseBadgeTokenID(c context.Context, id uint, tokenID int64) error {
	return d.DB.WithContext(c).Model(&course.Course{}).
		Where("id = ?", id).Update("badge_token_id", tokenID).Error
}

func (d *Dao) ListCategories(c context.Context) ([]course.Category, error) {
	var records []course.Category
	err := d.DB.WithContext(c).Order("name ASC").Find(&records).Error
	return records, err
}

func (d *Dao) CreateCategory(c context.Context, record *course.Category) error {
	return d.DB.WithContext(c).Create(record).Error
}

func (d *Dao) ListLevels(c context.Context) ([]course.Level, error) {
	var records []course.Level
	err := d.DB.WithContext(c).Order("rank ASC").Find(&records).Error
	return records, err
}

func (d *Dao) CreateLevel(c context.Context, record *course.Level) error {
	return d.DB.WithContext(c).Create(record).Error
}

func (d *Dao) ListInstructors(c context.Context) ([]course.Instructor, error) {
	var records []course.Instructor
	err := d.DB.WithContext(c).Order("name ASC").Find(&records).Error
	return records, err
}

func (d *Dao) CreateInstructor(c context.Context, record *course.Instructor) error {
	return d.DB.WithContext(c).Create(record).Error
}
