package dao

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hallowlabs/academy-backend/stores/gdb/account"
	"github.com/hallowlabs/academy-backend/stores/gdb/contest"
	"github.com/hallowlabs/academy-backend/stores/gdb/course"
)

type Dao struct {
	ctx context.Context
	DB  *gorm.DB
}

func New(ctx context.Context, db *gorm.DB) *Dao {
	return &Dao{
		ctx: ctx,
		DB:  db,
	}
}

// NewGormDB opens the postgres connection and migrates the core schema. The
// optional forms tables are deliberately left out of AutoMigrate (see
// TryCreateContactMessage).
func NewGormDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed on open postgres")
	}

	err = db.AutoMigrate(
		&account.User{},
		&contest.Contest{},
		&contest.Submission{},
		&contest.Vote{},
		&course.Course{},
		&course.Module{},
		&course.Lesson{},
		&course.Category{},
		&course.Level{},
		&course.Instructor{},
		&course.CourseEnrollment{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed on migrate schema")
	}
	return db, nil
}

// IsUniqueViolation reports a postgres unique constraint failure (23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsUndefinedTable reports an access to a table that was never migrated
// (42P01). Best-effort writes treat this as a soft failure.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
