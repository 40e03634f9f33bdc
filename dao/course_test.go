package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallowlabs/academy-backend/stores/gdb/course"
)

func courseTree() *course.Course {
	return &course.Course{
		Slug:        "intro-to-solidity-1700000000",
		Title:       "Intro to Solidity",
		Description: "first steps",
		Modules: []course.Module{
			{
				Title: "Basics",
				Index: 0,
				Lessons: []course.Lesson{
					{Title: "Hello chain", Index: 0},
					{Title: "Storage", Index: 1},
				},
			},
		},
	}
}

func TestDao_CreateCourseTree(t *testing.T) {
	d, mock := newMockDao(t)
	ctx := context.Background()

	t.Run("AllRowsInOneTransaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "courses"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectQuery(`INSERT INTO "modules"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectQuery(`INSERT INTO "lessons"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))
		mock.ExpectCommit()

		record := courseTree()
		require.NoError(t, d.CreateCourseTree(ctx, record))
		assert.Equal(t, uint(5), record.ID)
	})

	t.Run("LessonFailureLeavesNoPartialRows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "courses"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
		mock.ExpectQuery(`INSERT INTO "modules"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectQuery(`INSERT INTO "lessons"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := d.CreateCourseTree(ctx, courseTree())
		require.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
