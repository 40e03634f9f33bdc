package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallowlabs/academy-backend/stores/gdb/forms"
)

func TestDao_TryCreateContactMessage(t *testing.T) {
	d, mock := newMockDao(t)
	ctx := context.Background()

	t.Run("TableExists", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "contact_messages"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := d.TryCreateContactMessage(ctx, &forms.ContactMessage{Email: "a@b.io", Message: "hi"})
		require.NoError(t, err)
	})

	t.Run("MissingTableSoftFails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "contact_messages"`).
			WillReturnError(&pgconn.PgError{Code: "42P01"})
		mock.ExpectRollback()

		err := d.TryCreateContactMessage(ctx, &forms.ContactMessage{Email: "a@b.io", Message: "hi"})
		assert.ErrorIs(t, err, ErrTableNotPresent)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDao_TryCreateSubscriber(t *testing.T) {
	d, mock := newMockDao(t)
	ctx := context.Background()

	t.Run("DuplicateEmailIsSuccess", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "subscribers"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := d.TryCreateSubscriber(ctx, &forms.Subscriber{Email: "a@b.io"})
		require.NoError(t, err)
	})

	t.Run("MissingTableSoftFails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "subscribers"`).
			WillReturnError(&pgconn.PgError{Code: "42P01"})
		mock.ExpectRollback()

		err := d.TryCreateSubscriber(ctx, &forms.Subscriber{Email: "a@b.io"})
		assert.ErrorIs(t, err, ErrTableNotPresent)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
