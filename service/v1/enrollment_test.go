package service

import (
	"context"
	"math/big"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hallowlabs/academy-backend/dao"
	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	types "github.com/hallowlabs/academy-backend/types/v1"
)

const testWallet = "0x3c276c70Ad0447f5FbbeBC297793Be2A750704aE"

type fakeBadge struct {
	enrolled bool
	txHash   string
	err      error
	calls    int
}

func (f *fakeBadge) IsEnrolled(ctx context.Context, tokenID int64, user string) (bool, error) {
	f.calls++
	return f.enrolled, f.err
}

func (f *fakeBadge) BalanceOf(ctx context.Context, user string, tokenID int64) (*big.Int, error) {
	if f.enrolled {
		return big.NewInt(1), f.err
	}
	return big.NewInt(0), f.err
}

func (f *fakeBadge) Enroll(ctx context.Context, tokenID int64, user string) (string, error) {
	f.calls++
	return f.txHash, f.err
}

func newEnrollmentCtx(t *testing.T, badge *fakeBadge) (*svc.ServerCtx, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return &svc.ServerCtx{
		Dao:   dao.New(context.Background(), gdb),
		Badge: badge,
	}, mock
}

func courseRows(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "slug", "title"}).
		AddRow(id, "intro-to-solidity-1760000000", "Intro to Solidity")
}

func TestVerifyEnrollment_ChainIsAuthoritative(t *testing.T) {
	badge := &fakeBadge{enrolled: true}
	s, mock := newEnrollmentCtx(t, badge)

	mock.ExpectQuery(`SELECT \* FROM "courses"`).WillReturnRows(courseRows(4))
	// no cache row yet: the confirmed enrollment gets written through
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).AddRow(9, testWallet))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	resp, err := VerifyEnrollment(context.Background(), s, types.VerifyEnrollmentRequest{
		Address:  testWallet,
		CourseID: 4,
	})
	require.NoError(t, err)
	assert.True(t, resp.Enrolled)
	assert.False(t, resp.Cached)
	assert.Equal(t, CourseTokenID(4), resp.TokenID)
	assert.Equal(t, 1, badge.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyEnrollment_PatchesStaleCacheRow(t *testing.T) {
	badge := &fakeBadge{enrolled: true}
	s, mock := newEnrollmentCtx(t, badge)

	mock.ExpectQuery(`SELECT \* FROM "courses"`).WillReturnRows(courseRows(4))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "wallet_address", "on_chain"}).
			AddRow(21, 4, testWallet, false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "course_enrollments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := VerifyEnrollment(context.Background(), s, types.VerifyEnrollmentRequest{
		Address:  testWallet,
		CourseID: 4,
	})
	require.NoError(t, err)
	assert.True(t, resp.Enrolled)
	assert.True(t, resp.Cached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyEnrollment_NotEnrolledLeavesCacheAlone(t *testing.T) {
	badge := &fakeBadge{enrolled: false}
	s, mock := newEnrollmentCtx(t, badge)

	mock.ExpectQuery(`SELECT \* FROM "courses"`).WillReturnRows(courseRows(4))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := VerifyEnrollment(context.Background(), s, types.VerifyEnrollmentRequest{
		Address:  testWallet,
		CourseID: 4,
	})
	require.NoError(t, err)
	assert.False(t, resp.Enrolled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyEnrollment_RPCFailurePropagates(t *testing.T) {
	badge := &fakeBadge{err: errors.New("rpc: connection refused")}
	s, mock := newEnrollmentCtx(t, badge)

	mock.ExpectQuery(`SELECT \* FROM "courses"`).WillReturnRows(courseRows(4))

	_, err := VerifyEnrollment(context.Background(), s, types.VerifyEnrollmentRequest{
		Address:  testWallet,
		CourseID: 4,
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnroll_CachesPendingRow(t *testing.T) {
	badge := &fakeBadge{txHash: "0xfeedface"}
	s, mock := newEnrollmentCtx(t, badge)

	mock.ExpectQuery(`SELECT \* FROM "courses"`).WillReturnRows(courseRows(4))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).AddRow(9, testWallet))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))
	mock.ExpectCommit()

	resp, err := Enroll(context.Background(), s, types.EnrollRequest{
		Address:  testWallet,
		CourseID: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "0xfeedface", resp.TxHash)
	assert.Equal(t, CourseTokenID(4), resp.TokenID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnroll_ConfirmedWalletGetsNoSecondTx(t *testing.T) {
	badge := &fakeBadge{txHash: "0xfeedface"}
	s, mock := newEnrollmentCtx(t, badge)

	mock.ExpectQuery(`SELECT \* FROM "courses"`).WillReturnRows(courseRows(4))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "wallet_address", "on_chain"}).
			AddRow(21, 4, testWallet, true))

	_, err := Enroll(context.Background(), s, types.EnrollRequest{
		Address:  testWallet,
		CourseID: 4,
	})
	require.Error(t, err)

	var apiErr *errcode.Err
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
	assert.Equal(t, 0, badge.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnroll_PendingWalletMayRetry(t *testing.T) {
	badge := &fakeBadge{txHash: "0xfeedface"}
	s, mock := newEnrollmentCtx(t, badge)

	mock.ExpectQuery(`SELECT \* FROM "courses"`).WillReturnRows(courseRows(4))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "wallet_address", "on_chain"}).
			AddRow(21, 4, testWallet, false))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).AddRow(9, testWallet))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	resp, err := Enroll(context.Background(), s, types.EnrollRequest{
		Address:  testWallet,
		CourseID: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "0xfeedface", resp.TxHash)
	assert.Equal(t, 1, badge.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
