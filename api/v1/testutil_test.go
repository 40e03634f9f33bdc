package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hallowlabs/academy-backend/acl"
	"github.com/hallowlabs/academy-backend/api/middleware"
	"github.com/hallowlabs/academy-backend/api/router"
	"github.com/hallowlabs/academy-backend/config"
	"github.com/hallowlabs/academy-backend/dao"
	"github.com/hallowlabs/academy-backend/service/svc"
)

const (
	adminWallet = "0x3c276c70Ad0447f5FbbeBC297793Be2A750704aE"
	userWallet  = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
)

type stubBadge struct {
	enrolled bool
	balance  *big.Int
	txHash   string
	err      error
}

func (s *stubBadge) IsEnrolled(ctx context.Context, tokenID int64, user string) (bool, error) {
	return s.enrolled, s.err
}

func (s *stubBadge) BalanceOf(ctx context.Context, user string, tokenID int64) (*big.Int, error) {
	if s.balance == nil {
		return big.NewInt(0), s.err
	}
	return s.balance, s.err
}

func (s *stubBadge) Enroll(ctx context.Context, tokenID int64, user string) (string, error) {
	return s.txHash, s.err
}

type stubVoting struct {
	submissionID int64
	txHash       string
	err          error
}

func (s *stubVoting) GetUserSubmission(ctx context.Context, contractAddress, user string) (int64, error) {
	return s.submissionID, s.err
}

func (s *stubVoting) UpdateContestStatus(ctx context.Context, contractAddress string, status uint8) (string, error) {
	return s.txHash, s.err
}

type testServer struct {
	engine *gin.Engine
	mock   sqlmock.Sqlmock
	badge  *stubBadge
	voting *stubVoting
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	badge := &stubBadge{}
	voting := &stubVoting{}
	svcCtx := &svc.ServerCtx{
		C: &config.Config{
			Api: config.ApiConf{Mode: "dev", AllowOrigins: []string{"http://localhost:3000"}},
		},
		Dao:    dao.New(context.Background(), gdb),
		Badge:  badge,
		Voting: voting,
		Acl:    acl.NewAllowlist([]string{adminWallet}),
	}

	return &testServer{
		engine: router.NewRouter(svcCtx),
		mock:   mock,
		badge:  badge,
		voting: voting,
	}
}

func (ts *testServer) request(t *testing.T, method, path, wallet string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if wallet != "" {
		req.Header.Set(middleware.WalletHeader, wallet)
	}

	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`

	httpStatus int
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	e.httpStatus = w.Code
	return e
}
