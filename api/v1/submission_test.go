package v1_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/hallowlabs/academy-backend/types/v1"
)

func validSubmissionBody() types.CreateSubmissionRequest {
	return types.CreateSubmissionRequest{
		ContestID: 5,
		Address:   userWallet,
		MediaURL:  "https://cdn.example.com/pumpkin.png",
		MediaType: "image",
	}
}

func TestCreateSubmissionHandler(t *testing.T) {
	contestRow := func(status string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "slug", "status"}).
			AddRow(5, "spooky-pumpkin-carving-1760000000", status)
	}

	t.Run("malformed address", func(t *testing.T) {
		ts := newTestServer(t)
		body := validSubmissionBody()
		body.Address = "not-an-address"
		w := ts.request(t, http.MethodPost, "/api/v1/submissions", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing contest", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mock.ExpectQuery(`SELECT \* FROM "contests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

		w := ts.request(t, http.MethodPost, "/api/v1/submissions", "", validSubmissionBody())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("contest not accepting submissions", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mock.ExpectQuery(`SELECT \* FROM "contests"`).
			WillReturnRows(contestRow("DRAFT"))

		w := ts.request(t, http.MethodPost, "/api/v1/submissions", "", validSubmissionBody())
		env := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, env.httpStatus)
		assert.Contains(t, env.Msg, "not accepting submissions")
	})

	t.Run("first entry is created", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mock.ExpectQuery(`SELECT \* FROM "contests"`).
			WillReturnRows(contestRow("ACTIVE"))
		ts.mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).AddRow(3, userWallet))
		ts.mock.ExpectQuery(`SELECT \* FROM "submissions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		ts.mock.ExpectBegin()
		ts.mock.ExpectQuery(`INSERT INTO "submissions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		ts.mock.ExpectCommit()

		w := ts.request(t, http.MethodPost, "/api/v1/submissions", "", validSubmissionBody())
		require.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, ts.mock.ExpectationsWereMet())
	})

	t.Run("second entry from same wallet is rejected", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mock.ExpectQuery(`SELECT \* FROM "contests"`).
			WillReturnRows(contestRow("ACTIVE"))
		ts.mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).AddRow(3, userWallet))
		ts.mock.ExpectQuery(`SELECT \* FROM "submissions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "contest_id"}).AddRow(11, 5))

		w := ts.request(t, http.MethodPost, "/api/v1/submissions", "", validSubmissionBody())
		env := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, env.httpStatus)
		assert.Contains(t, env.Msg, "already submitted")
	})
}
