package credentials

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/pkg/dbmetrics"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := setupMockDB(t)
	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions (id,user_id,role,access_token,refresh_token) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs("s1", int64(3), "doctor", "a1", "r1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	session := newSession("s1")
	require.NoError(t, repo.Create(context.Background(), session))
	assert.Equal(t, created, session.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("INSERT INTO sessions").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.Create(context.Background(), newSession("s1"))
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	columns := []string{"id", "user_id", "role", "access_token", "refresh_token", "created_at", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE id = $1")).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("s1", int64(3), "receptionist", "a1", "r1", now, now))

	session, err := repo.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleReceptionist, session.Role)
	assert.Equal(t, domain.Credentials{AccessToken: "a1", RefreshToken: "r1"}, session.Credentials)

	mock.ExpectQuery("FROM sessions").WithArgs("missing").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	mock.ExpectQuery("FROM sessions").WithArgs("bad").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("bad", int64(3), "superuser", "a1", "r1", now, now))
	_, err = repo.GetByID(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestRepository_UpdateTokensAndDelete(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions SET access_token = $1, refresh_token = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("a2", "r2", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = $1")).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateTokens(context.Background(), "s1", domain.Credentials{AccessToken: "a2", RefreshToken: "r2"}))
	assert.ErrorIs(t, repo.Delete(context.Background(), "s1"), ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Touch(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions SET updated_at = NOW() WHERE id = $1")).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions SET updated_at = NOW() WHERE id = $1")).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Touch(context.Background(), "s1"))
	assert.ErrorIs(t, repo.Touch(context.Background(), "gone"), ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
