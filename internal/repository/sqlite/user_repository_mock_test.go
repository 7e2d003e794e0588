package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/domain"
)

// Error paths that an in-memory database cannot produce are exercised with
// sqlmock.

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return &UserRepository{db: db}, mock, db
}

func TestUserCreateDBError(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("db down"))

	user := &domain.User{Name: "x", Email: "x@example.com", PasswordDigest: "d"}
	_, err := repo.Create(context.Background(), user)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailTaken)
	assert.Contains(t, err.Error(), "insert user")
}

func TestUserCreateUniqueErrorTranslated(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))

	user := &domain.User{Name: "x", Email: "x@example.com", PasswordDigest: "d"}
	_, err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserEmailTakenDBError(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("db down"))

	_, err := repo.EmailTaken(context.Background(), "x@example.com", 0)
	assert.Error(t, err)
}
