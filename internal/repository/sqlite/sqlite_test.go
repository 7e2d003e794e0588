package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"microblog/internal/domain"
)

// newTestDB opens an in-memory database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, NewUserRepository(db).Init(ctx))
	require.NoError(t, NewPostRepository(db).Init(ctx))
	require.NoError(t, NewFollowRepository(db).Init(ctx))
	return db
}

func seedUser(t *testing.T, db *sql.DB, name, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:           name,
		Email:          email,
		PasswordDigest: "digest",
	}
	_, err := NewUserRepository(db).Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func seedPost(t *testing.T, db *sql.DB, authorID int64, content string) *domain.Post {
	t.Helper()
	post := &domain.Post{AuthorID: authorID, Content: content}
	_, err := NewPostRepository(db).Create(context.Background(), post)
	require.NoError(t, err)
	// keep created_at strictly increasing for ordering assertions
	time.Sleep(2 * time.Millisecond)
	return post
}
