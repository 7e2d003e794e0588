package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"microblog/internal/dbx"
	"microblog/internal/domain"
	"microblog/internal/repository"
)

const createFollowsTable = `
CREATE TABLE IF NOT EXISTS follows (
	follower_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	followed_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	PRIMARY KEY (follower_id, followed_id)
);
`

type FollowRepository struct {
	db dbx.DBTX
}

func NewFollowRepository(db dbx.DBTX) repository.FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createFollowsTable); err != nil {
		return fmt.Errorf("create follows table: %w", err)
	}
	return nil
}

// Follow inserts the edge if absent. The composite primary key plus
// INSERT OR IGNORE makes concurrent duplicate calls collapse to one edge.
func (r *FollowRepository) Follow(ctx context.Context, followerID, followedID int64) error {
	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO follows (follower_id, followed_id, created_at)
VALUES (?, ?, ?)`,
		followerID, followedID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert follow: %w", err)
	}
	return nil
}

func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followedID int64) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM follows WHERE follower_id = ? AND followed_id = ?`,
		followerID, followedID,
	)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM follows WHERE follower_id = ? AND followed_id = ?`,
		followerID, followedID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count follow edge: %w", err)
	}
	return n > 0, nil
}

func (r *FollowRepository) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT u.id, u.name, u.email, u.password_digest, u.remember_digest, u.created_at, u.updated_at
FROM users u
JOIN follows f ON f.follower_id = u.id
WHERE f.followed_id = ?
ORDER BY u.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select followers: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *FollowRepository) Following(ctx context.Context, userID int64) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT u.id, u.name, u.email, u.password_digest, u.remember_digest, u.created_at, u.updated_at
FROM users u
JOIN follows f ON f.followed_id = u.id
WHERE f.follower_id = ?
ORDER BY u.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select following: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *FollowRepository) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM follows WHERE followed_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return n, nil
}

func (r *FollowRepository) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM follows WHERE follower_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count following: %w", err)
	}
	return n, nil
}

// DeleteAllForUser removes every edge the user participates in, on either
// side. Used when a user is destroyed.
func (r *FollowRepository) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM follows WHERE follower_id = ? OR followed_id = ?`,
		userID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete follows for user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("follows rows affected: %w", err)
	}
	return n, nil
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordDigest,
			&user.RememberDigest,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
