package repository

import (
	"context"

	"microblog/internal/domain"
)

// FollowRepository manages the directed follow edge set. Inserts are
// idempotent: the composite primary key guarantees at most one edge per pair.
type FollowRepository interface {
	Init(ctx context.Context) error
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	Followers(ctx context.Context, userID int64) ([]domain.User, error)
	Following(ctx context.Context, userID int64) ([]domain.User, error)
	FollowerCount(ctx context.Context, userID int64) (int64, error)
	FollowingCount(ctx context.Context, userID int64) (int64, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}
