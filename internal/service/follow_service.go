package service

import (
	"context"

	"microblog/internal/domain"
	"microblog/internal/repository"
)

// FollowService manages the directed follow graph between users.
type FollowService interface {
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	Followers(ctx context.Context, userID int64) ([]domain.User, error)
	Following(ctx context.Context, userID int64) ([]domain.User, error)
	FollowerCount(ctx context.Context, userID int64) (int64, error)
	FollowingCount(ctx context.Context, userID int64) (int64, error)
}

type followService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) FollowService {
	return &followService{follows: follows, users: users}
}

// Follow creates the edge follower→followed. Repeated calls are no-ops;
// self-follow is rejected.
func (s *followService) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return domain.ErrSelfFollow
	}
	if _, err := s.users.Get(ctx, followedID); err != nil {
		return err
	}
	return s.follows.Follow(ctx, followerID, followedID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	return s.follows.Unfollow(ctx, followerID, followedID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, followedID)
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	return s.follows.Followers(ctx, userID)
}

func (s *followService) Following(ctx context.Context, userID int64) ([]domain.User, error) {
	return s.follows.Following(ctx, userID)
}

func (s *followService) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	return s.follows.FollowerCount(ctx, userID)
}

func (s *followService) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	return s.follows.FollowingCount(ctx, userID)
}
