package service

import (
	"context"

	"microblog/internal/domain"
	"microblog/internal/repository"
)

// FeedService answers which posts a user sees: their own plus those of every
// user they follow.
type FeedService interface {
	Feed(ctx context.Context, userID int64) ([]domain.Post, error)
}

type feedService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewFeedService(posts repository.PostRepository, users repository.UserRepository) FeedService {
	return &feedService{posts: posts, users: users}
}

func (s *feedService) Feed(ctx context.Context, userID int64) ([]domain.Post, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.posts.Feed(ctx, userID)
}
