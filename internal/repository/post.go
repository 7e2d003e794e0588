package repository

import (
	"context"

	"microblog/internal/domain"
)

// PostRepository exposes persistence operations for microposts.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	ByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error)
	// Feed lists posts authored by userID or by anyone userID follows,
	// most recent first.
	Feed(ctx context.Context, userID int64) ([]domain.Post, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllByAuthor(ctx context.Context, authorID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
