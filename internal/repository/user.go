package repository

import (
	"context"

	"microblog/internal/domain"
)

// UserRepository defines persistence operations for User records.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRememberDigest(ctx context.Context, id int64, digest string) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
