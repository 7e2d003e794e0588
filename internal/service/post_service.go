package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"microblog/internal/domain"
	"microblog/internal/repository"
)

// PostService coordinates micropost operations backed by the post repository.
type PostService interface {
	Create(ctx context.Context, authorID int64, content string) (*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	ByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, users: users}
}

func (s *postService) Create(ctx context.Context, authorID int64, content string) (*domain.Post, error) {
	var errs domain.ValidationErrors
	if strings.TrimSpace(content) == "" {
		errs = append(errs, domain.ValidationError{Field: "content", Kind: domain.Required})
	}
	if utf8.RuneCountInString(content) > domain.MaxPostLength {
		errs = append(errs, domain.ValidationError{Field: "content", Kind: domain.TooLong})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	// author must exist; the FK would reject the insert anyway but this way
	// the caller gets ErrNotFound instead of a constraint error
	if _, err := s.users.Get(ctx, authorID); err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.Get(ctx, id)
}

func (s *postService) ByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	return s.posts.ByAuthor(ctx, authorID)
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

func (s *postService) Count(ctx context.Context) (int64, error) {
	return s.posts.Count(ctx)
}
