package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"microblog/internal/credentials"
	"microblog/internal/dbx"
	"microblog/internal/domain"
	"microblog/internal/repository"
	"microblog/internal/repository/sqlite"
	"microblog/internal/validation"
)

// RememberKind selects the persistent-login digest in Authenticated.
const RememberKind = "remember"

// UserService orchestrates the user lifecycle: validated create/update,
// authentication, remember tokens, and transactional destroy.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Update(ctx context.Context, id int64, name, email string, password *string) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Remember(ctx context.Context, id int64) (string, error)
	Forget(ctx context.Context, id int64) error
	Authenticated(user *domain.User, kind, rawToken string) bool
	Destroy(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	db     *sql.DB
	users  repository.UserRepository
	engine *validation.Engine
	creds  *credentials.Store
	logger *logrus.Logger
}

func NewUserService(db *sql.DB, users repository.UserRepository, creds *credentials.Store, logger *logrus.Logger) UserService {
	if logger == nil {
		logger = logrus.New()
	}
	return &userService{
		db:     db,
		users:  users,
		engine: validation.NewEngine(users),
		creds:  creds,
		logger: logger,
	}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	candidate := validation.UserCandidate{
		Name:        name,
		Email:       email,
		Password:    password,
		PasswordSet: true,
	}
	if err := s.validate(ctx, candidate); err != nil {
		return nil, err
	}

	digest, err := s.creds.Digest(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:           name,
		Email:          validation.NormalizeEmail(email),
		PasswordDigest: digest,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// lost the check-then-insert race; the unique index is authoritative
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ValidationErrors{{Field: "email", Kind: domain.NotUnique}}
		}
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, name, email string, password *string) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate := validation.UserCandidate{
		ID:    id,
		Name:  name,
		Email: email,
	}
	if password != nil {
		candidate.Password = *password
		candidate.PasswordSet = true
	}
	if err := s.validate(ctx, candidate); err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = validation.NormalizeEmail(email)
	if password != nil {
		digest, err := s.creds.Digest(*password)
		if err != nil {
			return nil, err
		}
		user.PasswordDigest = digest
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ValidationErrors{{Field: "email", Kind: domain.NotUnique}}
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) validate(ctx context.Context, candidate validation.UserCandidate) error {
	errs, err := s.engine.Validate(ctx, candidate)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.Get(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, validation.NormalizeEmail(email))
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.creds.Compare(user.PasswordDigest, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Remember issues a fresh remember token and persists its digest. Only the
// raw token is returned; the caller hands it to the client.
func (s *userService) Remember(ctx context.Context, id int64) (string, error) {
	token := s.creds.NewToken()
	digest, err := s.creds.Digest(token)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateRememberDigest(ctx, id, digest); err != nil {
		return "", err
	}
	return token, nil
}

// Forget clears the remember digest so outstanding remember tokens stop
// verifying.
func (s *userService) Forget(ctx context.Context, id int64) error {
	return s.users.UpdateRememberDigest(ctx, id, "")
}

// Authenticated verifies a raw token against the digest selected by kind.
// A missing digest or unknown kind yields false, never an error.
func (s *userService) Authenticated(user *domain.User, kind, rawToken string) bool {
	if user == nil {
		return false
	}
	var digest string
	switch kind {
	case RememberKind:
		digest = user.RememberDigest
	default:
		return false
	}
	if digest == "" {
		return false
	}
	return s.creds.Compare(digest, rawToken)
}

// Destroy removes the user, their posts, and every follow edge touching them
// in one transaction so no partial state is ever observable.
func (s *userService) Destroy(ctx context.Context, id int64) error {
	if _, err := s.users.Get(ctx, id); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		posts := sqlite.NewPostRepository(tx)
		follows := sqlite.NewFollowRepository(tx)
		users := sqlite.NewUserRepository(tx)

		deleted, err := posts.DeleteAllByAuthor(ctx, id)
		if err != nil {
			return err
		}
		if _, err := follows.DeleteAllForUser(ctx, id); err != nil {
			return err
		}
		if err := users.Delete(ctx, id); err != nil {
			return err
		}

		s.logger.WithFields(logrus.Fields{
			"user_id":       id,
			"posts_deleted": deleted,
		}).Info("user destroyed")
		return nil
	})
	if err != nil {
		return fmt.Errorf("destroy user %d: %w", id, err)
	}
	return nil
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
