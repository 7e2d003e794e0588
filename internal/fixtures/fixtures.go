// Package fixtures seeds a small, known population for tests: the users
// jether, archer and lana, each with a handful of posts, and jether following
// lana. Tests address records by name instead of repeating setup.
package fixtures

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"microblog/internal/credentials"
	"microblog/internal/domain"
	"microblog/internal/repository/sqlite"
)

// Password is the raw password every fixture user is created with.
const Password = "foobar"

// Set holds the seeded records addressable by fixture name.
type Set struct {
	Users map[string]*domain.User
	Posts map[string][]domain.Post
}

// User returns the named seeded user, failing loudly on a typo.
func (s *Set) User(name string) *domain.User {
	u, ok := s.Users[name]
	if !ok {
		panic(fmt.Sprintf("fixtures: no user %q", name))
	}
	return u
}

// Load seeds the fixture population. The schema must already exist.
func Load(ctx context.Context, db *sql.DB) (*Set, error) {
	users := sqlite.NewUserRepository(db)
	posts := sqlite.NewPostRepository(db)
	follows := sqlite.NewFollowRepository(db)
	creds := credentials.NewStore(bcrypt.MinCost)

	digest, err := creds.Digest(Password)
	if err != nil {
		return nil, err
	}

	set := &Set{
		Users: map[string]*domain.User{},
		Posts: map[string][]domain.Post{},
	}

	for _, name := range []string{"jether", "archer", "lana"} {
		user := &domain.User{
			Name:           name,
			Email:          name + "@example.com",
			PasswordDigest: digest,
		}
		if _, err := users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", name, err)
		}
		set.Users[name] = user
	}

	seedPosts := map[string][]string{
		"jether": {"just setting up my microblog", "second thoughts"},
		"archer": {"danger zone", "phrasing"},
		"lana":   {"noooope", "sploosh", "yup"},
	}
	for name, contents := range seedPosts {
		author := set.Users[name]
		for _, content := range contents {
			post := &domain.Post{AuthorID: author.ID, Content: content}
			if _, err := posts.Create(ctx, post); err != nil {
				return nil, fmt.Errorf("seed post for %s: %w", name, err)
			}
			set.Posts[name] = append(set.Posts[name], *post)
		}
	}

	// jether follows lana but not archer
	if err := follows.Follow(ctx, set.Users["jether"].ID, set.Users["lana"].ID); err != nil {
		return nil, fmt.Errorf("seed follow: %w", err)
	}

	return set, nil
}
