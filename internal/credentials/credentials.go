// Package credentials owns password and token hashing. Raw secrets never
// reach storage: only bcrypt digests are persisted, for both passwords and
// remember tokens.
package credentials

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Store hashes and verifies secrets at a fixed bcrypt cost.
type Store struct {
	cost int
}

// NewStore clamps cost into bcrypt's valid range; pass 0 for the default.
func NewStore(cost int) *Store {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Store{cost: cost}
}

// Digest returns the bcrypt hash of a raw secret.
func (s *Store) Digest(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether raw matches the stored digest. An empty digest
// never matches anything.
func (s *Store) Compare(digest, raw string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}

// NewToken returns a random opaque token suitable for remember-me cookies.
func (s *Store) NewToken() string {
	return uuid.NewString()
}
