package domain

import "time"

// User represents a registered account. Email is stored lowercase; uniqueness
// is enforced case-insensitively. RememberDigest is empty until a persistent
// login token has been issued.
type User struct {
	ID             int64
	Name           string
	Email          string
	PasswordDigest string
	RememberDigest string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
