// Package validation checks candidate user records against the field rules
// enforced before any write. Every rule is evaluated; failures accumulate so
// callers can report all problems at once.
package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"microblog/internal/domain"
)

const (
	MaxNameLength     = 50
	MaxEmailLength    = 255
	MinPasswordLength = 6
)

// Local part allows letters, digits and _+-. ; domain labels allow letters,
// digits and hyphen, with at least one dot-separated label after the @.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_+\-.]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+$`)

// UserCandidate carries the fields of a user about to be created or updated.
// ID is zero for a new record; PasswordSet tells the engine whether the
// password rules apply to this write.
type UserCandidate struct {
	ID          int64
	Name        string
	Email       string
	Password    string
	PasswordSet bool
}

// EmailChecker answers whether an email (already normalized to lowercase) is
// held by a record other than excludeID. The storage layer's unique index is
// the authoritative enforcement; this check only lets validation report
// NotUnique ahead of the insert.
type EmailChecker interface {
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

// Engine validates user candidates. The zero-value engine skips the
// uniqueness rule; wire an EmailChecker to enable it.
type Engine struct {
	emails EmailChecker
}

func NewEngine(emails EmailChecker) *Engine {
	return &Engine{emails: emails}
}

// NormalizeEmail lowercases and trims an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate runs every rule against the candidate. The returned
// ValidationErrors is empty when the candidate is acceptable; the error return
// is reserved for infrastructure failures from the EmailChecker.
func (e *Engine) Validate(ctx context.Context, c UserCandidate) (domain.ValidationErrors, error) {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs = append(errs, domain.ValidationError{Field: "name", Kind: domain.Required})
	}
	if utf8.RuneCountInString(c.Name) > MaxNameLength {
		errs = append(errs, domain.ValidationError{Field: "name", Kind: domain.TooLong})
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs = append(errs, domain.ValidationError{Field: "email", Kind: domain.Required})
	}
	// length is measured on the raw string, independent of blankness
	if utf8.RuneCountInString(c.Email) > MaxEmailLength {
		errs = append(errs, domain.ValidationError{Field: "email", Kind: domain.TooLong})
	}
	if email != "" {
		if !emailPattern.MatchString(email) {
			errs = append(errs, domain.ValidationError{Field: "email", Kind: domain.InvalidFormat})
		} else if e.emails != nil {
			taken, err := e.emails.EmailTaken(ctx, NormalizeEmail(email), c.ID)
			if err != nil {
				return nil, fmt.Errorf("check email uniqueness: %w", err)
			}
			if taken {
				errs = append(errs, domain.ValidationError{Field: "email", Kind: domain.NotUnique})
			}
		}
	}

	// Whitespace-only passwords of sufficient length are accepted on purpose;
	// only the length rule applies here.
	if c.PasswordSet && utf8.RuneCountInString(c.Password) < MinPasswordLength {
		errs = append(errs, domain.ValidationError{Field: "password", Kind: domain.TooShort})
	}

	return errs, nil
}
