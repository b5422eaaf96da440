package credentials

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is an identity record from the directory. Records are seeded out of
// band and never mutated at runtime.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}

// Directory looks up users by email. Implementations must match the email
// exactly and return ErrUserNotFound when no record exists.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
