package credentials

import (
	"context"
)

// Service verifies login credentials against a user directory.
type Service struct {
	directory Directory
}

func NewService(directory Directory) *Service {
	return &Service{directory: directory}
}

// Verify looks up the user by exact email match and compares the password
// against the stored bcrypt hash.
//
// The two failure modes stay distinct (ErrUserNotFound vs
// ErrInvalidCredentials) and both surface to the user, so whether an email
// is registered is observable. Acceptable for a single-owner site.
func (s *Service) Verify(
	ctx context.Context,
	email string,
	password string,
) (*User, error) {

	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
