package credentials

import (
	"context"

	"github.com/google/uuid"
)

// MemoryDirectory holds seeded users in process memory. The map is built
// once and read-only afterwards, so lookups need no locking.
type MemoryDirectory struct {
	users map[string]*User
}

func NewMemoryDirectory(users ...*User) *MemoryDirectory {
	d := &MemoryDirectory{users: make(map[string]*User, len(users))}
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		d.users[u.Email] = u
	}
	return d
}

// SeedOwner creates a single-user directory from plaintext owner settings,
// hashing the password at startup.
func SeedOwner(email, name, password string) (*MemoryDirectory, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return NewMemoryDirectory(&User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}), nil
}

func (d *MemoryDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := d.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}
