package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDirectory(t *testing.T) *MemoryDirectory {
	t.Helper()
	d, err := SeedOwner("a@b.com", "Owner", "secret")
	require.NoError(t, err)
	return d
}

func TestVerifySuccess(t *testing.T) {
	svc := NewService(seededDirectory(t))

	user, err := svc.Verify(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Owner", user.Name)
	assert.NotEmpty(t, user.ID)
}

func TestVerifyUnknownEmail(t *testing.T) {
	svc := NewService(seededDirectory(t))

	user, err := svc.Verify(context.Background(), "nobody@b.com", "secret")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestVerifyWrongPassword(t *testing.T) {
	svc := NewService(seededDirectory(t))

	user, err := svc.Verify(context.Background(), "a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestVerifyEmailMatchIsExact(t *testing.T) {
	svc := NewService(seededDirectory(t))

	_, err := svc.Verify(context.Background(), "A@B.COM", "secret")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.NoError(t, VerifyPassword(hash, "secret"))
	assert.Error(t, VerifyPassword(hash, "other"))
}
