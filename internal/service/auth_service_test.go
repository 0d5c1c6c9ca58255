package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pritish2005/task-management-app/internal/repo"
)

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewAuthService(repo.NewMemoryUserRepo())

	u, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(repo.NewMemoryUserRepo())

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Someone Else", "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestValidateCredentials(t *testing.T) {
	svc := NewAuthService(repo.NewMemoryUserRepo())
	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	u, err := svc.ValidateCredentials(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestValidateCredentialsUniformFailure(t *testing.T) {
	svc := NewAuthService(repo.NewMemoryUserRepo())
	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPw := svc.ValidateCredentials(context.Background(), "alice@example.com", "nope")
	_, noUser := svc.ValidateCredentials(context.Background(), "ghost@example.com", "nope")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
}
