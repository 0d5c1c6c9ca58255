package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
	"github.com/Pritish2005/task-management-app/internal/repo"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("user already exists")
)

// AuthService handles registration and credential checks.
type AuthService struct {
	repo repo.UserRepo
}

// NewAuthService returns a new AuthService.
func NewAuthService(repo repo.UserRepo) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (dom.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, name, email, string(hash))
	if err != nil {
		if repo.IsDuplicate(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the user if valid.
// Lookup and verification failures are indistinguishable.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
