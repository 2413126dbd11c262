package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register creates a user and returns a bearer token for it. The duplicate
// pre-check keeps the common case cheap; the repository's unique index is
// what actually closes the race under concurrent registrations.
func (s *AuthService) Register(ctx context.Context, username, password string, isAdmin bool) (string, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", domain.ErrUserExists
		}
		return "", err
	}

	token, err := s.tokens.Issue(created.ID, created.IsAdmin)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", username).Bool("is_admin", isAdmin).Msg("user registered")

	return token, nil
}

// Login verifies credentials and returns a bearer token. Unknown username
// and wrong password produce the same error so callers cannot enumerate
// accounts. Login-issued tokens never assert the admin flag; the admin
// gate re-reads the store instead.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if password == "" {
		return "", domain.ErrPasswordRequired
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, false)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", username).Msg("user logged in")

	return token, nil
}
