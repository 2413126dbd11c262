package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// UserService implements the administrative user-management operations.
// Callers reach it only through the admin gate.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// ListMembers returns all non-admin users. Password hashes are never
// serialized (json:"-" on the domain type).
func (s *UserService) ListMembers(ctx context.Context) ([]domain.User, error) {
	nonAdmin := false
	return s.users.List(ctx, &nonAdmin)
}

func (s *UserService) CreateUser(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
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
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", username).Bool("is_admin", isAdmin).Msg("user created by admin")
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	if in.Password != "" {
		hash, err := HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated by admin")
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}
