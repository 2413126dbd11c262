package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// UpdateUserInput carries the fields an administrator may change on a user.
// Empty strings leave the current value in place; a nil IsAdmin leaves the
// admin flag untouched.
type UpdateUserInput struct {
	Username string
	Password string
	IsAdmin  *bool
}

// UserService exposes the administrative user-management operations.
type UserService interface {
	ListMembers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
