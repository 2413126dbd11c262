package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Implementations must enforce username uniqueness on Create: a concurrent
// duplicate insert has to fail with domain.ErrUserExists rather than write.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns users filtered by admin flag; a nil filter returns everyone.
	List(ctx context.Context, isAdmin *bool) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
