package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// TaskRepository defines the persistence interface for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Task, error)
	FindAll(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
