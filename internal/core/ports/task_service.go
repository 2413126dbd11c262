package ports

import (
	"context"
	"time"

	"github.com/taskhive/task-system/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
}

// UpdateTaskInput carries the fields accepted when updating a task.
// Zero-valued fields are left unchanged.
type UpdateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
}

// TaskService exposes owner-scoped task operations plus the cross-user
// variants reserved for administrators.
type TaskService interface {
	List(ctx context.Context, userID string) ([]domain.Task, error)
	Get(ctx context.Context, userID, taskID string) (*domain.Task, error)
	Create(ctx context.Context, userID string, in CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID string, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error

	ListAll(ctx context.Context) ([]domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	CreateForUser(ctx context.Context, actorID, userID string, in CreateTaskInput) (*domain.Task, error)
	UpdateForUser(ctx context.Context, actorID, userID, taskID string, in UpdateTaskInput) (*domain.Task, error)
	DeleteForUser(ctx context.Context, actorID, userID, taskID string) error
}
