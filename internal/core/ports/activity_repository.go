package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// ActivityRepository persists the task audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.TaskActivity) error
	FindRecent(ctx context.Context, limit int64) ([]domain.TaskActivity, error)
}
