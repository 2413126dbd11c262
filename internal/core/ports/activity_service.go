package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// ActivityService processes task activity events pulled off the dispatcher.
type ActivityService interface {
	Process(ctx context.Context, entry domain.TaskActivity) error
	Recent(ctx context.Context, limit int64) ([]domain.TaskActivity, error)
}

// ActivityRecorder is the producer side: services enqueue events without
// blocking the request. Implemented by the queue dispatcher.
type ActivityRecorder interface {
	Enqueue(entry domain.TaskActivity)
}
