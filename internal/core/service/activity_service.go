package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) used to skip
// activity events that were already recorded.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, entry domain.TaskActivity) (bool, error)
	Mark(ctx context.Context, entry domain.TaskActivity) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single activity entry.
func (s *activityService) Process(ctx context.Context, entry domain.TaskActivity) error {
	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, entry)
		if err != nil {
			s.log.Warn().Err(err).Str("task_id", entry.TaskID).Msg("dedup check failed, recording anyway")
		} else if isDup {
			s.log.Debug().Str("task_id", entry.TaskID).Str("action", string(entry.Action)).Msg("duplicate activity skipped")
			return nil
		}

		if markErr := s.dedup.Mark(ctx, entry); markErr != nil {
			s.log.Warn().Err(markErr).Str("task_id", entry.TaskID).Msg("failed to set dedup key")
		}
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("task_id", entry.TaskID).
		Str("actor_id", entry.ActorID).
		Str("action", string(entry.Action)).
		Msg("activity recorded")

	return nil
}

// Recent returns the latest entries of the audit trail, newest first.
func (s *activityService) Recent(ctx context.Context, limit int64) ([]domain.TaskActivity, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.FindRecent(ctx, limit)
}
