package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskhive/task-system/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for activity events backed by Redis.
// Key format: activity:<task_id>:<action>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact activity event was already recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, entry domain.TaskActivity) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(entry)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, entry domain.TaskActivity) error {
	return d.client.Set(ctx, d.key(entry), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(entry domain.TaskActivity) string {
	return fmt.Sprintf("activity:%s:%s:%d", entry.TaskID, entry.Action, entry.Timestamp.Unix())
}
