package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskhive/task-system/internal/core/domain"
)

const taskCacheTTL = 5 * time.Minute

// TaskCache caches each user's task list as a JSON blob.
// Key format: tasks:<user_id>
//
// The cache is best-effort: any Redis or codec failure is treated as a
// miss, and writes are fire-and-forget.
type TaskCache struct {
	client *redis.Client
}

// NewTaskCache creates a TaskCache wrapping the given Redis client.
func NewTaskCache(client *redis.Client) *TaskCache {
	return &TaskCache{client: client}
}

// Get returns the cached task list for a user, if present.
func (c *TaskCache) Get(ctx context.Context, userID string) ([]domain.Task, bool) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return nil, false
	}

	var tasks []domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		// Stale or corrupt entry: drop it and report a miss.
		_ = c.client.Del(ctx, c.key(userID)).Err()
		return nil, false
	}
	return tasks, true
}

// Set stores a user's task list with the cache TTL.
func (c *TaskCache) Set(ctx context.Context, userID string, tasks []domain.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(userID), raw, taskCacheTTL).Err()
}

// Invalidate drops the cached list after any mutation of a user's tasks.
func (c *TaskCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return
	}
}

func (c *TaskCache) key(userID string) string {
	return fmt.Sprintf("tasks:%s", userID)
}
