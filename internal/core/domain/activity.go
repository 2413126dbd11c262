package domain

import "time"

// ActivityAction identifies the kind of task mutation recorded in the trail.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// TaskActivity is a single entry in the task audit trail.
type TaskActivity struct {
	TaskID    string         `json:"task_id"`
	OwnerID   string         `json:"owner_id"`
	ActorID   string         `json:"actor_id"`
	Action    ActivityAction `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
}
