package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// TaskCache abstracts the per-user task-list cache (Redis). A nil-safe
// no-op implementation is acceptable; cache failures never fail a request.
type TaskCache interface {
	Get(ctx context.Context, userID string) ([]domain.Task, bool)
	Set(ctx context.Context, userID string, tasks []domain.Task)
	Invalidate(ctx context.Context, userID string)
}

type TaskService struct {
	repo     ports.TaskRepository
	cache    TaskCache
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, cache TaskCache, activity ports.ActivityRecorder, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, cache: cache, activity: activity, log: log}
}

// List returns the caller's tasks, served from cache when possible.
func (s *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	if s.cache != nil {
		if tasks, ok := s.cache.Get(ctx, userID); ok {
			return tasks, nil
		}
	}

	tasks, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, userID, tasks)
	}
	return tasks, nil
}

// Get returns a single task. A task owned by someone else is reported as
// not found, so callers cannot probe for foreign task IDs.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, userID string, in ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFor(ctx, userID, userID, in)
}

func (s *TaskService) Update(ctx context.Context, userID, taskID string, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return s.applyUpdate(ctx, userID, task, in)
}

// Delete removes the caller's task. Unlike Get/Update, a foreign task is
// reported as forbidden rather than not found, matching the delete
// endpoint's contract.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return domain.ErrTaskForbidden
	}
	return s.deleteTask(ctx, userID, task)
}

// --- Admin operations (gated upstream by the admin middleware) ---

func (s *TaskService) ListAll(ctx context.Context) ([]domain.Task, error) {
	return s.repo.FindAll(ctx)
}

func (s *TaskService) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *TaskService) CreateForUser(ctx context.Context, actorID, userID string, in ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFor(ctx, actorID, userID, in)
}

func (s *TaskService) UpdateForUser(ctx context.Context, actorID, userID, taskID string, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return s.applyUpdate(ctx, actorID, task, in)
}

func (s *TaskService) DeleteForUser(ctx context.Context, actorID, userID, taskID string) error {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	return s.deleteTask(ctx, actorID, task)
}

// --- internals ---

func (s *TaskService) createFor(ctx context.Context, actorID, ownerID string, in ports.CreateTaskInput) (*domain.Task, error) {
	if in.Title == "" || in.DueDate.IsZero() {
		return nil, domain.ErrTaskInvalid
	}

	priority := domain.TaskPriority(in.Priority)
	if !priority.IsValid() {
		priority = domain.PriorityMedium
	}
	status := domain.TaskStatus(in.Status)
	if !status.IsValid() {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    priority,
		Status:      status,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", ownerID).Msg("failed to create task")
		return nil, err
	}

	s.afterMutation(ctx, actorID, created, domain.ActivityCreated)
	s.log.Info().Str("task_id", created.ID).Str("user_id", ownerID).Str("priority", string(created.Priority)).Msg("task created")
	return created, nil
}

func (s *TaskService) applyUpdate(ctx context.Context, actorID string, task *domain.Task, in ports.UpdateTaskInput) (*domain.Task, error) {
	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Description != "" {
		task.Description = in.Description
	}
	if !in.DueDate.IsZero() {
		task.DueDate = in.DueDate
	}
	if p := domain.TaskPriority(in.Priority); in.Priority != "" && p.IsValid() {
		task.Priority = p
	}
	if st := domain.TaskStatus(in.Status); in.Status != "" && st.IsValid() {
		task.Status = st
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, actorID, task, domain.ActivityUpdated)
	return task, nil
}

func (s *TaskService) deleteTask(ctx context.Context, actorID string, task *domain.Task) error {
	if err := s.repo.Delete(ctx, task.ID); err != nil {
		return err
	}
	s.afterMutation(ctx, actorID, task, domain.ActivityDeleted)
	s.log.Info().Str("task_id", task.ID).Str("actor_id", actorID).Msg("task deleted")
	return nil
}

func (s *TaskService) afterMutation(ctx context.Context, actorID string, task *domain.Task, action domain.ActivityAction) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, task.UserID)
	}
	if s.activity != nil {
		s.activity.Enqueue(domain.TaskActivity{
			TaskID:    task.ID,
			OwnerID:   task.UserID,
			ActorID:   actorID,
			Action:    action,
			Timestamp: time.Now().UTC(),
		})
	}
}
