package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	createFn func(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubUserService) ListMembers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) CreateUser(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error) {
	return s.createFn(ctx, username, password, isAdmin)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubActivityService struct {
	recentFn func(ctx context.Context, limit int64) ([]domain.TaskActivity, error)
}

func (s *stubActivityService) Process(ctx context.Context, entry domain.TaskActivity) error {
	panic("not used")
}

func (s *stubActivityService) Recent(ctx context.Context, limit int64) ([]domain.TaskActivity, error) {
	return s.recentFn(ctx, limit)
}

func TestAdminHandler_CreateUser_MissingFields(t *testing.T) {
	h := NewAdminHandler(&stubUserService{}, nil, nil)

	c, rec := newTaskContext(t, http.MethodPost, "/api/admin/users", `{"username":"solo"}`, "admin_1")
	_ = h.CreateUser(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to create user") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_CreateUser_DuplicateUsername(t *testing.T) {
	h := NewAdminHandler(&stubUserService{
		createFn: func(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}, nil, nil)

	c, rec := newTaskContext(t, http.MethodPost, "/api/admin/users", `{"username":"dup","password":"pw123456"}`, "admin_1")
	_ = h.CreateUser(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to create user") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_CreateUser_AdminFlag(t *testing.T) {
	var gotAdmin bool
	h := NewAdminHandler(&stubUserService{
		createFn: func(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error) {
			gotAdmin = isAdmin
			return &domain.User{ID: "user_2", Username: username, IsAdmin: isAdmin}, nil
		},
	}, nil, nil)

	c, rec := newTaskContext(t, http.MethodPost, "/api/admin/users",
		`{"username":"ops","password":"pw123456","isAdmin":true}`, "admin_1")
	if err := h.CreateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !gotAdmin {
		t.Fatal("isAdmin flag was not forwarded")
	}
}

func TestAdminHandler_UpdateUser_NotFound(t *testing.T) {
	h := NewAdminHandler(&stubUserService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}, nil, nil)

	c, rec := newTaskContext(t, http.MethodPut, "/api/admin/users/user_9", `{"username":"renamed"}`, "admin_1")
	c.SetParamNames("id")
	c.SetParamValues("user_9")
	_ = h.UpdateUser(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_DeleteUser_Success(t *testing.T) {
	h := NewAdminHandler(&stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "user_2" {
				t.Fatalf("unexpected id %s", id)
			}
			return nil
		},
	}, nil, nil)

	c, rec := newTaskContext(t, http.MethodDelete, "/api/admin/users/user_2", "", "admin_1")
	c.SetParamNames("id")
	c.SetParamValues("user_2")
	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), "User deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_ListUsers_EmptyIsArray(t *testing.T) {
	h := NewAdminHandler(&stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, nil
		},
	}, nil, nil)

	c, rec := newTaskContext(t, http.MethodGet, "/api/admin/users", "", "admin_1")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestAdminHandler_CreateUserTask_InvalidInput(t *testing.T) {
	tasks := &stubTaskService{
		adminCreateFn: func(ctx context.Context, actorID, userID string, in ports.CreateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskInvalid
		},
	}
	h := NewAdminHandler(nil, tasks, nil)

	c, rec := newTaskContext(t, http.MethodPost, "/api/admin/users/user_2/tasks", `{"description":"no title"}`, "admin_1")
	c.SetParamNames("userId")
	c.SetParamValues("user_2")
	_ = h.CreateUserTask(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to create task") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_CreateUserTask_AttributesActor(t *testing.T) {
	var gotActor, gotOwner string
	tasks := &stubTaskService{
		adminCreateFn: func(ctx context.Context, actorID, userID string, in ports.CreateTaskInput) (*domain.Task, error) {
			gotActor, gotOwner = actorID, userID
			return &domain.Task{ID: "task_1", Title: in.Title, UserID: userID, Priority: domain.PriorityMedium}, nil
		},
	}
	h := NewAdminHandler(nil, tasks, nil)

	c, rec := newTaskContext(t, http.MethodPost, "/api/admin/users/user_2/tasks",
		`{"title":"assigned","dueDate":"2026-09-15T18:00:00Z"}`, "admin_1")
	c.SetParamNames("userId")
	c.SetParamValues("user_2")
	if err := h.CreateUserTask(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotActor != "admin_1" || gotOwner != "user_2" {
		t.Fatalf("actor/owner mismatch: %s %s", gotActor, gotOwner)
	}
}

func TestAdminHandler_DeleteUserTask_Success(t *testing.T) {
	tasks := &stubTaskService{
		adminDeleteFn: func(ctx context.Context, actorID, userID, taskID string) error {
			return nil
		},
	}
	h := NewAdminHandler(nil, tasks, nil)

	c, rec := newTaskContext(t, http.MethodDelete, "/api/admin/users/user_2/tasks/task_1", "", "admin_1")
	c.SetParamNames("userId", "taskId")
	c.SetParamValues("user_2", "task_1")
	if err := h.DeleteUserTask(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), "Task deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_ListActivity(t *testing.T) {
	var gotLimit int64
	h := NewAdminHandler(nil, nil, &stubActivityService{
		recentFn: func(ctx context.Context, limit int64) ([]domain.TaskActivity, error) {
			gotLimit = limit
			return []domain.TaskActivity{{TaskID: "task_1", Action: domain.ActivityCreated}}, nil
		},
	})

	c, rec := newTaskContext(t, http.MethodGet, "/api/admin/activity", "", "admin_1")
	if err := h.ListActivity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotLimit != 50 {
		t.Fatalf("expected limit 50, got %d", gotLimit)
	}
}
