package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/api/middleware"
	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// AdminHandler handles user management and cross-user task endpoints.
// Every route is behind the admin gate.
type AdminHandler struct {
	users    ports.UserService
	tasks    ports.TaskService
	activity ports.ActivityService
}

func NewAdminHandler(users ports.UserService, tasks ports.TaskService, activity ports.ActivityService) *AdminHandler {
	return &AdminHandler{users: users, tasks: tasks, activity: activity}
}

type adminUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  *bool  `json:"isAdmin"`
}

// ListUsers handles GET /api/admin/users — all non-admin accounts.
//
// @Summary      List non-admin users
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListMembers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/admin/users.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      adminUserRequest  true  "New user"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req adminUserRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to create user"})
	}

	isAdmin := req.IsAdmin != nil && *req.IsAdmin
	user, err := h.users.CreateUser(c.Request().Context(), req.Username, req.Password, isAdmin)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to create user"})
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /api/admin/users/:id.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string            true  "User ID"
// @Param        body  body      adminUserRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.users.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "User updated successfully", "user": user})
}

// DeleteUser handles DELETE /api/admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	err := h.users.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// ListAllTasks handles GET /api/admin/tasks — every task of every user.
//
// @Summary      List all tasks
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Task
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/tasks [get]
func (h *AdminHandler) ListAllTasks(c echo.Context) error {
	tasks, err := h.tasks.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// ListUserTasks handles GET /api/admin/users/:userId/tasks.
//
// @Summary      List one user's tasks
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {array}   domain.Task
// @Router       /api/admin/users/{userId}/tasks [get]
func (h *AdminHandler) ListUserTasks(c echo.Context) error {
	tasks, err := h.tasks.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// CreateUserTask handles POST /api/admin/users/:userId/tasks.
//
// @Summary      Create a task for a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        userId  path      string       true  "User ID"
// @Param        body    body      taskRequest  true  "Task fields"
// @Success      201     {object}  domain.Task
// @Failure      400     {object}  map[string]string
// @Router       /api/admin/users/{userId}/tasks [post]
func (h *AdminHandler) CreateUserTask(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	task, err := h.tasks.CreateForUser(c.Request().Context(), id.UserID, c.Param("userId"), req.createInput())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to create task"})
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, task)
}

// UpdateUserTask handles PUT /api/admin/users/:userId/tasks/:taskId.
//
// @Summary      Update a user's task
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        userId  path      string       true  "User ID"
// @Param        taskId  path      string       true  "Task ID"
// @Param        body    body      taskRequest  true  "Fields to change"
// @Success      200     {object}  domain.Task
// @Failure      404     {object}  map[string]string
// @Router       /api/admin/users/{userId}/tasks/{taskId} [put]
func (h *AdminHandler) UpdateUserTask(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	task, err := h.tasks.UpdateForUser(c.Request().Context(), id.UserID, c.Param("userId"), c.Param("taskId"), req.updateInput())
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteUserTask handles DELETE /api/admin/users/:userId/tasks/:taskId.
//
// @Summary      Delete a user's task
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Param        userId  path      string  true  "User ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/admin/users/{userId}/tasks/{taskId} [delete]
func (h *AdminHandler) DeleteUserTask(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	err := h.tasks.DeleteForUser(c.Request().Context(), id.UserID, c.Param("userId"), c.Param("taskId"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

// ListActivity handles GET /api/admin/activity — the recent audit trail.
//
// @Summary      Recent task activity
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.TaskActivity
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/activity [get]
func (h *AdminHandler) ListActivity(c echo.Context) error {
	entries, err := h.activity.Recent(c.Request().Context(), 50)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	if entries == nil {
		entries = []domain.TaskActivity{}
	}
	return c.JSON(http.StatusOK, entries)
}
