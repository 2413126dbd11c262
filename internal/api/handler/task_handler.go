package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/api/middleware"
	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// TaskHandler handles the owner-scoped task endpoints. Every route is
// behind the auth gate, so an identity is always present in context.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
}

func (r taskRequest) createInput() ports.CreateTaskInput {
	in := ports.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
	}
	if r.DueDate != nil {
		in.DueDate = *r.DueDate
	}
	return in
}

func (r taskRequest) updateInput() ports.UpdateTaskInput {
	in := ports.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
	}
	if r.DueDate != nil {
		in.DueDate = *r.DueDate
	}
	return in
}

// List handles GET /api/tasks.
//
// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  map[string]string
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	tasks, err := h.service.List(c.Request().Context(), id.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /api/tasks/:id. Tasks owned by other users are reported
// as not found.
//
// @Summary      Get one of your tasks
// @Tags         tasks
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	task, err := h.service.Get(c.Request().Context(), id.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	return c.JSON(http.StatusOK, task)
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      taskRequest  true  "Task fields"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	task, err := h.service.Create(c.Request().Context(), id.UserID, req.createInput())
	if err != nil {
		if errors.Is(err, domain.ErrTaskInvalid) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title and Due Date are required"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusOK, task)
}

// Update handles PUT /api/tasks/:id. Only provided fields change.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string       true  "Task ID"
// @Param        body  body      taskRequest  true  "Fields to change"
// @Success      200   {object}  domain.Task
// @Failure      404   {object}  map[string]string
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	task, err := h.service.Update(c.Request().Context(), id.UserID, c.Param("id"), req.updateInput())
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id. A task owned by someone else is
// rejected with 403, unlike Get/Update which hide it as 404.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, _ := middleware.CurrentIdentity(c)

	err := h.service.Delete(c.Request().Context(), id.UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Task not found"})
		case errors.Is(err, domain.ErrTaskForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized: You do not have permission to delete this task"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgServerError})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Task removed successfully"})
}
