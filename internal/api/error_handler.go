package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Handlers write the contractual auth/task responses themselves; this is
// the safety net for router 404s, bind failures, and anything that leaks
// past a handler.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Token is not valid"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "Task not found"
	case errors.Is(err, domain.ErrTaskForbidden):
		return http.StatusForbidden, "Unauthorized: You do not have permission to delete this task"
	case errors.Is(err, domain.ErrTaskInvalid):
		return http.StatusBadRequest, "Title and Due Date are required"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
