package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/core/ports"
	"github.com/taskhive/task-system/internal/core/service"
)

const msgNotAdmin = "Not authorized as admin"

// AdminOnly is the stricter gate. It runs the same token checks as Auth
// (so a missing or invalid token can never surface as 403), then re-reads
// the user record instead of trusting the admin claim embedded in the
// token. Revoking the admin flag server-side therefore takes effect
// before the token expires.
func AdminOnly(tokens *service.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok, err := resolveIdentity(c, tokens)
			if !ok {
				return err
			}

			user, err := users.FindByID(c.Request().Context(), id.UserID)
			if err != nil || !user.IsAdmin {
				metrics.GateRejectionsTotal.WithLabelValues("not_admin").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": msgNotAdmin})
			}

			SetIdentity(c, Identity{UserID: user.ID, IsAdmin: true})
			return next(c)
		}
	}
}
