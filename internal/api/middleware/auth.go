package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/core/service"
)

// TokenHeader is the request header carrying the bearer token. The value
// may be the raw token or prefixed with "Bearer ".
const TokenHeader = "x-auth-token"

const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

// Auth validates the bearer token and attaches the resolved Identity to
// the request context. The two rejection causes are distinct on the wire:
// missing and invalid tokens both yield 401 but carry different error
// messages. The user store is never consulted here.
func Auth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok, err := resolveIdentity(c, tokens)
			if !ok {
				return err
			}
			SetIdentity(c, id)
			return next(c)
		}
	}
}

// resolveIdentity runs the shared token-extraction and verification steps
// of both gates. When ok is false the 401 response has already been
// written and the request must not proceed.
func resolveIdentity(c echo.Context, tokens *service.TokenService) (Identity, bool, error) {
	raw := c.Request().Header.Get(TokenHeader)
	if raw == "" {
		metrics.GateRejectionsTotal.WithLabelValues("missing_token").Inc()
		return Identity{}, false, c.JSON(http.StatusUnauthorized, map[string]string{"error": msgNoToken})
	}

	raw = strings.TrimPrefix(raw, "Bearer ")

	claims, err := tokens.Verify(raw)
	if err != nil {
		metrics.GateRejectionsTotal.WithLabelValues("invalid_token").Inc()
		return Identity{}, false, c.JSON(http.StatusUnauthorized, map[string]string{"error": msgInvalidToken})
	}

	return Identity{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, true, nil
}
