package middleware

import "github.com/labstack/echo/v4"

const identityKey = "auth_identity"

// Identity is the resolved caller attached to the request context by the
// gates. Handlers read it instead of touching raw token claims.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// CurrentIdentity returns the identity set by Auth or AdminOnly.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// SetIdentity attaches an identity to the request context. Exposed for
// handler tests that bypass the gates.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}
