package ports

import "context"

// AuthService turns raw credentials into bearer tokens.
type AuthService interface {
	Register(ctx context.Context, username, password string, isAdmin bool) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}
