package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordRequired = errors.New("password is required")
var ErrInvalidToken = errors.New("token is not valid")

// User models an account in the system. IsAdmin is the sole authorization
// signal; there is no separate roles or permissions entity.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
