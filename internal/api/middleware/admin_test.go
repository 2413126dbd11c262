package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ *bool) ([]domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) Update(_ context.Context, _ *domain.User) error {
	panic("not used")
}

func (r *stubUserRepo) Delete(_ context.Context, _ string) error {
	panic("not used")
}

func TestAdminOnly_AdmitsAdmin(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()
	users := &stubUserRepo{users: map[string]*domain.User{
		"admin_1": {ID: "admin_1", Username: "root", IsAdmin: true},
	}}

	signed, err := tokens.Issue("admin_1", true)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AdminOnly(tokens, users)(func(c echo.Context) error {
		called = true
		id, _ := CurrentIdentity(c)
		if !id.IsAdmin || id.UserID != "admin_1" {
			t.Fatalf("unexpected identity: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()
	users := &stubUserRepo{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Username: "alice", IsAdmin: false},
	}}

	signed, err := tokens.Issue("user_1", false)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminOnly(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if got := errorBody(t, rec); got != "Not authorized as admin" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

// Admin privileges are re-read from the store on every request, so a token
// that still carries the admin claim stops working once the flag is revoked.
func TestAdminOnly_IgnoresStaleAdminClaim(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()
	users := &stubUserRepo{users: map[string]*domain.User{
		"user_2": {ID: "user_2", Username: "bob", IsAdmin: false},
	}}

	signed, err := tokens.Issue("user_2", true) // claim says admin, store says no
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminOnly(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminOnly_DeletedUserForbidden(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()
	users := &stubUserRepo{users: map[string]*domain.User{}}

	signed, err := tokens.Issue("gone", true)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminOnly(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

// A missing or invalid token short-circuits before the admin check: the
// response must be 401, never 403.
func TestAdminOnly_MissingTokenIsUnauthenticated(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()
	users := &stubUserRepo{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminOnly(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := errorBody(t, rec); got != "No token, authorization denied" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestAdminOnly_InvalidTokenIsUnauthenticated(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()
	users := &stubUserRepo{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, "garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminOnly(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := errorBody(t, rec); got != "Token is not valid" {
		t.Fatalf("unexpected error message: %q", got)
	}
}
