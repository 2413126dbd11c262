package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive/task-system/internal/core/domain"
)

const defaultTokenTTL = 240 * time.Hour // 10 days

// Claims is the only supported JWT claims shape for this service.
type Claims struct {
	jwt.RegisteredClaims

	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// The signing secret is injected at construction and never mutates, so
// concurrent verifications need no synchronization.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the given identity, valid for the
// configured TTL from now.
func (s *TokenService) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature integrity and expiry. Any decode failure is
// reported as domain.ErrInvalidToken; verification never fails open.
func (s *TokenService) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
