// Package session holds per-browser-session state: the cart and the
// admin login flag. State is kept server-side behind a Store; the client
// only carries a signed session id cookie.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cafe-management/models"
)

// Lifetime is how long a session survives without activity.
const Lifetime = 24 * time.Hour

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID            string      `json:"id"`
	Cart          models.Cart `json:"cart"`
	AdminLoggedIn bool        `json:"admin_logged_in"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		UpdatedAt: time.Now(),
	}
}

// Store persists sessions between requests. MemoryStore serves tests,
// GormStore serves production.
type Store interface {
	Get(id string) (*Session, error)
	Save(s *Session) error
	Delete(id string) error
}

// SignID wraps a session id in an HS256 token so a tampered cookie is
// rejected instead of resolving to someone else's session.
func SignID(id, secret string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(Lifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseID verifies a signed cookie value and returns the session id.
func ParseID(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired session cookie")
	}
	if claims.Subject == "" {
		return "", errors.New("session cookie has no subject")
	}
	return claims.Subject, nil
}
