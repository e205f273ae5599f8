package storage

import (
	"context"
	"time"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the client session.
// Tokens are kept as issued by the server; the database file itself
// is expected to have restrictive permissions.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

// Session represents the authenticated client session
type Session struct {
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix секунды истечения access токена
}

// Expired reports whether the access token lifetime has passed
func (s *Session) Expired(now time.Time) bool {
	return now.Unix() >= s.ExpiresAt
}
