package session

import (
	"context"
	"time"
)

// Session binds a browser to an authenticated user. It stores identity
// pointers only, never auth state.
type Session struct {
	SessionID string    // unique session identifier
	UserID    string    // references users.id
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) when the session does not exist.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
