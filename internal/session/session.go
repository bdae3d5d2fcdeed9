// Package session holds the server-side half of an authenticated
// session. Tokens carry the session id; as long as the id resolves
// here the token is accepted, and logout deletes the id.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Store is the session state abstraction: in-memory for a single
// process, redis when sessions must survive restarts or be shared.
type Store interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
