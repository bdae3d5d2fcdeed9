package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemory() *Memory {
	m := &Memory{sessions: make(map[string]*Session)}
	// sweep expired entries every minute
	go func() {
		for {
			time.Sleep(time.Minute)
			now := time.Now()
			m.mu.Lock()
			for id, s := range m.sessions {
				if now.After(s.ExpiresAt) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}()
	return m
}

func (m *Memory) Create(_ context.Context, userID string, ttl time.Duration) (*Session, error) {
	s := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *Memory) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}
