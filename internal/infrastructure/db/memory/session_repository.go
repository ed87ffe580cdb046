package memory

import (
	"context"
	"sync"
	"time"

	"github.com/inkpress/article-service/internal/core/domain"
)

type sessionEntry struct {
	userID    int64
	expiresAt time.Time // zero means the session never expires
}

// SessionRepository is the in-memory token store. A zero TTL keeps sessions
// alive for the life of the process; a positive TTL expires tokens lazily on
// Resolve.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
	}
}

func (r *SessionRepository) Create(_ context.Context, token string, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := sessionEntry{userID: userID}
	if r.ttl > 0 {
		entry.expiresAt = time.Now().Add(r.ttl)
	}
	r.sessions[token] = entry
	return nil
}

func (r *SessionRepository) Resolve(_ context.Context, token string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(r.sessions, token)
		return 0, domain.ErrSessionNotFound
	}
	return entry.userID, nil
}
