package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkpress/article-service/internal/core/domain"
)

// SessionRepository stores session tokens in Redis.
// Key format: session:<token> -> userID. A zero TTL means no expiry, matching
// the in-memory store's default policy.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a SessionRepository wrapping the given client.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Create(ctx context.Context, token string, userID int64) error {
	if err := r.client.Set(ctx, r.key(token), userID, r.ttl).Err(); err != nil {
		return fmt.Errorf("session create: %w", err)
	}
	return nil
}

func (r *SessionRepository) Resolve(ctx context.Context, token string) (int64, error) {
	userID, err := r.client.Get(ctx, r.key(token)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("session resolve: %w", err)
	}
	return userID, nil
}

func (r *SessionRepository) key(token string) string {
	return "session:" + token
}
