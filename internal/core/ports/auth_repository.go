package ports

import (
	"context"

	"github.com/inkpress/article-service/internal/core/domain"
)

// UserRepository persists user accounts in process memory.
type UserRepository interface {
	// Create assigns the next sequential id and stores the user. Returns
	// domain.ErrUserExists when the username is already taken (exact,
	// case-sensitive match).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// SessionRepository maps opaque tokens to user ids. Create never invalidates
// prior tokens for the same user.
type SessionRepository interface {
	Create(ctx context.Context, token string, userID int64) error
	// Resolve returns the user id behind a token, or domain.ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (int64, error)
}
