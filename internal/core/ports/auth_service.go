package ports

import (
	"context"

	"github.com/inkpress/article-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credentials and mints a fresh session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
