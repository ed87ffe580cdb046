package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkpress/article-service/internal/core/domain"
	"github.com/inkpress/article-service/internal/core/ports"
)

// AuthService implements registration and login over the in-process stores.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return created, nil
}

// Login verifies the credentials verbatim and records a fresh session. Prior
// sessions for the same user stay valid.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Password != password {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := generateToken()
	if err := s.sessions.Create(ctx, token, user.ID); err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("login successful")

	return token, user, nil
}

// generateToken returns an opaque, practically unique session token.
func generateToken() string {
	return uuid.NewString()
}
