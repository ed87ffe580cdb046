// Package memory provides the process-memory stores backing the service.
// Nothing here survives a restart; ids are sequential and never reused
// within a process lifetime. Each store guards its state with a mutex so
// concurrent handlers observe each operation atomically.
package memory

import (
	"context"
	"sync"

	"github.com/inkpress/article-service/internal/core/domain"
)

// UserRepository is the in-memory user store.
type UserRepository struct {
	mu     sync.Mutex
	users  []domain.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users = append(r.users, stored)

	clone := stored
	return &clone, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
