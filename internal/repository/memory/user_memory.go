// internal/repository/memory/user_memory.go

// Package memory implements the repository interfaces with process-local
// in-memory collections. State lives exactly as long as the process and
// is lost on restart.
package memory

import (
	"context"
	"sync"

	"bloomshop/internal/domain"
	"bloomshop/internal/repository"
	"bloomshop/internal/util"
)

// UserRepository implements repository.UserRepository on a map keyed by
// username.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepository creates a new in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

// SaveUser inserts or overwrites the entry keyed by the user's username.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Username] = user
	return nil
}

// GetUser retrieves a user by username.
func (r *UserRepository) GetUser(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return domain.User{}, util.ErrUserNotFound
	}
	return user, nil
}
