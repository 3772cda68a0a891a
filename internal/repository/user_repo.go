// internal/repository/user_repo.go
package repository

import (
	"context"

	"bloomshop/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// SaveUser inserts the user, replacing any existing entry with the
	// same username (last write wins, no conflict error).
	SaveUser(ctx context.Context, user domain.User) error
	// GetUser retrieves a user by username. It returns
	// util.ErrUserNotFound when no such user exists; callers must check
	// for absence.
	GetUser(ctx context.Context, username string) (domain.User, error)
}
