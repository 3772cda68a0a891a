// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUserNotFound       = errors.New("user not found")
	ErrFlowerNotFound     = errors.New("flower not found")
)

// IsError reports whether err matches the target sentinel, unwrapping
// as needed.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
