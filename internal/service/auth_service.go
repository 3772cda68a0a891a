// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"bloomshop/internal/domain"
	"bloomshop/internal/repository"
	"bloomshop/internal/util"
)

// Every successful login returns the same fixed token and the profile
// endpoint returns the same fixed payload. Real token issuance and
// verification are out of scope for this demo.
const (
	mockAccessToken = "jwt_token"
	mockTokenType   = "bearer"

	mockProfileUsername = "mock_user"
	mockProfilePhotoURL = "http://example.com/photo.jpg"
)

// AuthService defines the interface for signup, login and profile logic.
type AuthService interface {
	Signup(ctx context.Context, user domain.User) error
	Login(ctx context.Context, username, password string) (domain.Token, error)
	Profile(ctx context.Context, token string) (domain.Profile, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Signup registers the user. A repeated username overwrites the previous
// record without error. Field presence is checked at the HTTP boundary;
// empty values are stored as-is.
func (s *authService) Signup(ctx context.Context, user domain.User) error {
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("signup: failed to save user: %w", err)
	}
	return nil
}

// Login checks the credentials and returns the fixed token on success.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (domain.Token, error) {
	user, err := s.userRepo.GetUser(ctx, username)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return domain.Token{}, util.ErrInvalidCredentials
		}
		return domain.Token{}, fmt.Errorf("login: failed to get user %q: %w", username, err)
	}
	// Plaintext comparison, matching how signup stores the password.
	if user.Password != password {
		return domain.Token{}, util.ErrInvalidCredentials
	}
	return domain.Token{AccessToken: mockAccessToken, TokenType: mockTokenType}, nil
}

// Profile ignores the token content and returns the fixed payload. It
// never reflects the actually authenticated user.
func (s *authService) Profile(ctx context.Context, token string) (domain.Profile, error) {
	return domain.Profile{Username: mockProfileUsername, PhotoURL: mockProfilePhotoURL}, nil
}
