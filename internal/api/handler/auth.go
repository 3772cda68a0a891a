// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"bloomshop/internal/api/types"
	"bloomshop/internal/domain"
	"bloomshop/internal/service"
	"bloomshop/internal/util"
)

// AuthHandler handles HTTP requests for signup, login and profile.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// SignupRequest represents the request body for signup.
// Username and Password are pointers so a missing field can be told
// apart from an empty string; empty strings are accepted.
type SignupRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	PhotoURL *string `json:"photo_url"`
}

// Signup handles the user registration request.
// POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.Username == nil || req.Password == nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user := domain.NewUser(*req.Username, *req.Password, req.PhotoURL)
	if err := h.service.Signup(r.Context(), *user); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.MessageResponse{Message: "User created successfully"})
}

// Login handles the credential check. Unlike signup, the request is
// form-encoded rather than JSON.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	// Only field presence is checked; an empty value goes through the
	// lookup and surfaces as invalid credentials like any unknown user.
	username, hasUsername := formValue(r, "username")
	password, hasPassword := formValue(r, "password")
	if !hasUsername || !hasPassword {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, token)
}

// Profile returns the profile payload. The bearer token must be present
// but its content is ignored.
// GET /profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		respondWithError(h.logger, w, util.ErrNotAuthenticated)
		return
	}

	profile, err := h.service.Profile(r.Context(), token)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, profile)
}

// formValue reads a form field, reporting whether the field was present
// at all.
func formValue(r *http.Request, key string) (string, bool) {
	vals, ok := r.PostForm[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	return strings.TrimPrefix(auth, prefix), true
}
