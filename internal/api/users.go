package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/muktalchal/estate-api/internal/auth"
	"github.com/muktalchal/estate-api/internal/user"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

// handleListUsers returns all user documents.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("list users failed", "error", err)
		writeInternalError(w, "failed to list users")
		return
	}
	if users == nil {
		users = []user.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

// handleGetUser returns a single user by email (exact match).
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	u, err := s.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeNotFound(w, "User not found")
			return
		}
		s.logger.Error("get user failed", "error", err, "email", email)
		writeInternalError(w, "Failed to fetch user")
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// handleGetUserRole returns a user's role by email.
//
// The response is narrowed to the email and role fields; clients that need
// the full profile use GET /users/{email}.
func (s *Server) handleGetUserRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	u, err := s.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeNotFound(w, "User not found")
			return
		}
		s.logger.Error("get user role failed", "error", err, "email", email)
		writeInternalError(w, "Failed to fetch user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"email": u.Email,
		"role":  u.Role,
	})
}

// handleCreateUser inserts a new user document.
//
// Uniqueness is enforced by the store's unique email index: when the insert
// reports a duplicate, the existing document is returned with the
// "User already exists" message. This holds under concurrent signups.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}

	if req.Role == "" {
		req.Role = user.DefaultRole
	}

	u := &user.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			s.logger.Error("hash password failed", "error", err)
			writeInternalError(w, "failed to create user")
			return
		}
		u.PasswordHash = hash
	}

	err := s.users.Create(r.Context(), u)
	if err == nil {
		s.logger.Info("user created", "user_id", u.ID.Hex(), "email", u.Email, "role", u.Role)
		writeJSON(w, http.StatusCreated, u)
		return
	}

	if !errors.Is(err, user.ErrEmailExists) {
		s.logger.Error("create user failed", "error", err, "email", req.Email)
		writeInternalError(w, "failed to create user")
		return
	}

	existing, err := s.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		s.logger.Error("fetch existing user failed", "error", err, "email", req.Email)
		writeInternalError(w, "failed to create user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User already exists",
		"user":    existing,
	})
}
