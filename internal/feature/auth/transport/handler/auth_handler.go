// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wallpaper_backend/internal/api"
	"wallpaper_backend/internal/feature/auth/domain/entity"
	"wallpaper_backend/internal/feature/auth/transport/http/dto"
	"wallpaper_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and returns it with an issued token.
	Register(ctx context.Context, username, email, password string) (*entity.User, string, error)
	// Login authenticates a user and returns the account with an issued token.
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
}

// AuthHandler handles the action-dispatched POST /auth endpoint.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Authenticate dispatches on the request's action tag.
//
// Endpoint: POST /auth
// Body: {"action": "register"|"login", "username", "email", "password"}
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("auth request body unreadable", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	switch req.Action {
	case "register":
		h.register(c, req)
	case "login":
		h.login(c, req)
	default:
		slog.Warn("unsupported auth action", "action", req.Action, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid action"})
	}
}

// register handles the register action.
// - missing fields are rejected locally, before any storage round trip
// - a taken username or email is 400, whether caught by the pre-check or the
//   storage constraint under a registration race
// - success is 200 with the token and the public user fields
func (h *AuthHandler) register(c *gin.Context, req dto.AuthRequest) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		return
	}

	user, tokenStr, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserExists):
			slog.Warn("registration conflict", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Username or email already exists"})
		case errors.Is(err, usecase.ErrStorageUnavailable):
			slog.Error("registration storage unavailable", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Service temporarily unavailable"})
		default:
			slog.Error("registration failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{
		Token: tokenStr,
		User:  api.UserResponse{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}

// login handles the login action. The response for an unknown username and a
// wrong password is identical so callers cannot enumerate accounts.
func (h *AuthHandler) login(c *gin.Context, req dto.AuthRequest) {
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing username or password"})
		return
	}

	user, tokenStr, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		case errors.Is(err, usecase.ErrStorageUnavailable):
			slog.Error("login storage unavailable", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Service temporarily unavailable"})
		default:
			slog.Error("login failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{
		Token: tokenStr,
		User:  api.UserResponse{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}
