// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/transport/http/dto"
	"account_backend/internal/feature/user/usecase"
)

// UserUsecase defines the account management operations the handlers need.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	// List returns all registered users.
	List(ctx context.Context) ([]*entity.User, error)
	// Signup registers a new user with the given name, email and password.
	Signup(ctx context.Context, name, email, password string) error
	// Update applies the allow-listed fields to the user and persists it.
	Update(ctx context.Context, user *entity.User, upd usecase.UserUpdate) (*entity.User, error)
	// Delete permanently removes the user.
	Delete(ctx context.Context, user *entity.User) error
}

// UserHandler handles the HTTP requests for user CRUD operations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users.
// Unauthenticated; returns every user as a sanitized projection.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("user listing failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not retrieve users"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRespList(users))
}

// Create handles POST /api/users (sign-up).
// - binds the request JSON to SignupReq, 400 on validation failure
// - 400 with "Email already exists" on a duplicate email
// - 200 with a success message otherwise; the password is never echoed back
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.users.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "Successfully signed up!"})
}

// Read handles GET /api/users/:userId.
// The user was already loaded by the LoadUser middleware; any authenticated
// identity may read any profile.
func (h *UserHandler) Read(c *gin.Context) {
	user := loadedUser(c)
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResp(user))
}

// Update handles PUT /api/users/:userId.
// Only the allow-listed fields of UpdateUserReq are applied; a password
// change is re-salted and re-hashed before it is stored.
func (h *UserHandler) Update(c *gin.Context) {
	user := loadedUser(c)
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user update validation failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.users.Update(c.Request.Context(), user, usecase.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("user update failed", "error", err, "user_id", user.ID)
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("user updated", "user_id", updated.ID)
	c.JSON(http.StatusOK, dto.NewUserResp(updated))
}

// Delete handles DELETE /api/users/:userId.
// Removal is permanent; the deleted user's sanitized projection is returned.
func (h *UserHandler) Delete(c *gin.Context) {
	user := loadedUser(c)
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), user); err != nil {
		slog.Error("user delete failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete user"})
		return
	}

	slog.Info("user deleted", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.NewUserResp(user))
}
