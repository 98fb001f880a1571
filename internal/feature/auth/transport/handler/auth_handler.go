// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/feature/user/domain/entity"
	jwtmw "account_backend/internal/platform/jwt"
)

// AuthUsecase defines the sign-in operation the handlers need.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// SignIn verifies the credential pair and returns a signed token plus the matched user.
	SignIn(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler handles the HTTP requests for the session boundary.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signin handles POST /auth/signin.
// - binds the request JSON to SigninReq, 400 on validation failure
// - 401 with distinct messages for an unknown email vs. a wrong password
// - on success returns the token and a sanitized profile, and mirrors the
//   token into the session cookie for cookie-based clients
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("signin failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email and password don't match."})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not sign in"})
		}
		return
	}

	// Session cookie; the client may also store the token itself and send
	// it as an Authorization header.
	c.SetCookie(jwtmw.CookieName, token, 0, "/", "", false, true)

	slog.Info("user signin successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SigninResp{
		Token: token,
		User: dto.PublicProfile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Signout handles GET /auth/signout.
// Clears the session cookie. There is no server-side session registry, so
// the client remains responsible for discarding a header-held token.
func (h *AuthHandler) Signout(c *gin.Context) {
	c.SetCookie(jwtmw.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
