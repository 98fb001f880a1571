package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/usecase"
	jwtmw "account_backend/internal/platform/jwt"
)

// ContextProfile is the gin context key under which the loaded user is stored.
const ContextProfile = "profile"

// UserLoader is the lookup needed to resolve a :userId path parameter.
type UserLoader interface {
	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// LoadUser returns middleware that resolves the :userId path parameter into
// a user entity attached to the request context. An unknown or malformed ID
// short-circuits the request; no further handlers run.
func LoadUser(loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Could not retrieve user"})
			return
		}

		user, err := loader.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Could not retrieve user"})
			return
		}

		c.Set(ContextProfile, user)
		c.Next()
	}
}

// RequireOwner returns middleware that permits the request only when the
// authenticated identity matches the loaded user. For the user resource the
// record's own ID serves as its owner ID.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := loadedUser(c)
		authID, authed := c.Get(jwtmw.ContextUserID)

		authorized := profile != nil && authed && profile.ID == authID.(uint)
		if !authorized {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User is not authorized"})
			return
		}
		c.Next()
	}
}

// loadedUser fetches the user attached by LoadUser, or nil.
func loadedUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextProfile)
	if !ok {
		return nil
	}
	user, ok := v.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
