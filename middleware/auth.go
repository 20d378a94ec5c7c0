package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "shophub/common/errors"
	"shophub/repository"
)

const UserContextKey = "userID"

// AuthMiddleware requires a valid bearer token and stores the caller's user
// id in the gin context. Tokens are issued by the external auth service; this
// backend only validates them.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
			return
		}
		c.Set(UserContextKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware stores the caller's user id when a valid token is
// present and proceeds anonymously otherwise. Used where an unauthenticated
// caller is a valid state, not an error (cart count, public tracking).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := callerFromRequest(c); ok {
			c.Set(UserContextKey, userID)
		}
		c.Next()
	}
}

// AdminOnly is the shared authorization guard for privileged operations: it
// loads the caller's user row and rejects non-admins. Must run after
// AuthMiddleware.
func AdminOnly(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil || !user.IsAdmin {
			zap.L().Warn("admin access denied", zap.String("user_id", userID.String()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbidden.Message})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated caller's id from the gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(uuid.UUID); ok && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, errors.New("user ID not found in context")
}

func callerFromRequest(c *gin.Context) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return uuid.Nil, false
	}

	claims, err := ParseAndValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return uuid.Nil, false
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
