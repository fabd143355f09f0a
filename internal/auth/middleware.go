package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lunblog/internal/session"
)

// userContextKey is where RequireAuth stores the authenticated identity.
const userContextKey = "auth_user"

// RequireAuth gates admin routes. A request without a valid session is
// rejected with 401 before any handler or store mutation runs; a valid one
// has its expiry extended and the user injected into the gin context.
func RequireAuth(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := session.ReadCookie(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := service.ResolveSession(c.Request.Context(), sessionID)
		if errors.Is(err, ErrNoSession) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err != nil {
			slog.Error("Session resolution failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity injected by RequireAuth, or nil when
// the request was not authenticated.
func CurrentUser(c *gin.Context) *PublicUser {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*PublicUser)
	if !ok {
		return nil
	}
	return user
}
