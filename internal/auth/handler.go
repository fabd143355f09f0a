package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lunblog/internal/session"
)

// Handler handles authentication-related HTTP requests
type Handler struct {
	service Service
}

// NewHandler creates a new authentication handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the auth endpoints onto the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/session", h.Session)
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, sessionID, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		slog.Error("Login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	session.IssueCookie(c, sessionID)

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User:    user,
	})
}

// Logout handles POST /api/auth/logout. It always succeeds: deleting an
// already-gone session is a no-op.
func (h *Handler) Logout(c *gin.Context) {
	if sessionID, ok := session.ReadCookie(c); ok {
		if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
			slog.Warn("Failed to delete session on logout", "error", err.Error())
		}
	}

	session.ClearCookie(c)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session handles GET /api/auth/session. It reports the authenticated
// identity, or 401 when the request carries no valid session.
func (h *Handler) Session(c *gin.Context) {
	sessionID, ok := session.ReadCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.ResolveSession(c.Request.Context(), sessionID)
	if errors.Is(err, ErrNoSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err != nil {
		slog.Error("Session resolution failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
