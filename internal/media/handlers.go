package media

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for media operations
type Handler struct {
	service *Service
}

// NewHandler creates a new media handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes wires the media endpoints. The caller is expected to
// mount these behind the auth gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/media/upload-url", h.CreateUploadURL)
	rg.POST("/media/download-url", h.CreateDownloadURL)
	rg.DELETE("/media/:key", h.Delete)
}

// CreateUploadURL handles POST /api/admin/media/upload-url
func (h *Handler) CreateUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.CreateUploadURL(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateDownloadURL handles POST /api/admin/media/download-url
func (h *Handler) CreateDownloadURL(c *gin.Context) {
	var req DownloadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.CreateDownloadURL(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to generate download URL", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate download URL"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/admin/media/:key
func (h *Handler) Delete(c *gin.Context) {
	fileKey := c.Param("key")
	if fileKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File key is required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), fileKey); err != nil {
		slog.Error("Failed to delete media object", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
