package posts

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for posts
type Handler struct {
	service *Service
}

// NewHandler creates a new posts handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListPublished handles GET /api/posts
func (h *Handler) ListPublished(c *gin.Context) {
	published, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list published posts", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	list := make([]PublicPost, 0, len(published))
	for _, post := range published {
		list = append(list, PublicPost{
			ID:          post.ID,
			Title:       post.Title,
			Slug:        post.Slug,
			Excerpt:     post.Excerpt,
			PublishedAt: post.PublishedAt,
			Metadata:    post.Metadata,
		})
	}

	c.JSON(http.StatusOK, gin.H{"posts": list})
}

// GetBySlug handles GET /api/posts/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to fetch post by slug", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": PublicPostWithContent{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		PublishedAt: post.PublishedAt,
		Metadata:    post.Metadata,
	}})
}

// ListAll handles GET /api/admin/posts
func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list posts", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": list})
}

// Create handles POST /api/admin/posts
func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Get handles GET /api/admin/posts/:id
func (h *Handler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Update handles PUT /api/admin/posts/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete handles DELETE /api/admin/posts/:id
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
	case errors.Is(err, ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidSlug.Error()})
	default:
		slog.Error(fallback, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
