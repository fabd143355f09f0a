package resume

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrInvalidDateRange is returned when an entry ends before it starts
var ErrInvalidDateRange = errors.New("end date must be after start date")

// Handler handles HTTP requests for resume entries
type Handler struct {
	repo *Repository
}

// NewHandler creates a new resume handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListPublic handles GET /api/resume
func (h *Handler) ListPublic(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list resume items", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resume items"})
		return
	}

	list := make([]PublicItem, 0, len(items))
	for _, item := range items {
		list = append(list, PublicItem{
			ID:           item.ID,
			Company:      item.Company,
			Position:     item.Position,
			Description:  item.Description,
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
			DisplayOrder: item.DisplayOrder,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": list})
}

// List handles GET /api/admin/resume
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list resume items", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resume items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create handles POST /api/admin/resume
func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidDateRange.Error()})
		return
	}

	item, err := h.repo.Create(c.Request.Context(), &Item{
		Company:      req.Company,
		Position:     req.Position,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		slog.Error("Failed to create resume item", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resume item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// Get handles GET /api/admin/resume/:id
func (h *Handler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to fetch resume item", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resume item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Update handles PUT /api/admin/resume/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to fetch resume item", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resume item"})
		return
	}

	if req.Company != nil {
		existing.Company = *req.Company
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.StartDate != nil {
		existing.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		existing.EndDate = req.EndDate
	}
	if req.DisplayOrder != nil {
		existing.DisplayOrder = *req.DisplayOrder
	}

	if existing.EndDate != nil && existing.EndDate.Before(existing.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidDateRange.Error()})
		return
	}

	item, err := h.repo.Update(c.Request.Context(), existing)
	if err != nil {
		slog.Error("Failed to update resume item", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resume item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete handles DELETE /api/admin/resume/:id
func (h *Handler) Delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to delete resume item", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resume item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
