package resume

import "time"

// Item represents one resume entry
type Item struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PublicItem is the shape exposed on the public resume page
type PublicItem struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DisplayOrder int        `json:"display_order"`
}

// CreateItemRequest is the request payload for creating a resume entry
type CreateItemRequest struct {
	Company      string     `json:"company" binding:"required,max=255"`
	Position     string     `json:"position" binding:"required,max=255"`
	Description  string     `json:"description" binding:"required"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	DisplayOrder int        `json:"display_order"`
}

// UpdateItemRequest is the request payload for partially updating an entry
type UpdateItemRequest struct {
	Company      *string    `json:"company" binding:"omitempty,max=255"`
	Position     *string    `json:"position" binding:"omitempty,max=255"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DisplayOrder *int       `json:"display_order"`
}
