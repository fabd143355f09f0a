package posts

import "time"

// Post statuses. Drafts are invisible on the public surface.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post represents a blog post
type Post struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Content     string         `json:"content"`
	Excerpt     *string        `json:"excerpt"`
	Status      string         `json:"status"`
	Metadata    map[string]any `json:"metadata"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PublicPost is the list-view shape on the public surface: no content, no
// draft-only fields.
type PublicPost struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Excerpt     *string        `json:"excerpt"`
	PublishedAt *time.Time     `json:"published_at"`
	Metadata    map[string]any `json:"metadata"`
}

// PublicPostWithContent is the detail-view shape for a single published post.
type PublicPostWithContent struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Content     string         `json:"content"`
	PublishedAt *time.Time     `json:"published_at"`
	Metadata    map[string]any `json:"metadata"`
}

// CreatePostRequest is the request payload for creating a post
type CreatePostRequest struct {
	Title    string         `json:"title" binding:"required,max=255"`
	Slug     string         `json:"slug" binding:"required,max=255"`
	Content  string         `json:"content" binding:"required"`
	Excerpt  *string        `json:"excerpt" binding:"omitempty,max=500"`
	Status   string         `json:"status" binding:"omitempty,oneof=draft published"`
	Metadata map[string]any `json:"metadata"`
}

// UpdatePostRequest is the request payload for partially updating a post
type UpdatePostRequest struct {
	Title    *string        `json:"title" binding:"omitempty,max=255"`
	Slug     *string        `json:"slug" binding:"omitempty,max=255"`
	Content  *string        `json:"content"`
	Excerpt  *string        `json:"excerpt" binding:"omitempty,max=500"`
	Status   *string        `json:"status" binding:"omitempty,oneof=draft published"`
	Metadata map[string]any `json:"metadata"`
}
