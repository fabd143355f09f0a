// Package posts implements the blog post CRUD surface: public read access
// to published posts and the admin-only write operations behind the
// authentication gate.
package posts

import (
	"context"
	"errors"
	"regexp"
	"time"
)

// ErrInvalidSlug is returned when a slug is not lowercase URL-safe
var ErrInvalidSlug = errors.New("slug must be lowercase and URL-safe")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service holds the business rules around post persistence, mainly the
// slug format and the publish/draft transitions of published_at.
type Service struct {
	repo *Repository
}

// NewService creates a new posts service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new post. Creating directly as
// published stamps published_at with the current time.
func (s *Service) Create(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	if !slugPattern.MatchString(req.Slug) {
		return nil, ErrInvalidSlug
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	post := &Post{
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Status:   status,
		Metadata: req.Metadata,
	}

	if status == StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	return s.repo.Create(ctx, post)
}

// Get retrieves a post by ID regardless of status
func (s *Service) Get(ctx context.Context, postID string) (*Post, error) {
	return s.repo.GetByID(ctx, postID)
}

// GetPublishedBySlug retrieves a published post for the public surface
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*Post, error) {
	return s.repo.GetPublishedBySlug(ctx, slug)
}

// ListAll retrieves every post for the admin view
func (s *Service) ListAll(ctx context.Context) ([]Post, error) {
	return s.repo.ListAll(ctx)
}

// ListPublished retrieves published posts for the public surface
func (s *Service) ListPublished(ctx context.Context) ([]Post, error) {
	return s.repo.ListPublished(ctx)
}

// Update applies a partial update. Publishing stamps published_at only if
// it was never set; reverting to draft clears it.
func (s *Service) Update(ctx context.Context, postID string, req *UpdatePostRequest) (*Post, error) {
	existing, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Slug != nil {
		if !slugPattern.MatchString(*req.Slug) {
			return nil, ErrInvalidSlug
		}
		existing.Slug = *req.Slug
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Excerpt != nil {
		existing.Excerpt = req.Excerpt
	}
	if req.Metadata != nil {
		existing.Metadata = req.Metadata
	}

	if req.Status != nil {
		existing.Status = *req.Status
		switch *req.Status {
		case StatusPublished:
			if existing.PublishedAt == nil {
				now := time.Now()
				existing.PublishedAt = &now
			}
		case StatusDraft:
			existing.PublishedAt = nil
		}
	}

	return s.repo.Update(ctx, existing)
}

// Delete removes a post
func (s *Service) Delete(ctx context.Context, postID string) error {
	return s.repo.Delete(ctx, postID)
}
