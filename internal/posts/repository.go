package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"lunblog/internal/database"
)

var (
	// ErrPostNotFound is returned when no post matches the lookup
	ErrPostNotFound = errors.New("post not found")
	// ErrSlugTaken is returned when a post slug is already in use
	ErrSlugTaken = errors.New("slug already in use")
)

const postColumns = `id, title, slug, content, excerpt, status, metadata, published_at, created_at, updated_at`

// Repository handles all database operations for posts
type Repository struct {
	db database.Service
}

// NewRepository creates a new posts repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// Create inserts a new post
func (r *Repository) Create(ctx context.Context, post *Post) (*Post, error) {
	metadata, err := encodeMetadata(post.Metadata)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO blog_posts (id, title, slug, content, excerpt, status, metadata, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + postColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New().String(),
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Status,
		metadata,
		post.PublishedAt,
	)

	created, err := scanPost(row)
	if isUniqueViolation(err) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// GetByID retrieves a single post regardless of status
func (r *Repository) GetByID(ctx context.Context, postID string) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, postID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// GetPublishedBySlug retrieves a published post by its slug. Drafts are
// invisible here.
func (r *Repository) GetPublishedBySlug(ctx context.Context, slug string) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1 AND status = $2`

	post, err := scanPost(r.db.QueryRow(ctx, query, slug, StatusPublished))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// ListAll retrieves every post, most recently updated first. Admin view.
func (r *Repository) ListAll(ctx context.Context) ([]Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts ORDER BY updated_at DESC`
	return r.queryPosts(ctx, query)
}

// ListPublished retrieves published posts, newest publication first.
func (r *Repository) ListPublished(ctx context.Context) ([]Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE status = $1 ORDER BY published_at DESC`
	return r.queryPosts(ctx, query, StatusPublished)
}

// Update replaces the mutable columns of a post
func (r *Repository) Update(ctx context.Context, post *Post) (*Post, error) {
	metadata, err := encodeMetadata(post.Metadata)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE blog_posts
		SET title = $1, slug = $2, content = $3, excerpt = $4, status = $5,
			metadata = $6, published_at = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + postColumns

	row := r.db.QueryRow(ctx, query,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Status,
		metadata,
		post.PublishedAt,
		post.ID,
	)

	updated, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if isUniqueViolation(err) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// Delete removes a post
func (r *Repository) Delete(ctx context.Context, postID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *Repository) queryPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	var metadata []byte

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.Status,
		&metadata,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &post.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode post metadata: %w", err)
		}
	}

	return post, nil
}

func encodeMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode post metadata: %w", err)
	}
	return encoded, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
