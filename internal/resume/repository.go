// Package resume implements CRUD for resume entries: public read access
// and admin-only writes behind the authentication gate.
package resume

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lunblog/internal/database"
)

// ErrItemNotFound is returned when no resume entry matches the lookup
var ErrItemNotFound = errors.New("resume item not found")

const itemColumns = `id, company, position, description, start_date, end_date, display_order, created_at, updated_at`

// Repository handles all database operations for resume entries
type Repository struct {
	db database.Service
}

// NewRepository creates a new resume repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// Create inserts a new resume entry
func (r *Repository) Create(ctx context.Context, item *Item) (*Item, error) {
	query := `
		INSERT INTO resume_items (id, company, position, description, start_date, end_date, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New().String(),
		item.Company,
		item.Position,
		item.Description,
		item.StartDate,
		item.EndDate,
		item.DisplayOrder,
	)

	created, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume item: %w", err)
	}

	return created, nil
}

// GetByID retrieves a single resume entry
func (r *Repository) GetByID(ctx context.Context, itemID string) (*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM resume_items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume item: %w", err)
	}

	return item, nil
}

// List retrieves all entries, highest display order first, then most
// recent start date.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM resume_items ORDER BY display_order DESC, start_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query resume items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resume items: %w", err)
	}

	return items, nil
}

// Update replaces the mutable columns of a resume entry
func (r *Repository) Update(ctx context.Context, item *Item) (*Item, error) {
	query := `
		UPDATE resume_items
		SET company = $1, position = $2, description = $3, start_date = $4,
			end_date = $5, display_order = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, query,
		item.Company,
		item.Position,
		item.Description,
		item.StartDate,
		item.EndDate,
		item.DisplayOrder,
		item.ID,
	)

	updated, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update resume item: %w", err)
	}

	return updated, nil
}

// Delete removes a resume entry
func (r *Repository) Delete(ctx context.Context, itemID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resume_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete resume item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID,
		&item.Company,
		&item.Position,
		&item.Description,
		&item.StartDate,
		&item.EndDate,
		&item.DisplayOrder,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}
