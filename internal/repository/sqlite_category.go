package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
)

const categoryColumns = `id, user_id, name, created_at`

// SQLiteCategoryRepo implements CategoryRepo using a SQLite database.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

// NewSQLiteCategoryRepo creates a new SQLiteCategoryRepo.
func NewSQLiteCategoryRepo(db db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: db}
}

func (r *SQLiteCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`
	return r.scanCategory(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCategoryRepo) GetByName(ctx context.Context, userID, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = ? AND name = ?`
	return r.scanCategory(r.db.QueryRowContext(ctx, query, userID, name))
}

func (r *SQLiteCategoryRepo) List(ctx context.Context, userID string) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		var createdAtStr string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

func (r *SQLiteCategoryRepo) Rename(ctx context.Context, id, name string) error {
	query := `UPDATE categories SET name = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("renaming category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("category: %w", ErrNotFound)
	}
	return nil
}

// ReferenceCount counts live rows that still point at the category across
// activities, habits and tasks. Archived snapshots do not count: they
// carry the category name, not a reference.
func (r *SQLiteCategoryRepo) ReferenceCount(ctx context.Context, id string) (int, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM activities WHERE category_id = ?) +
		(SELECT COUNT(*) FROM habits WHERE category_id = ?) +
		(SELECT COUNT(*) FROM tasks WHERE category_id = ?)`
	var count int
	if err := r.db.QueryRowContext(ctx, query, id, id, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting category references: %w", err)
	}
	return count, nil
}

func (r *SQLiteCategoryRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) scanCategory(row *sql.Row) (*domain.Category, error) {
	var c domain.Category
	var createdAtStr string
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
