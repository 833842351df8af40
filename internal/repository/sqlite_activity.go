package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
)

const activityColumns = `id, user_id, category_id, date, duration, note, created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, user_id, category_id, date, duration, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.CategoryID,
		a.Date.Format(dateLayout),
		a.Duration,
		a.Note,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteActivityRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = ? ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListByCategoryRange(ctx context.Context, userID, categoryID string, from, to time.Time) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE user_id = ? AND category_id = ? AND date >= ? AND date <= ?
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID, categoryID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing activities by range: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) SumDuration(ctx context.Context, userID, categoryID string, from, to time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(duration), 0) FROM activities
		WHERE user_id = ? AND category_id = ? AND date >= ? AND date <= ?`
	var total int
	err := r.db.QueryRowContext(ctx, query, userID, categoryID, from.Format(dateLayout), to.Format(dateLayout)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing activity durations: %w", err)
	}
	return total, nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET category_id = ?, date = ?, duration = ?, note = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.CategoryID,
		a.Date.Format(dateLayout),
		a.Duration,
		a.Note,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("activity: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM activities WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) scanActivity(row *sql.Row) (*domain.Activity, error) {
	var a domain.Activity
	var dateStr, createdAtStr, updatedAtStr string
	err := row.Scan(&a.ID, &a.UserID, &a.CategoryID, &dateStr, &a.Duration, &a.Note, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}
	return r.populateActivity(&a, dateStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteActivityRepo) scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var dateStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&a.ID, &a.UserID, &a.CategoryID, &dateStr, &a.Duration, &a.Note, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		activity, err := r.populateActivity(&a, dateStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) populateActivity(a *domain.Activity, dateStr, createdAtStr, updatedAtStr string) (*domain.Activity, error) {
	var err error
	a.Date, err = parseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return a, nil
}
