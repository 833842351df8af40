package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/db"
)

// SQLiteSweepStateRepo implements SweepStateRepo over the sweep_state
// table that gates the daily archive sweep, one row per user.
type SQLiteSweepStateRepo struct {
	db db.DBTX
}

// NewSQLiteSweepStateRepo creates a new SQLiteSweepStateRepo.
func NewSQLiteSweepStateRepo(db db.DBTX) *SQLiteSweepStateRepo {
	return &SQLiteSweepStateRepo{db: db}
}

func (r *SQLiteSweepStateRepo) LastRun(ctx context.Context, userID string) (*time.Time, error) {
	var lastRun string
	err := r.db.QueryRowContext(ctx, `SELECT last_run FROM sweep_state WHERE user_id = ?`, userID).Scan(&lastRun)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("reading sweep state: %w", err)
	}
	if lastRun == "" {
		return nil, nil
	}
	day, err := parseDate(lastRun)
	if err != nil {
		return nil, fmt.Errorf("parsing sweep last_run: %w", err)
	}
	return &day, nil
}

func (r *SQLiteSweepStateRepo) SetLastRun(ctx context.Context, userID string, day time.Time) error {
	query := `INSERT INTO sweep_state (user_id, last_run) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET last_run = excluded.last_run`
	if _, err := r.db.ExecContext(ctx, query, userID, day.Format(dateLayout)); err != nil {
		return fmt.Errorf("writing sweep state: %w", err)
	}
	return nil
}
