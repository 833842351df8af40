package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
)

const habitProgressColumns = `id, habit_id, user_id, category_id, ord,
		start_date, end_date, goal_duration, completed_duration, completed`

// SQLiteHabitProgressRepo implements HabitProgressRepo using a SQLite database.
type SQLiteHabitProgressRepo struct {
	db db.DBTX
}

// NewSQLiteHabitProgressRepo creates a new SQLiteHabitProgressRepo.
func NewSQLiteHabitProgressRepo(db db.DBTX) *SQLiteHabitProgressRepo {
	return &SQLiteHabitProgressRepo{db: db}
}

func (r *SQLiteHabitProgressRepo) CreateBatch(ctx context.Context, progressRows []*domain.HabitProgress) error {
	if len(progressRows) == 0 {
		return fmt.Errorf("empty progress batch: %w", domain.ErrProgressGeneration)
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO habit_progress (id, habit_id, user_id, category_id, ord,
		start_date, end_date, goal_duration, completed_duration, completed) VALUES `)
	args := make([]any, 0, len(progressRows)*10)
	for i, p := range progressRows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			p.ID,
			p.HabitID,
			p.UserID,
			p.CategoryID,
			p.Ord,
			p.StartDate.Format(dateLayout),
			p.EndDate.Format(dateLayout),
			p.GoalDuration,
			p.CompletedDuration,
			boolToInt(p.Completed),
		)
	}

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("batch inserting habit progress: %w", err)
	}
	return nil
}

func (r *SQLiteHabitProgressRepo) ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitProgress, error) {
	query := `SELECT ` + habitProgressColumns + ` FROM habit_progress WHERE habit_id = ? ORDER BY ord`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing habit progress: %w", err)
	}
	defer rows.Close()

	var result []*domain.HabitProgress
	for rows.Next() {
		var p domain.HabitProgress
		var startStr, endStr string
		var completedInt int
		err := rows.Scan(
			&p.ID, &p.HabitID, &p.UserID, &p.CategoryID, &p.Ord,
			&startStr, &endStr, &p.GoalDuration, &p.CompletedDuration, &completedInt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning habit progress row: %w", err)
		}
		p.Completed = intToBool(completedInt)
		p.StartDate, err = parseDate(startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		p.EndDate, err = parseDate(endStr)
		if err != nil {
			return nil, fmt.Errorf("parsing end_date: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habit progress: %w", err)
	}
	return result, nil
}

// ApplyDelta adjusts every window containing day for the given
// user+category in a single UPDATE. The read-modify-write happens inside
// the statement, so concurrent propagations commute; the accumulated
// duration is floored at zero and the completed flag re-derived from the
// same expression.
func (r *SQLiteHabitProgressRepo) ApplyDelta(ctx context.Context, userID, categoryID string, day time.Time, delta int) ([]string, error) {
	dayStr := day.Format(dateLayout)

	habitRows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT habit_id FROM habit_progress
		WHERE user_id = ? AND category_id = ? AND start_date <= ? AND end_date >= ?`,
		userID, categoryID, dayStr, dayStr)
	if err != nil {
		return nil, fmt.Errorf("finding affected habits: %w", err)
	}
	var habitIDs []string
	for habitRows.Next() {
		var id string
		if err := habitRows.Scan(&id); err != nil {
			habitRows.Close()
			return nil, fmt.Errorf("scanning affected habit id: %w", err)
		}
		habitIDs = append(habitIDs, id)
	}
	habitRows.Close()
	if err := habitRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating affected habits: %w", err)
	}
	if len(habitIDs) == 0 {
		return nil, nil
	}

	query := `UPDATE habit_progress
		SET completed_duration = MAX(0, completed_duration + ?),
		    completed = CASE WHEN MAX(0, completed_duration + ?) >= goal_duration THEN 1 ELSE 0 END
		WHERE user_id = ? AND category_id = ? AND start_date <= ? AND end_date >= ?`
	if _, err := r.db.ExecContext(ctx, query, delta, delta, userID, categoryID, dayStr, dayStr); err != nil {
		return nil, fmt.Errorf("applying duration delta to habit progress: %w", err)
	}
	return habitIDs, nil
}

func (r *SQLiteHabitProgressRepo) DeleteByHabit(ctx context.Context, habitID string) error {
	query := `DELETE FROM habit_progress WHERE habit_id = ?`
	if _, err := r.db.ExecContext(ctx, query, habitID); err != nil {
		return fmt.Errorf("deleting habit progress: %w", err)
	}
	return nil
}
