package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
)

const taskColumns = `id, user_id, name, description, color, start_date, end_date,
		goal_duration, completed_duration, completed, category_id, project_id,
		created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, user_id, name, description, color, start_date, end_date,
		goal_duration, completed_duration, completed, category_id, project_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Name,
		t.Description,
		t.Color,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.GoalDuration,
		t.CompletedDuration,
		boolToInt(t.Completed),
		t.CategoryID,
		nullableStr(t.ProjectID),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY start_date, name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListEndedBefore(ctx context.Context, userID string, day time.Time) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND end_date < ? ORDER BY end_date`
	rows, err := r.db.QueryContext(ctx, query, userID, day.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing ended tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

// ApplyDelta mirrors the habit-progress window adjustment on the task rows
// themselves: atomic increment floored at zero, completed flag re-derived
// in the same statement.
func (r *SQLiteTaskRepo) ApplyDelta(ctx context.Context, userID, categoryID string, day time.Time, delta int) error {
	dayStr := day.Format(dateLayout)
	query := `UPDATE tasks
		SET completed_duration = MAX(0, completed_duration + ?),
		    completed = CASE WHEN MAX(0, completed_duration + ?) >= goal_duration THEN 1 ELSE 0 END,
		    updated_at = ?
		WHERE user_id = ? AND category_id = ? AND start_date <= ? AND end_date >= ?`
	_, err := r.db.ExecContext(ctx, query,
		delta, delta, time.Now().UTC().Format(time.RFC3339),
		userID, categoryID, dayStr, dayStr,
	)
	if err != nil {
		return fmt.Errorf("applying duration delta to tasks: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var startStr, endStr, createdAtStr, updatedAtStr string
	var projectID sql.NullString
	var completedInt int

	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.Color, &startStr, &endStr,
		&t.GoalDuration, &t.CompletedDuration, &completedInt, &t.CategoryID, &projectID,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, startStr, endStr, createdAtStr, updatedAtStr, projectID, completedInt)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var startStr, endStr, createdAtStr, updatedAtStr string
		var projectID sql.NullString
		var completedInt int

		err := rows.Scan(
			&t.ID, &t.UserID, &t.Name, &t.Description, &t.Color, &startStr, &endStr,
			&t.GoalDuration, &t.CompletedDuration, &completedInt, &t.CategoryID, &projectID,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		task, err := r.populateTask(&t, startStr, endStr, createdAtStr, updatedAtStr, projectID, completedInt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	startStr, endStr, createdAtStr, updatedAtStr string,
	projectID sql.NullString,
	completedInt int,
) (*domain.Task, error) {
	t.ProjectID = strToNullable(projectID)
	t.Completed = intToBool(completedInt)

	var err error
	t.StartDate, err = parseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	t.EndDate, err = parseDate(endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}
