package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
)

const archivedHabitColumns = `id, user_id, name, description, color, period, number_of_periods,
		start_date, end_date, goal_duration, category_name, completed,
		current_streak, best_streak, archived_at`

const archivedTaskColumns = `id, user_id, name, description, color, start_date, end_date,
		goal_duration, completed_duration, category_name, completed, archived_at`

// SQLiteArchiveRepo implements ArchiveRepo using a SQLite database.
type SQLiteArchiveRepo struct {
	db db.DBTX
}

// NewSQLiteArchiveRepo creates a new SQLiteArchiveRepo.
func NewSQLiteArchiveRepo(db db.DBTX) *SQLiteArchiveRepo {
	return &SQLiteArchiveRepo{db: db}
}

func (r *SQLiteArchiveRepo) CreateHabit(ctx context.Context, a *domain.ArchivedHabit) error {
	query := `INSERT INTO archived_habits (id, user_id, name, description, color, period, number_of_periods,
		start_date, end_date, goal_duration, category_name, completed, current_streak, best_streak, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Name,
		a.Description,
		a.Color,
		string(a.Period),
		a.NumberOfPeriods,
		a.StartDate.Format(dateLayout),
		a.EndDate.Format(dateLayout),
		a.GoalDuration,
		a.CategoryName,
		boolToInt(a.Completed),
		a.CurrentStreak,
		a.BestStreak,
		a.ArchivedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting archived habit: %w", err)
	}
	return nil
}

func (r *SQLiteArchiveRepo) CreateTask(ctx context.Context, a *domain.ArchivedTask) error {
	query := `INSERT INTO archived_tasks (id, user_id, name, description, color, start_date, end_date,
		goal_duration, completed_duration, category_name, completed, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Name,
		a.Description,
		a.Color,
		a.StartDate.Format(dateLayout),
		a.EndDate.Format(dateLayout),
		a.GoalDuration,
		a.CompletedDuration,
		a.CategoryName,
		boolToInt(a.Completed),
		a.ArchivedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting archived task: %w", err)
	}
	return nil
}

func (r *SQLiteArchiveRepo) ListHabits(ctx context.Context, userID string) ([]*domain.ArchivedHabit, error) {
	query := `SELECT ` + archivedHabitColumns + ` FROM archived_habits WHERE user_id = ? ORDER BY archived_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing archived habits: %w", err)
	}
	defer rows.Close()

	var result []*domain.ArchivedHabit
	for rows.Next() {
		var a domain.ArchivedHabit
		var periodStr, startStr, endStr, archivedAtStr string
		var completedInt int
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &a.Description, &a.Color, &periodStr, &a.NumberOfPeriods,
			&startStr, &endStr, &a.GoalDuration, &a.CategoryName, &completedInt,
			&a.CurrentStreak, &a.BestStreak, &archivedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning archived habit row: %w", err)
		}
		a.Period = domain.Period(periodStr)
		a.Completed = intToBool(completedInt)
		if a.StartDate, err = parseDate(startStr); err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		if a.EndDate, err = parseDate(endStr); err != nil {
			return nil, fmt.Errorf("parsing end_date: %w", err)
		}
		if a.ArchivedAt, err = time.Parse(time.RFC3339, archivedAtStr); err != nil {
			return nil, fmt.Errorf("parsing archived_at: %w", err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archived habits: %w", err)
	}
	return result, nil
}

func (r *SQLiteArchiveRepo) ListTasks(ctx context.Context, userID string) ([]*domain.ArchivedTask, error) {
	query := `SELECT ` + archivedTaskColumns + ` FROM archived_tasks WHERE user_id = ? ORDER BY archived_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing archived tasks: %w", err)
	}
	defer rows.Close()

	var result []*domain.ArchivedTask
	for rows.Next() {
		var a domain.ArchivedTask
		var startStr, endStr, archivedAtStr string
		var completedInt int
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &a.Description, &a.Color, &startStr, &endStr,
			&a.GoalDuration, &a.CompletedDuration, &a.CategoryName, &completedInt, &archivedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning archived task row: %w", err)
		}
		a.Completed = intToBool(completedInt)
		if a.StartDate, err = parseDate(startStr); err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		if a.EndDate, err = parseDate(endStr); err != nil {
			return nil, fmt.Errorf("parsing end_date: %w", err)
		}
		if a.ArchivedAt, err = time.Parse(time.RFC3339, archivedAtStr); err != nil {
			return nil, fmt.Errorf("parsing archived_at: %w", err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archived tasks: %w", err)
	}
	return result, nil
}

func (r *SQLiteArchiveRepo) DeleteHabit(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM archived_habits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting archived habit: %w", err)
	}
	return nil
}

func (r *SQLiteArchiveRepo) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM archived_tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting archived task: %w", err)
	}
	return nil
}
