package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
)

// habitColumns is the canonical SELECT column list for habits.
const habitColumns = `id, user_id, name, description, color, period, number_of_periods,
		start_date, end_date, goal_duration, category_id, project_id,
		completed, current_streak, best_streak, created_at, updated_at`

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(db db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: db}
}

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (id, user_id, name, description, color, period, number_of_periods,
		start_date, end_date, goal_duration, category_id, project_id,
		completed, current_streak, best_streak, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.UserID,
		h.Name,
		h.Description,
		h.Color,
		string(h.Period),
		h.NumberOfPeriods,
		h.StartDate.Format(dateLayout),
		h.EndDate.Format(dateLayout),
		h.GoalDuration,
		h.CategoryID,
		nullableStr(h.ProjectID),
		boolToInt(h.Completed),
		h.CurrentStreak,
		h.BestStreak,
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = ?`
	return r.scanHabit(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteHabitRepo) List(ctx context.Context, userID string) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = ? ORDER BY start_date, name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()
	return r.scanHabits(rows)
}

func (r *SQLiteHabitRepo) ListEndedBefore(ctx context.Context, userID string, day time.Time) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = ? AND end_date < ? ORDER BY end_date`
	rows, err := r.db.QueryContext(ctx, query, userID, day.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing ended habits: %w", err)
	}
	defer rows.Close()
	return r.scanHabits(rows)
}

func (r *SQLiteHabitRepo) UpdateDerived(ctx context.Context, id string, completed bool, currentStreak, bestStreak int) error {
	query := `UPDATE habits SET completed = ?, current_streak = ?, best_streak = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(completed),
		currentStreak,
		bestStreak,
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating habit derived state: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("habit: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM habits WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) scanHabit(row *sql.Row) (*domain.Habit, error) {
	var h domain.Habit
	var periodStr, startStr, endStr, createdAtStr, updatedAtStr string
	var projectID sql.NullString
	var completedInt int

	err := row.Scan(
		&h.ID, &h.UserID, &h.Name, &h.Description, &h.Color, &periodStr, &h.NumberOfPeriods,
		&startStr, &endStr, &h.GoalDuration, &h.CategoryID, &projectID,
		&completedInt, &h.CurrentStreak, &h.BestStreak, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}
	return r.populateHabit(&h, periodStr, startStr, endStr, createdAtStr, updatedAtStr, projectID, completedInt)
}

func (r *SQLiteHabitRepo) scanHabits(rows *sql.Rows) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	for rows.Next() {
		var h domain.Habit
		var periodStr, startStr, endStr, createdAtStr, updatedAtStr string
		var projectID sql.NullString
		var completedInt int

		err := rows.Scan(
			&h.ID, &h.UserID, &h.Name, &h.Description, &h.Color, &periodStr, &h.NumberOfPeriods,
			&startStr, &endStr, &h.GoalDuration, &h.CategoryID, &projectID,
			&completedInt, &h.CurrentStreak, &h.BestStreak, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning habit row: %w", err)
		}
		habit, err := r.populateHabit(&h, periodStr, startStr, endStr, createdAtStr, updatedAtStr, projectID, completedInt)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	return habits, nil
}

func (r *SQLiteHabitRepo) populateHabit(
	h *domain.Habit,
	periodStr, startStr, endStr, createdAtStr, updatedAtStr string,
	projectID sql.NullString,
	completedInt int,
) (*domain.Habit, error) {
	h.Period = domain.Period(periodStr)
	h.ProjectID = strToNullable(projectID)
	h.Completed = intToBool(completedInt)

	var err error
	h.StartDate, err = parseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	h.EndDate, err = parseDate(endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	h.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return h, nil
}
