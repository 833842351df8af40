package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (user_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		category_id TEXT NOT NULL REFERENCES categories(id),
		date        TEXT NOT NULL,
		duration    INTEGER NOT NULL CHECK(duration >= 0),
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_user_category_date
		ON activities(user_id, category_id, date)`,

	`CREATE TABLE IF NOT EXISTS habits (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '',
		period            TEXT NOT NULL
		                  CHECK(period IN ('daily','weekly','monthly')),
		number_of_periods INTEGER NOT NULL CHECK(number_of_periods BETWEEN 2 AND 90),
		start_date        TEXT NOT NULL,
		end_date          TEXT NOT NULL,
		goal_duration     INTEGER NOT NULL CHECK(goal_duration >= 0),
		category_id       TEXT NOT NULL REFERENCES categories(id),
		project_id        TEXT REFERENCES projects(id) ON DELETE SET NULL,
		completed         INTEGER NOT NULL DEFAULT 0,
		current_streak    INTEGER NOT NULL DEFAULT 0,
		best_streak       INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habit_progress (
		id                 TEXT PRIMARY KEY,
		habit_id           TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		user_id            TEXT NOT NULL,
		category_id        TEXT NOT NULL REFERENCES categories(id),
		ord                INTEGER NOT NULL CHECK(ord > 0),
		start_date         TEXT NOT NULL,
		end_date           TEXT NOT NULL,
		goal_duration      INTEGER NOT NULL CHECK(goal_duration >= 0),
		completed_duration INTEGER NOT NULL DEFAULT 0,
		completed          INTEGER NOT NULL DEFAULT 0,
		UNIQUE (habit_id, ord)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habit_progress_lookup
		ON habit_progress(user_id, category_id, start_date, end_date)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_progress_habit ON habit_progress(habit_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		name               TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		color              TEXT NOT NULL DEFAULT '',
		start_date         TEXT NOT NULL,
		end_date           TEXT NOT NULL,
		goal_duration      INTEGER NOT NULL CHECK(goal_duration >= 0),
		completed_duration INTEGER NOT NULL DEFAULT 0,
		completed          INTEGER NOT NULL DEFAULT 0,
		category_id        TEXT NOT NULL REFERENCES categories(id),
		project_id         TEXT REFERENCES projects(id) ON DELETE SET NULL,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_lookup
		ON tasks(user_id, category_id, start_date, end_date)`,

	`CREATE TABLE IF NOT EXISTS archived_habits (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '',
		period            TEXT NOT NULL,
		number_of_periods INTEGER NOT NULL,
		start_date        TEXT NOT NULL,
		end_date          TEXT NOT NULL,
		goal_duration     INTEGER NOT NULL,
		category_name     TEXT NOT NULL,
		completed         INTEGER NOT NULL,
		current_streak    INTEGER NOT NULL,
		best_streak       INTEGER NOT NULL,
		archived_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS archived_tasks (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		name               TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		color              TEXT NOT NULL DEFAULT '',
		start_date         TEXT NOT NULL,
		end_date           TEXT NOT NULL,
		goal_duration      INTEGER NOT NULL,
		completed_duration INTEGER NOT NULL,
		category_name      TEXT NOT NULL,
		completed          INTEGER NOT NULL,
		archived_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sweep_state (
		user_id  TEXT PRIMARY KEY,
		last_run TEXT NOT NULL DEFAULT ''
	)`,
}
