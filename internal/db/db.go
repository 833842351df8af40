package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens the cadence SQLite database at path (":memory:" for an
// in-memory one), switches it to WAL journaling, turns on foreign key
// enforcement and brings the schema up to date. The returned handle is
// ready for repository use.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// WAL keeps list/show reads from blocking propagation writes.
	if _, err := database.Exec("PRAGMA journal_mode = WAL"); err != nil {
		database.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	// The schema leans on FK actions (cascade to habit_progress, set-null
	// on project delete), so enforcement must be on.
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("enforcing foreign keys: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return database, nil
}
