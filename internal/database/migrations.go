package database

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// The schema is small enough to carry inline rather than as .sql files.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_listings",
		SQL: `
			CREATE TABLE IF NOT EXISTS listings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				neighbourhood TEXT NOT NULL,
				room_type TEXT NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				bedrooms INTEGER NOT NULL,
				bathrooms REAL NOT NULL,
				accommodates INTEGER NOT NULL,
				number_of_reviews INTEGER NOT NULL,
				review_score REAL NOT NULL,
				has_wifi INTEGER NOT NULL,
				has_kitchen INTEGER NOT NULL,
				has_free_parking INTEGER NOT NULL,
				has_air_conditioning INTEGER NOT NULL,
				price REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_listings_neighbourhood ON listings(neighbourhood);
		`,
	},
	{
		Version: 2,
		Name:    "create_training_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS training_runs (
				id TEXT PRIMARY KEY,
				seed INTEGER NOT NULL,
				tree_count INTEGER NOT NULL,
				train_samples INTEGER NOT NULL,
				test_samples INTEGER NOT NULL,
				mae REAL NOT NULL,
				rmse REAL NOT NULL,
				r2 REAL NOT NULL,
				duration_ms INTEGER NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// Migrate applies pending migrations in version order.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
