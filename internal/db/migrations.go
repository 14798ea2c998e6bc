package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS days (
			date         TEXT PRIMARY KEY,
			label        TEXT NOT NULL,
			theme        TEXT NOT NULL DEFAULT '',
			weather_note TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS activities (
			id               TEXT PRIMARY KEY,
			day_date         TEXT NOT NULL REFERENCES days(date) ON DELETE CASCADE,
			position         INTEGER NOT NULL,
			start_time       TEXT NOT NULL DEFAULT '',
			title            TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			location_name    TEXT NOT NULL DEFAULT '',
			category         TEXT NOT NULL CHECK(category IN ('flight', 'food', 'sightseeing', 'transport', 'lodging', 'shopping', 'event')),
			lat              REAL,
			lng              REAL,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			notes            TEXT NOT NULL DEFAULT '',
			price            TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(day_date, position);

		CREATE TABLE IF NOT EXISTS packing_items (
			id      TEXT PRIMARY KEY,
			item    TEXT NOT NULL,
			checked INTEGER NOT NULL DEFAULT 0
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
