// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/anachung/itinera/internal/trip"
)

// SQLite implements trip.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadTrip returns every stored day in date order with activities in visit order.
func (s *SQLite) LoadTrip(ctx context.Context) ([]trip.DaySchedule, error) {
	dayQuery := `
		SELECT date, label, theme, weather_note
		FROM days
		ORDER BY date
	`

	rows, err := s.db.QueryContext(ctx, dayQuery)
	if err != nil {
		return nil, fmt.Errorf("querying days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []trip.DaySchedule
	for rows.Next() {
		var d trip.DaySchedule
		if err := rows.Scan(&d.Date, &d.Label, &d.Theme, &d.WeatherNote); err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days: %w", err)
	}

	for i := range days {
		items, err := s.loadActivities(ctx, days[i].Date)
		if err != nil {
			return nil, err
		}
		days[i].Activities = items
	}

	if days == nil {
		days = []trip.DaySchedule{}
	}
	return days, nil
}

func (s *SQLite) loadActivities(ctx context.Context, date string) ([]trip.Activity, error) {
	query := `
		SELECT id, start_time, title, description, location_name, category,
		       lat, lng, duration_minutes, notes, price
		FROM activities
		WHERE day_date = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []trip.Activity
	for rows.Next() {
		var (
			a        trip.Activity
			lat, lng sql.NullFloat64
		)
		err := rows.Scan(
			&a.ID,
			&a.StartTime,
			&a.Title,
			&a.Description,
			&a.LocationName,
			&a.Category,
			&lat,
			&lng,
			&a.DurationMinutes,
			&a.Notes,
			&a.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		if lat.Valid && lng.Valid {
			a.Coordinates = &trip.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}

	return items, nil
}

// CreateDay adds a new day. The date must not already exist.
func (s *SQLite) CreateDay(ctx context.Context, day trip.DaySchedule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM days WHERE date = ?`, day.Date).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking day: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("day %s already exists", day.Date)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO days (date, label, theme, weather_note) VALUES (?, ?, ?, ?)`,
		day.Date, day.Label, day.Theme, day.WeatherNote,
	)
	if err != nil {
		return fmt.Errorf("inserting day: %w", err)
	}

	if err := insertActivitiesTx(ctx, tx, day.Date, day.Activities); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ReplaceDayActivities replaces the full activity list for a date in a single
// transaction, preserving visit order.
func (s *SQLite) ReplaceDayActivities(ctx context.Context, date string, items []trip.Activity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM days WHERE date = ?`, date).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking day: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("replacing activities: %w", trip.ErrDayNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM activities WHERE day_date = ?`, date); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}

	if err := insertActivitiesTx(ctx, tx, date, items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertActivitiesTx(ctx context.Context, tx *sql.Tx, date string, items []trip.Activity) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO activities (
			id, day_date, position, start_time, title, description,
			location_name, category, lat, lng, duration_minutes, notes, price
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for pos, a := range items {
		var lat, lng any
		if a.Coordinates != nil {
			lat = a.Coordinates.Lat
			lng = a.Coordinates.Lng
		}
		_, err := stmt.ExecContext(ctx,
			a.ID,
			date,
			pos,
			a.StartTime,
			a.Title,
			a.Description,
			a.LocationName,
			string(a.Category),
			lat,
			lng,
			a.DurationMinutes,
			a.Notes,
			a.Price,
		)
		if err != nil {
			return fmt.Errorf("inserting activity %q: %w", a.Title, err)
		}
	}
	return nil
}

// ListPackingItems returns the packing checklist in insertion order.
func (s *SQLite) ListPackingItems(ctx context.Context) ([]trip.PackingItem, error) {
	query := `SELECT id, item, checked FROM packing_items ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying packing items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []trip.PackingItem
	for rows.Next() {
		var (
			p       trip.PackingItem
			checked int
		)
		if err := rows.Scan(&p.ID, &p.Text, &checked); err != nil {
			return nil, fmt.Errorf("scanning packing item: %w", err)
		}
		p.Checked = checked != 0
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating packing items: %w", err)
	}

	return items, nil
}

// AddPackingItem appends a checklist entry.
func (s *SQLite) AddPackingItem(ctx context.Context, item trip.PackingItem) error {
	checked := 0
	if item.Checked {
		checked = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO packing_items (id, item, checked) VALUES (?, ?, ?)`,
		item.ID, item.Text, checked,
	)
	if err != nil {
		return fmt.Errorf("inserting packing item: %w", err)
	}
	return nil
}

// TogglePackingItem flips the checked state of an entry.
func (s *SQLite) TogglePackingItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE packing_items SET checked = 1 - checked WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggling packing item: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("packing item %s not found", id)
	}
	return nil
}

// DeletePackingItem removes an entry.
func (s *SQLite) DeletePackingItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM packing_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting packing item: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("packing item %s not found", id)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
