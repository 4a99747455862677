// Package storage provides a SQLite flight log of touchdown telemetry.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Store manages the SQLite database connection for the flight log.
type Store struct {
	db *sql.DB
}

// FlightEntry is one recorded touchdown.
type FlightEntry struct {
	ID         int64
	StageID    string
	Outcome    string // "landed" or "crashed"
	Speed      float64
	Tilt       float64
	PadOffset  float64
	Fuel       float64
	FlightSecs float64
	CreatedAt  time.Time
}

// FlightStats aggregates the log for one stage.
type FlightStats struct {
	StageID       string
	Flights       int
	Landed        int
	MeanSpeed     float64 // Mean touchdown speed over all flights
	BestPadOffset float64 // Smallest pad offset among landings, 0 if none
	LastFlight    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			speed REAL NOT NULL,
			tilt REAL NOT NULL,
			pad_offset REAL NOT NULL,
			fuel REAL NOT NULL,
			flight_secs REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_flights_stage_id ON flights(stage_id, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordFlight stores a touchdown report. Reports without an outcome are rejected.
// Returns the ID of the inserted record.
func (s *Store) RecordFlight(stageID string, r core.FlightReport) (int64, error) {
	if r.Outcome == core.OutcomeNone {
		return 0, errors.New("storage: flight has no outcome")
	}

	result, err := s.db.Exec(
		`INSERT INTO flights (stage_id, outcome, speed, tilt, pad_offset, fuel, flight_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stageID, r.Outcome.String(), r.Speed, r.Tilt, r.PadOffset, r.Fuel, r.FlightSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record flight: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentFlights retrieves the latest flights for a stage, newest first.
// An empty stageID selects every stage.
func (s *Store) RecentFlights(stageID string, limit int) ([]FlightEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, stage_id, outcome, speed, tilt, pad_offset, fuel, flight_secs, created_at
		 FROM flights
		 WHERE ? = '' OR stage_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		stageID, stageID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	var entries []FlightEntry
	for rows.Next() {
		var e FlightEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.StageID, &e.Outcome, &e.Speed, &e.Tilt,
			&e.PadOffset, &e.Fuel, &e.FlightSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats aggregates the flight log for a stage.
func (s *Store) Stats(stageID string) (*FlightStats, error) {
	stats := &FlightStats{StageID: stageID}

	var best sql.NullFloat64
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'landed'), 0),
		        COALESCE(AVG(speed), 0),
		        MIN(CASE WHEN outcome = 'landed' THEN pad_offset END),
		        MAX(created_at)
		 FROM flights WHERE stage_id = ?`,
		stageID,
	).Scan(&stats.Flights, &stats.Landed, &stats.MeanSpeed, &best, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get flight stats: %w", err)
	}
	if best.Valid {
		stats.BestPadOffset = best.Float64
	}
	stats.LastFlight = parseTime(last)

	return stats, nil
}

// ClearFlights deletes the flight log for a stage. An empty stageID clears everything.
func (s *Store) ClearFlights(stageID string) error {
	_, err := s.db.Exec("DELETE FROM flights WHERE ? = '' OR stage_id = ?", stageID, stageID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear flights: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
