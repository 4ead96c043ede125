// Package runlog persists a RunRecord per completed simulation run to a
// SQLite database, migrated with golang-migrate, so historical runs survive
// process restarts and can be listed by the API and CLI.
package runlog

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunRecord summarizes one completed simulation run.
type RunRecord struct {
	ID                 int64
	RoomType           string
	CleaningMode       string
	RandomSeed         int64
	StartedAt          time.Time
	FinishedAt         time.Time
	Steps              int
	FinalState         string
	CleaningPercentage float64
	TotalDistance      float64
	BatteryCycles      int
	StuckCount         int
	ErrorsEncountered  int
}

// Store wraps a migrated SQLite database of run records.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and brings
// its schema up to the latest migration.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("failed to apply PRAGMAs: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func (s *Store) migrateUp() error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver: %w", err)
	}

	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun inserts rec and returns it with ID populated.
func (s *Store) RecordRun(rec RunRecord) (RunRecord, error) {
	res, err := s.db.Exec(`
		INSERT INTO runs (
			room_type, cleaning_mode, random_seed, started_at_unix, finished_at_unix,
			steps, final_state, cleaning_percentage, total_distance,
			battery_cycles, stuck_count, errors_encountered
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RoomType, rec.CleaningMode, rec.RandomSeed,
		rec.StartedAt.Unix(), rec.FinishedAt.Unix(),
		rec.Steps, rec.FinalState, rec.CleaningPercentage, rec.TotalDistance,
		rec.BatteryCycles, rec.StuckCount, rec.ErrorsEncountered,
	)
	if err != nil {
		return RunRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return RunRecord{}, err
	}
	rec.ID = id
	return rec, nil
}

// ListRuns returns the most recent runs, newest first, bounded by limit.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, room_type, cleaning_mode, random_seed, started_at_unix, finished_at_unix,
		       steps, final_state, cleaning_percentage, total_distance,
		       battery_cycles, stuck_count, errors_encountered
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedUnix, finishedUnix int64
		if err := rows.Scan(
			&rec.ID, &rec.RoomType, &rec.CleaningMode, &rec.RandomSeed,
			&startedUnix, &finishedUnix,
			&rec.Steps, &rec.FinalState, &rec.CleaningPercentage, &rec.TotalDistance,
			&rec.BatteryCycles, &rec.StuckCount, &rec.ErrorsEncountered,
		); err != nil {
			return nil, err
		}
		rec.StartedAt = time.Unix(startedUnix, 0).UTC()
		rec.FinishedAt = time.Unix(finishedUnix, 0).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}
