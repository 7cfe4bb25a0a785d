// Package database keeps the SQLite index of imported activities.
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the index at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		sport TEXT,
		start_time TEXT NOT NULL,
		duration INTEGER,
		distance REAL,
		avg_heart_rate REAL,
		max_heart_rate REAL,
		avg_power REAL,
		calories INTEGER,
		trackpoints INTEGER,
		filename TEXT UNIQUE NOT NULL,
		file_type TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_activities_start_time ON activities(start_time);
	CREATE INDEX IF NOT EXISTS idx_activities_sport ON activities(sport);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveActivity inserts one imported activity. A missing ID gets a fresh
// UUID; a zero CreatedAt gets the current time.
func (s *Store) SaveActivity(a *Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
	INSERT INTO activities (
		id, sport, start_time, duration, distance,
		avg_heart_rate, max_heart_rate, avg_power, calories, trackpoints,
		filename, file_type, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Sport, a.StartTime.UTC().Format(time.RFC3339), a.Duration, a.Distance,
		a.AvgHeartRate, a.MaxHeartRate, a.AvgPower, a.Calories, a.Trackpoints,
		a.Filename, a.FileType, a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save activity %s: %w", a.Filename, err)
	}
	return nil
}

func (s *Store) GetActivity(id string) (*Activity, error) {
	row := s.db.QueryRow(`
	SELECT id, sport, start_time, duration, distance,
	       avg_heart_rate, max_heart_rate, avg_power, calories, trackpoints,
	       filename, file_type, created_at
	FROM activities WHERE id = ?`, id)

	a, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("activity %s not found", id)
	}
	return a, err
}

func (s *Store) ListActivities(limit, offset int) ([]Activity, error) {
	rows, err := s.db.Query(`
	SELECT id, sport, start_time, duration, distance,
	       avg_heart_rate, max_heart_rate, avg_power, calories, trackpoints,
	       filename, file_type, created_at
	FROM activities
	ORDER BY start_time DESC
	LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

// ActivityExists reports whether a file was already imported, keyed by its
// filename.
func (s *Store) ActivityExists(filename string) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM activities WHERE filename = ?`, filename).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Stats() (*Stats, error) {
	var stats Stats
	err := s.db.QueryRow(`
	SELECT COUNT(*), COUNT(CASE WHEN max_heart_rate > 0 THEN 1 END)
	FROM activities`).Scan(&stats.Total, &stats.WithHeartRate)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*Activity, error) {
	var a Activity
	var startTime, createdAt string

	err := row.Scan(
		&a.ID, &a.Sport, &startTime, &a.Duration, &a.Distance,
		&a.AvgHeartRate, &a.MaxHeartRate, &a.AvgPower, &a.Calories, &a.Trackpoints,
		&a.Filename, &a.FileType, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if a.StartTime, err = time.Parse(time.RFC3339, startTime); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, err
	}
	return &a, nil
}
