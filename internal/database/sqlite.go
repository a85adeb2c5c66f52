// internal/database/sqlite.go
package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sstent/sportlog-go/internal/activity"
)

// ErrNotFound is returned when a delete targets a record id that does not
// exist.
var ErrNotFound = errors.New("activity not found")

type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at dbPath and
// ensures the schema exists. The caller owns the returned store and must
// Close it.
func Open(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// NewStoreFromDB wraps an existing sql.DB connection.
func NewStoreFromDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_date TEXT NOT NULL,
		activity_type TEXT NOT NULL,
		distance_km REAL NOT NULL,
		avg_metric_value REAL NOT NULL,
		avg_metric_unit TEXT NOT NULL,
		total_minutes REAL NOT NULL,
		calories INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_activities_activity_date ON activities(activity_date);
	CREATE INDEX IF NOT EXISTS idx_activities_activity_type ON activities(activity_type);
	`

	_, err := s.db.Exec(schema)
	return err
}

// InsertRecord persists a validated record and returns the id assigned by
// the store. The metric unit column is derived from the record's type at
// write time.
func (s *SQLiteStore) InsertRecord(rec *activity.Record) (int64, error) {
	query := `
	INSERT INTO activities (
		activity_date, activity_type, distance_km, avg_metric_value,
		avg_metric_unit, total_minutes, calories, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.Exec(query,
		rec.Date, rec.Type.String(), rec.DistanceKm, rec.AvgMetricValue,
		rec.AvgMetricUnit(), rec.TotalMinutes, rec.Calories, rec.CreatedAt,
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// FetchRecords runs the filtered query and returns matching records, most
// recent first (activity_date DESC, id DESC).
func (s *SQLiteStore) FetchRecords(f Filters) ([]activity.Record, error) {
	query, args, err := BuildActivitiesQuery(f)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []activity.Record
	for rows.Next() {
		var r activity.Record
		var typ, metricUnit string

		err := rows.Scan(
			&r.ID, &r.Date, &typ, &r.DistanceKm, &r.AvgMetricValue,
			&metricUnit, &r.TotalMinutes, &r.Calories,
		)
		if err != nil {
			return nil, err
		}

		// The stored unit column is redundant with the type; the record
		// derives it.
		r.Type = activity.Type(typ)
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteRecord removes one record by id.
func (s *SQLiteStore) DeleteRecord(id int64) error {
	result, err := s.db.Exec("DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountRecords reports the total number of stored activities.
func (s *SQLiteStore) CountRecords() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
