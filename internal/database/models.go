// internal/database/models.go
package database

import "github.com/sstent/sportlog-go/internal/activity"

// Filters carries the raw filter strings supplied by the presentation layer.
// Every field is optional; empty means "no filter".
type Filters struct {
	Type        string
	FromDate    string
	ToDate      string
	MinDistance string
	MaxDistance string
}

// Store is the persistence boundary for activity records.
type Store interface {
	InsertRecord(rec *activity.Record) (int64, error)
	FetchRecords(f Filters) ([]activity.Record, error)
	DeleteRecord(id int64) error
	CountRecords() (int, error)

	Close() error
}
