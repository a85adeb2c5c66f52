// Package activity holds the canonical activity record, the rules that turn
// raw form input into a valid record, and summary aggregation over record
// sets.
package activity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sstent/sportlog-go/internal/units"
)

const (
	// DateLayout is the calendar date format for activity dates.
	DateLayout = "2006-01-02"

	// CreatedAtLayout is the timestamp format stamped on new records.
	CreatedAtLayout = "2006-01-02T15:04:05"
)

var (
	ErrDateFormat      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidActivity = errors.New("invalid activity")
	ErrInvalidDistance = errors.New("distance must be greater than 0")
	ErrInvalidDuration = errors.New("duration must be greater than 0")
	ErrInvalidCalories = errors.New("calories cannot be negative")
	ErrInvalidMetric   = errors.New("average speed or pace must be greater than 0")
)

// Record is one logged activity. Records are immutable once persisted; the
// only mutation the store supports is deletion by ID.
type Record struct {
	ID             int64   `json:"id"`
	Date           string  `json:"activity_date"`
	Type           Type    `json:"activity_type"`
	DistanceKm     float64 `json:"distance_km"`
	AvgMetricValue float64 `json:"avg_metric_value"`
	TotalMinutes   float64 `json:"total_minutes"`
	Calories       int     `json:"calories"`
	CreatedAt      string  `json:"created_at"`
}

// AvgMetricUnit is derived from the activity type, so a record can never
// carry a unit that disagrees with its type.
func (r *Record) AvgMetricUnit() string {
	return r.Type.MetricUnit()
}

// Input carries the raw field strings of one activity as entered by the user.
// CreatedAt is only supplied by the persistence layer's own bookkeeping and
// tests; end users never set it.
type Input struct {
	Date      string
	Type      string
	Distance  string
	AvgMetric string
	Duration  string
	Calories  string
	CreatedAt string
}

// NewRecord is the single validated construction path from raw input to a
// Record. Checks run in a fixed order and the first failure wins; on error no
// partial record is returned.
func NewRecord(in Input) (*Record, error) {
	date := strings.TrimSpace(in.Date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("%q: %w", date, ErrDateFormat)
	}

	typ, err := ParseType(in.Type)
	if err != nil {
		return nil, err
	}

	distance, err := units.Float(in.Distance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDistance, err)
	}
	if distance <= 0 {
		return nil, ErrInvalidDistance
	}

	minutes, err := units.ParseDuration(in.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}
	if minutes <= 0 {
		return nil, ErrInvalidDuration
	}

	calories, err := units.Float(in.Calories)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCalories, err)
	}
	if int(calories) < 0 {
		return nil, ErrInvalidCalories
	}

	metric, err := parseMetric(typ, in.AvgMetric)
	if err != nil {
		return nil, err
	}

	createdAt := strings.TrimSpace(in.CreatedAt)
	if createdAt == "" {
		createdAt = time.Now().Format(CreatedAtLayout)
	}

	return &Record{
		Date:           date,
		Type:           typ,
		DistanceKm:     distance,
		AvgMetricValue: metric,
		TotalMinutes:   minutes,
		Calories:       int(calories),
		CreatedAt:      createdAt,
	}, nil
}

// parseMetric reads the average-metric field according to the activity type:
// a plain decimal speed for cycling, a pace ("8:30" or "8.5") otherwise.
func parseMetric(typ Type, raw string) (float64, error) {
	var value float64
	var err error

	if typ == Cycling {
		value, err = units.Float(raw)
	} else {
		value, err = units.ParsePace(raw)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMetric, err)
	}
	if value <= 0 {
		return 0, ErrInvalidMetric
	}
	return value, nil
}
