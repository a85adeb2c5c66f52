// internal/database/query.go
package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/sstent/sportlog-go/internal/activity"
	"github.com/sstent/sportlog-go/internal/units"
)

// BuildActivitiesQuery renders the optional filters into a parameterized
// SELECT plus its positional arguments, in the fixed predicate order:
// activity type, from date, to date, min distance, max distance. The function
// is pure; identical filters always produce identical output.
//
// A type filter of "" or "all" is skipped. Any other value is normalized
// (trim, lower-case) and matched literally, so a value outside the supported
// set simply matches no rows. Dates must be valid YYYY-MM-DD, distances must
// parse as real numbers.
func BuildActivitiesQuery(f Filters) (string, []any, error) {
	query := `
	SELECT id, activity_date, activity_type, distance_km, avg_metric_value,
	       avg_metric_unit, total_minutes, calories
	FROM activities WHERE 1=1`

	var conditions []string
	var args []any

	typ := strings.ToLower(strings.TrimSpace(f.Type))
	if typ != "" && typ != "all" {
		conditions = append(conditions, "activity_type = ?")
		args = append(args, typ)
	}

	from := strings.TrimSpace(f.FromDate)
	if from != "" {
		if _, err := time.Parse(activity.DateLayout, from); err != nil {
			return "", nil, fmt.Errorf("from date %q: %w", from, activity.ErrDateFormat)
		}
		conditions = append(conditions, "activity_date >= ?")
		args = append(args, from)
	}

	to := strings.TrimSpace(f.ToDate)
	if to != "" {
		if _, err := time.Parse(activity.DateLayout, to); err != nil {
			return "", nil, fmt.Errorf("to date %q: %w", to, activity.ErrDateFormat)
		}
		conditions = append(conditions, "activity_date <= ?")
		args = append(args, to)
	}

	minDist := strings.TrimSpace(f.MinDistance)
	if minDist != "" {
		value, err := units.Float(minDist)
		if err != nil {
			return "", nil, fmt.Errorf("min distance: %w", err)
		}
		conditions = append(conditions, "distance_km >= ?")
		args = append(args, value)
	}

	maxDist := strings.TrimSpace(f.MaxDistance)
	if maxDist != "" {
		value, err := units.Float(maxDist)
		if err != nil {
			return "", nil, fmt.Errorf("max distance: %w", err)
		}
		conditions = append(conditions, "distance_km <= ?")
		args = append(args, value)
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY activity_date DESC, id DESC"
	return query, args, nil
}
