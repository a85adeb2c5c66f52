// Package export serializes query result rows as comma-separated text.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sstent/sportlog-go/internal/activity"
)

// Header is the fixed CSV header row, matching the store's column order.
var Header = []string{
	"id",
	"activity_date",
	"activity_type",
	"distance_km",
	"avg_metric_value",
	"avg_metric_unit",
	"total_minutes",
	"calories",
}

// Write serializes the records to w, header first, preserving the order the
// query returned them in.
func Write(w io.Writer, records []activity.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return err
	}

	for i := range records {
		r := &records[i]
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Date,
			r.Type.String(),
			strconv.FormatFloat(r.DistanceKm, 'f', -1, 64),
			strconv.FormatFloat(r.AvgMetricValue, 'f', -1, 64),
			r.AvgMetricUnit(),
			strconv.FormatFloat(r.TotalMinutes, 'f', -1, 64),
			strconv.Itoa(r.Calories),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
