package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstent/sportlog-go/internal/activity"
)

func TestWrite(t *testing.T) {
	records := []activity.Record{
		{ID: 2, Date: "2026-01-12", Type: activity.Walking, DistanceKm: 8.5, AvgMetricValue: 10.2, TotalMinutes: 87, Calories: 430},
		{ID: 1, Date: "2026-01-10", Type: activity.Cycling, DistanceKm: 42, AvgMetricValue: 28, TotalMinutes: 90, Calories: 950},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "id,activity_date,activity_type,distance_km,avg_metric_value,avg_metric_unit,total_minutes,calories", lines[0])
	// row order preserved from the query result
	assert.Equal(t, "2,2026-01-12,walking,8.5,10.2,min/km,87,430", lines[1])
	assert.Equal(t, "1,2026-01-10,cycling,42,28,km/h,90,950", lines[2])
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	// header only
	assert.Equal(t, strings.Join(Header, ",")+"\n", buf.String())
}
