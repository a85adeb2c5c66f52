package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstent/sportlog-go/internal/units"
)

func validInput() Input {
	return Input{
		Date:      "2026-01-10",
		Type:      "cycling",
		Distance:  "42.0",
		AvgMetric: "28.0",
		Duration:  "1:30",
		Calories:  "950",
	}
}

func TestNewRecordCycling(t *testing.T) {
	rec, err := NewRecord(validInput())
	require.NoError(t, err)

	assert.Equal(t, "2026-01-10", rec.Date)
	assert.Equal(t, Cycling, rec.Type)
	assert.Equal(t, 42.0, rec.DistanceKm)
	assert.Equal(t, 28.0, rec.AvgMetricValue)
	assert.Equal(t, "km/h", rec.AvgMetricUnit())
	assert.Equal(t, 90.0, rec.TotalMinutes)
	assert.Equal(t, 950, rec.Calories)
	assert.NotEmpty(t, rec.CreatedAt)
}

func TestNewRecordWalkingPace(t *testing.T) {
	in := validInput()
	in.Type = "walking"
	in.AvgMetric = "10:30"

	rec, err := NewRecord(in)
	require.NoError(t, err)

	assert.Equal(t, Walking, rec.Type)
	assert.InDelta(t, 10.5, rec.AvgMetricValue, 1e-9)
	assert.Equal(t, "min/km", rec.AvgMetricUnit())
}

func TestNewRecordNormalizesType(t *testing.T) {
	in := validInput()
	in.Type = "  Cycling "

	rec, err := NewRecord(in)
	require.NoError(t, err)
	assert.Equal(t, Cycling, rec.Type)
}

func TestNewRecordTruncatesDecimalCalories(t *testing.T) {
	in := validInput()
	in.Calories = "950.9"

	rec, err := NewRecord(in)
	require.NoError(t, err)
	assert.Equal(t, 950, rec.Calories)
}

func TestNewRecordKeepsExplicitCreatedAt(t *testing.T) {
	in := validInput()
	in.CreatedAt = "2026-01-10T18:30:00"

	rec, err := NewRecord(in)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-10T18:30:00", rec.CreatedAt)
}

func TestNewRecordValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{"bad date", func(in *Input) { in.Date = "2026/01/10" }, ErrDateFormat},
		{"impossible date", func(in *Input) { in.Date = "2026-02-30" }, ErrDateFormat},
		{"unknown activity", func(in *Input) { in.Type = "running" }, ErrInvalidActivity},
		{"zero distance", func(in *Input) { in.Distance = "0" }, ErrInvalidDistance},
		{"non-numeric distance", func(in *Input) { in.Distance = "far" }, ErrInvalidDistance},
		{"zero duration", func(in *Input) { in.Duration = "0:00" }, ErrInvalidDuration},
		{"bad duration format", func(in *Input) { in.Duration = "1:2:3:4" }, ErrInvalidDuration},
		{"negative calories", func(in *Input) { in.Calories = "-5" }, ErrInvalidCalories},
		{"non-numeric calories", func(in *Input) { in.Calories = "lots" }, ErrInvalidCalories},
		{"zero metric", func(in *Input) { in.AvgMetric = "0" }, ErrInvalidMetric},
		{"non-numeric metric", func(in *Input) { in.AvgMetric = "fast" }, ErrInvalidMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			rec, err := NewRecord(in)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewRecordWrappedDurationFormat(t *testing.T) {
	in := validInput()
	in.Duration = "1:2:3:4"

	_, err := NewRecord(in)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.ErrorIs(t, err, units.ErrDurationFormat)
}

func TestNewRecordFirstFailureWins(t *testing.T) {
	in := validInput()
	in.Date = "not-a-date"
	in.Type = "running"
	in.Distance = "-1"

	_, err := NewRecord(in)
	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("HIKING")
	require.NoError(t, err)
	assert.Equal(t, Hiking, typ)

	_, err = ParseType("swimming")
	assert.ErrorIs(t, err, ErrInvalidActivity)
}

func TestMetricUnitDerivation(t *testing.T) {
	assert.Equal(t, "km/h", Cycling.MetricUnit())
	assert.Equal(t, "min/km", Hiking.MetricUnit())
	assert.Equal(t, "min/km", Walking.MetricUnit())
}
