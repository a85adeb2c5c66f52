package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1:30", 90},
		{"1:30:30", 90.5},
		{"95.5", 95.5},
		{"0:45", 45},
		{"2:00:00", 120},
		{" 1:30 ", 90},
		{"100:00", 6000}, // hours are unbounded
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.input)
	}
}

func TestParseDurationErrors(t *testing.T) {
	_, err := ParseDuration("1:2:3:4")
	assert.ErrorIs(t, err, ErrDurationFormat)

	// components of the colon forms must be integers
	_, err = ParseDuration("1.5:30")
	assert.ErrorIs(t, err, ErrNumber)

	_, err = ParseDuration("1:30:xx")
	assert.ErrorIs(t, err, ErrNumber)

	_, err = ParseDuration("abc")
	assert.ErrorIs(t, err, ErrNumber)
}

func TestParsePace(t *testing.T) {
	got, err := ParsePace("8:30")
	require.NoError(t, err)
	assert.InDelta(t, 8.5, got, 1e-9)

	got, err = ParsePace("7.75")
	require.NoError(t, err)
	assert.InDelta(t, 7.75, got, 1e-9)
}

func TestParsePaceErrors(t *testing.T) {
	_, err := ParsePace("1:2:3")
	assert.ErrorIs(t, err, ErrPaceFormat)

	_, err = ParsePace("8:xx")
	assert.ErrorIs(t, err, ErrNumber)
}

func TestFormatHHMM(t *testing.T) {
	assert.Equal(t, "01:30", FormatHHMM(90))
	assert.Equal(t, "02:05", FormatHHMM(125.4))
	assert.Equal(t, "00:00", FormatHHMM(0))
	assert.Equal(t, "10:00", FormatHHMM(600))
}

func TestFormatHHMMCarriesRollover(t *testing.T) {
	// 119.6 rounds the minutes component to 60; the overflow moves into the
	// hour instead of rendering "01:60".
	assert.Equal(t, "02:00", FormatHHMM(119.6))
	assert.Equal(t, "01:00", FormatHHMM(59.6))
}
