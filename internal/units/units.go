// Package units converts human-entered duration and pace strings into
// canonical numeric minutes, and formats minutes back for display.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDurationFormat is returned for a duration string with the wrong
	// number of ":"-separated segments.
	ErrDurationFormat = errors.New("invalid duration format")

	// ErrPaceFormat is returned for a pace string with the wrong number of
	// ":"-separated segments.
	ErrPaceFormat = errors.New("invalid pace format")

	// ErrNumber is returned when a numeric field does not parse.
	ErrNumber = errors.New("not a number")
)

// ParseDuration converts a duration string to total minutes. Accepted forms:
// a plain decimal number of minutes ("95.5"), "H:M", or "H:M:S". Hours are
// unbounded.
func ParseDuration(text string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")

	switch len(parts) {
	case 1:
		return Float(parts[0])
	case 2:
		hours, err := component(parts[0])
		if err != nil {
			return 0, err
		}
		minutes, err := component(parts[1])
		if err != nil {
			return 0, err
		}
		return float64(hours*60 + minutes), nil
	case 3:
		hours, err := component(parts[0])
		if err != nil {
			return 0, err
		}
		minutes, err := component(parts[1])
		if err != nil {
			return 0, err
		}
		seconds, err := component(parts[2])
		if err != nil {
			return 0, err
		}
		return float64(hours*60+minutes) + float64(seconds)/60, nil
	}

	return 0, ErrDurationFormat
}

// ParsePace converts a pace string to minutes per kilometer. Accepted forms:
// a plain decimal ("7.75") or "M:S".
func ParsePace(text string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")

	switch len(parts) {
	case 1:
		return Float(parts[0])
	case 2:
		minutes, err := component(parts[0])
		if err != nil {
			return 0, err
		}
		seconds, err := component(parts[1])
		if err != nil {
			return 0, err
		}
		return float64(minutes) + float64(seconds)/60, nil
	}

	return 0, ErrPaceFormat
}

// FormatHHMM renders total minutes as a zero-padded "HH:MM" display string.
// The minutes component is rounded to the nearest integer; when rounding
// lands on 60 the overflow is carried into the hour.
func FormatHHMM(totalMinutes float64) string {
	hours := int(totalMinutes / 60)
	minutes := int(math.Round(math.Mod(totalMinutes, 60)))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Float parses a decimal field, wrapping failures in ErrNumber.
func Float(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strings.TrimSpace(text), ErrNumber)
	}
	return value, nil
}

// component parses one integer segment of a colon-separated value.
func component(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strings.TrimSpace(text), ErrNumber)
	}
	return value, nil
}
