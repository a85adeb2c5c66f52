// Package importer decodes activity files (FIT, TCX, GPX) into the raw
// fields of one activity and routes them through the same validated
// construction path as manual form input.
package importer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sstent/sportlog-go/internal/activity"
)

var (
	// ErrUnsupportedFile is returned when the file format cannot be detected.
	ErrUnsupportedFile = errors.New("unsupported activity file format")

	// ErrUnsupportedSport is returned when the file's sport has no mapping to
	// a supported activity type and no hint was supplied.
	ErrUnsupportedSport = errors.New("sport is not a supported activity type")
)

// rawMetrics is what a format decoder extracts from one file. Values are
// still unvalidated; the record build enforces the invariants.
type rawMetrics struct {
	sport        string // empty when the format does not carry one (GPX)
	date         string // YYYY-MM-DD
	distanceKm   float64
	totalMinutes float64
	calories     int
}

// Import decodes one uploaded file and builds a validated record from it.
// typeHint names the activity type for formats that do not carry a sport
// (GPX); for FIT and TCX the file's own sport wins when it maps to a
// supported type.
func Import(data []byte, typeHint string) (*activity.Record, error) {
	var metrics *rawMetrics
	var err error

	switch DetectFileType(data) {
	case FileTypeFIT:
		metrics, err = decodeFIT(data)
	case FileTypeTCX:
		metrics, err = decodeTCX(data)
	case FileTypeGPX:
		metrics, err = decodeGPX(data)
	default:
		return nil, ErrUnsupportedFile
	}
	if err != nil {
		return nil, err
	}

	typ, err := resolveType(metrics.sport, typeHint)
	if err != nil {
		return nil, err
	}

	return buildRecord(typ, metrics)
}

// resolveType picks the activity type from the file's sport, falling back to
// the caller's hint.
func resolveType(sport, hint string) (activity.Type, error) {
	if sport != "" {
		if typ, err := activity.ParseType(sport); err == nil {
			return typ, nil
		}
		if hint == "" {
			return "", fmt.Errorf("%q: %w", sport, ErrUnsupportedSport)
		}
	}
	if hint == "" {
		return "", ErrUnsupportedSport
	}
	return activity.ParseType(hint)
}

// buildRecord derives the average metric from the decoded totals and hands
// everything to the validated construction path, so imported files obey
// exactly the same invariants as form input.
func buildRecord(typ activity.Type, m *rawMetrics) (*activity.Record, error) {
	var metric float64
	if m.distanceKm > 0 && m.totalMinutes > 0 {
		if typ == activity.Cycling {
			metric = m.distanceKm / (m.totalMinutes / 60) // km/h
		} else {
			metric = m.totalMinutes / m.distanceKm // min/km
		}
	}

	in := activity.Input{
		Date:      m.date,
		Type:      typ.String(),
		Distance:  strconv.FormatFloat(m.distanceKm, 'f', -1, 64),
		AvgMetric: strconv.FormatFloat(metric, 'f', -1, 64),
		Duration:  strconv.FormatFloat(m.totalMinutes, 'f', -1, 64),
		Calories:  strconv.Itoa(m.calories),
	}
	return activity.NewRecord(in)
}
