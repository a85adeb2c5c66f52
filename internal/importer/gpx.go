// internal/importer/gpx.go
package importer

import (
	"encoding/xml"
	"fmt"
	"math"
	"time"

	"github.com/sstent/sportlog-go/internal/activity"
)

type gpxFile struct {
	Tracks []gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Time string  `xml:"time"`
}

// decodeGPX sums point-to-point haversine distance over all track segments
// and takes the duration from the first and last timestamped points. GPX
// carries no sport and no calories.
func decodeGPX(data []byte) (*rawMetrics, error) {
	var gpx gpxFile
	if err := xml.Unmarshal(data, &gpx); err != nil {
		return nil, fmt.Errorf("failed to decode GPX file: %w", err)
	}

	var points []gpxPoint
	for _, track := range gpx.Tracks {
		for _, segment := range track.Segments {
			points = append(points, segment.Points...)
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no track points found in GPX file")
	}

	metrics := &rawMetrics{}

	var startTime, endTime time.Time
	var totalMeters float64

	for i, point := range points {
		if point.Time != "" {
			if t, err := time.Parse(time.RFC3339, point.Time); err == nil {
				if startTime.IsZero() {
					startTime = t
					metrics.date = t.Format(activity.DateLayout)
				}
				endTime = t
			}
		}

		if i > 0 {
			prev := points[i-1]
			totalMeters += haversine(prev.Lat, prev.Lon, point.Lat, point.Lon)
		}
	}

	if !startTime.IsZero() && !endTime.IsZero() {
		metrics.totalMinutes = endTime.Sub(startTime).Minutes()
	}
	metrics.distanceKm = totalMeters / 1000

	return metrics, nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // meters

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
