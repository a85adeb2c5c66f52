// internal/importer/tcx.go
package importer

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/sstent/sportlog-go/internal/activity"
)

type tcxDatabase struct {
	Activities tcxActivities `xml:"Activities"`
}

type tcxActivities struct {
	Activity []tcxActivity `xml:"Activity"`
}

type tcxActivity struct {
	Sport string   `xml:"Sport,attr"`
	Laps  []tcxLap `xml:"Lap"`
}

type tcxLap struct {
	StartTime        string  `xml:"StartTime,attr"`
	TotalTimeSeconds float64 `xml:"TotalTimeSeconds"`
	DistanceMeters   float64 `xml:"DistanceMeters"`
	Calories         int     `xml:"Calories"`
}

func decodeTCX(data []byte) (*rawMetrics, error) {
	var tcx tcxDatabase
	if err := xml.Unmarshal(data, &tcx); err != nil {
		return nil, fmt.Errorf("failed to decode TCX file: %w", err)
	}

	if len(tcx.Activities.Activity) == 0 || len(tcx.Activities.Activity[0].Laps) == 0 {
		return nil, fmt.Errorf("no activity data found in TCX file")
	}

	act := tcx.Activities.Activity[0]

	metrics := &rawMetrics{
		sport: tcxSportName(act.Sport),
	}

	if startTime, err := time.Parse(time.RFC3339, act.Laps[0].StartTime); err == nil {
		metrics.date = startTime.Format(activity.DateLayout)
	}

	var totalSeconds, totalMeters float64
	for _, lap := range act.Laps {
		totalSeconds += lap.TotalTimeSeconds
		totalMeters += lap.DistanceMeters
		metrics.calories += lap.Calories
	}

	metrics.totalMinutes = totalSeconds / 60
	metrics.distanceKm = totalMeters / 1000

	return metrics, nil
}

func tcxSportName(sport string) string {
	switch sport {
	case "Biking":
		return "cycling"
	case "Hiking":
		return "hiking"
	case "Walking":
		return "walking"
	}
	return ""
}
