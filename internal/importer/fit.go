// internal/importer/fit.go
package importer

import (
	"bytes"
	"fmt"

	"github.com/tormoder/fit"

	"github.com/sstent/sportlog-go/internal/activity"
)

func decodeFIT(data []byte) (*rawMetrics, error) {
	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}

	act, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}

	if len(act.Sessions) == 0 {
		return nil, fmt.Errorf("no sessions found in FIT file")
	}

	session := act.Sessions[0]
	return &rawMetrics{
		sport:        fitSportName(session.Sport),
		date:         session.StartTime.Format(activity.DateLayout),
		distanceKm:   session.GetTotalDistanceScaled() / 1000,
		totalMinutes: session.GetTotalTimerTimeScaled() / 60,
		calories:     int(session.TotalCalories),
	}, nil
}

func fitSportName(sport fit.Sport) string {
	switch sport {
	case fit.SportCycling:
		return "cycling"
	case fit.SportHiking:
		return "hiking"
	case fit.SportWalking:
		return "walking"
	}
	return ""
}
