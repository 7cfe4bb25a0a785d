package parser

import (
	"fmt"
	"time"

	"github.com/openfitness/tcxsync/internal/models"
	"github.com/openfitness/tcxsync/internal/tcx"
)

// TCXParser summarizes the first activity of a TCX file.
type TCXParser struct{}

func NewTCXParser() *TCXParser {
	return &TCXParser{}
}

func (p *TCXParser) ParseFile(path string) (*models.ActivityMetrics, error) {
	db, err := tcx.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tcx.ComputeHeartRates(db)

	if db.Activities == nil || len(db.Activities.Activities) == 0 {
		return nil, fmt.Errorf("no activity data found in %s", path)
	}
	return summarizeActivity(&db.Activities.Activities[0]), nil
}

func summarizeActivity(activity *tcx.Activity) *models.ActivityMetrics {
	metrics := &models.ActivityMetrics{
		Sport: activity.Sport,
		Laps:  len(activity.Laps),
	}

	var totalSeconds float64
	var hrSum, hrMax, powerSum float64
	var hrCount, powerCount int
	var startTime time.Time

	for _, lap := range activity.Laps {
		totalSeconds += lap.TotalTimeSeconds
		metrics.Distance += lap.DistanceMeters
		metrics.Calories += int(lap.Calories)

		for _, track := range lap.Tracks {
			for _, tp := range track.Trackpoints {
				metrics.Trackpoints++
				if startTime.IsZero() || tp.Time.Before(startTime) {
					startTime = tp.Time
				}
				if tp.HeartRate != nil {
					hrSum += tp.HeartRate.Value
					if tp.HeartRate.Value > hrMax {
						hrMax = tp.HeartRate.Value
					}
					hrCount++
				}
				if tp.Extensions != nil && tp.Extensions.TPX != nil && tp.Extensions.TPX.Watts != nil {
					powerSum += float64(*tp.Extensions.TPX.Watts)
					powerCount++
				}
			}
		}
	}

	metrics.Duration = time.Duration(totalSeconds * float64(time.Second))
	metrics.StartTime = startTime
	if hrCount > 0 {
		metrics.AvgHeartRate = hrSum / float64(hrCount)
		metrics.MaxHeartRate = hrMax
	}
	if powerCount > 0 {
		metrics.AvgPower = powerSum / float64(powerCount)
	}
	return metrics
}
