package models

import "time"

// ActivityMetrics is the flat per-activity summary extracted from a parsed
// activity file. Heart-rate and power fields are zero when the file carried
// no samples for them.
type ActivityMetrics struct {
	Sport        string        `json:"sport"`
	StartTime    time.Time     `json:"start_time"`
	Duration     time.Duration `json:"duration"`
	Distance     float64       `json:"distance"` // meters
	AvgHeartRate float64       `json:"avg_heart_rate"`
	MaxHeartRate float64       `json:"max_heart_rate"`
	AvgPower     float64       `json:"avg_power"` // watts
	Calories     int           `json:"calories"`
	Laps         int           `json:"laps"`
	Trackpoints  int           `json:"trackpoints"`
}
