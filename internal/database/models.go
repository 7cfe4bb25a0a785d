package database

import "time"

// Activity is one imported activity summary as stored in the index.
type Activity struct {
	ID           string    `json:"id"`
	Sport        string    `json:"sport"`
	StartTime    time.Time `json:"start_time"`
	Duration     int       `json:"duration"` // seconds
	Distance     float64   `json:"distance"` // meters
	AvgHeartRate float64   `json:"avg_heart_rate"`
	MaxHeartRate float64   `json:"max_heart_rate"`
	AvgPower     float64   `json:"avg_power"`
	Calories     int       `json:"calories"`
	Trackpoints  int       `json:"trackpoints"`
	Filename     string    `json:"filename"`
	FileType     string    `json:"file_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats summarizes the index.
type Stats struct {
	Total         int `json:"total"`
	WithHeartRate int `json:"with_heart_rate"`
}
