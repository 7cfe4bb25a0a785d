package parser

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/tormoder/fit"

	"github.com/openfitness/tcxsync/internal/models"
)

// FITParser summarizes the first session of a FIT file.
type FITParser struct{}

func NewFITParser() *FITParser {
	return &FITParser{}
}

func (p *FITParser) ParseFile(path string) (*models.ActivityMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseData(data)
}

func (p *FITParser) ParseData(data []byte) (*models.ActivityMetrics, error) {
	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("get activity from FIT: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("no sessions found in FIT file")
	}

	session := activity.Sessions[0]
	return &models.ActivityMetrics{
		Sport:        session.Sport.String(),
		StartTime:    session.StartTime,
		Duration:     time.Duration(session.TotalTimerTime) * time.Millisecond,
		Distance:     float64(session.TotalDistance) / 100,
		AvgHeartRate: float64(session.AvgHeartRate),
		MaxHeartRate: float64(session.MaxHeartRate),
		AvgPower:     float64(session.AvgPower),
		Calories:     int(session.TotalCalories),
		Trackpoints:  len(activity.Records),
	}, nil
}
