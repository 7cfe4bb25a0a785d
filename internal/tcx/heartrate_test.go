package tcx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hrPoint(offset int, bpm float64) Trackpoint {
	return Trackpoint{
		Time:      time.Date(2021, 1, 19, 7, 30, offset, 0, time.UTC),
		HeartRate: &HeartRate{Value: bpm},
	}
}

func barePoint(offset int) Trackpoint {
	return Trackpoint{Time: time.Date(2021, 1, 19, 7, 30, offset, 0, time.UTC)}
}

func singleLapDB(laps ...ActivityLap) *TrainingCenterDatabase {
	return &TrainingCenterDatabase{
		Activities: &ActivityList{
			Activities: []Activity{{Sport: "Running", ID: "a", Laps: laps}},
		},
	}
}

func TestComputeHeartRates(t *testing.T) {
	db := singleLapDB(ActivityLap{
		Tracks: []Track{
			{Trackpoints: []Trackpoint{hrPoint(0, 120), barePoint(1), hrPoint(2, 150)}},
			{Trackpoints: []Trackpoint{hrPoint(3, 135)}},
		},
	})

	ComputeHeartRates(db)

	lap := &db.Activities.Activities[0].Laps[0]
	require.NotNil(t, lap.AverageHeartRate)
	require.NotNil(t, lap.MaximumHeartRate)
	// Average over the three samples that carry a value, not over all four
	// trackpoints.
	assert.Equal(t, 135.0, *lap.AverageHeartRate)
	assert.Equal(t, 150.0, *lap.MaximumHeartRate)
}

func TestComputeHeartRatesNoSamples(t *testing.T) {
	db := singleLapDB(ActivityLap{
		Tracks: []Track{{Trackpoints: []Trackpoint{barePoint(0), barePoint(1)}}},
	})

	ComputeHeartRates(db)

	lap := &db.Activities.Activities[0].Laps[0]
	assert.Nil(t, lap.AverageHeartRate, "no samples must leave the average absent, not zero")
	assert.Nil(t, lap.MaximumHeartRate)
}

func TestComputeHeartRatesPerLap(t *testing.T) {
	db := singleLapDB(
		ActivityLap{Tracks: []Track{{Trackpoints: []Trackpoint{hrPoint(0, 100), hrPoint(1, 110)}}}},
		ActivityLap{Tracks: []Track{{Trackpoints: []Trackpoint{barePoint(2)}}}},
		ActivityLap{Tracks: []Track{{Trackpoints: []Trackpoint{hrPoint(3, 160)}}}},
	)

	ComputeHeartRates(db)

	laps := db.Activities.Activities[0].Laps
	require.NotNil(t, laps[0].AverageHeartRate)
	assert.Equal(t, 105.0, *laps[0].AverageHeartRate)
	assert.Equal(t, 110.0, *laps[0].MaximumHeartRate)

	assert.Nil(t, laps[1].AverageHeartRate)
	assert.Nil(t, laps[1].MaximumHeartRate)

	require.NotNil(t, laps[2].AverageHeartRate)
	assert.Equal(t, 160.0, *laps[2].AverageHeartRate)
	assert.Equal(t, 160.0, *laps[2].MaximumHeartRate)
}

func TestComputeHeartRatesRecomputes(t *testing.T) {
	db := singleLapDB(ActivityLap{
		Tracks: []Track{{Trackpoints: []Trackpoint{hrPoint(0, 120)}}},
	})

	ComputeHeartRates(db)
	lap := &db.Activities.Activities[0].Laps[0]
	require.NotNil(t, lap.MaximumHeartRate)
	assert.Equal(t, 120.0, *lap.MaximumHeartRate)

	// Changing the samples and recomputing overwrites the derived values.
	lap.Tracks[0].Trackpoints = append(lap.Tracks[0].Trackpoints, hrPoint(1, 180))
	ComputeHeartRates(db)
	assert.Equal(t, 150.0, *lap.AverageHeartRate)
	assert.Equal(t, 180.0, *lap.MaximumHeartRate)

	// Removing every sample and recomputing clears them again.
	lap.Tracks[0].Trackpoints = []Trackpoint{barePoint(0)}
	ComputeHeartRates(db)
	assert.Nil(t, lap.AverageHeartRate)
	assert.Nil(t, lap.MaximumHeartRate)
}

func TestComputeHeartRatesIgnoresCourses(t *testing.T) {
	db, err := ReadFile("testdata/course.tcx")
	require.NoError(t, err)

	before := *db.Courses.Courses[0].Lap.AverageHeartRate
	ComputeHeartRates(db)
	assert.Equal(t, before, *db.Courses.Courses[0].Lap.AverageHeartRate)
}

func TestComputeHeartRatesNilSafe(t *testing.T) {
	ComputeHeartRates(nil)
	ComputeHeartRates(&TrainingCenterDatabase{})
}
