package tcx

// ComputeHeartRates fills AverageHeartRate and MaximumHeartRate on every
// activity lap reachable from db, using the heart-rate samples of the lap's
// trackpoints across all of its tracks in document order. Samples without a
// heart-rate reading are skipped, not counted as zero; a lap with no samples
// at all keeps both fields nil so that "no data" stays distinguishable from
// a zero reading.
//
// Calling it again recomputes from the current trackpoints and overwrites
// any previously derived values. Course laps are not touched.
func ComputeHeartRates(db *TrainingCenterDatabase) {
	if db == nil || db.Activities == nil {
		return
	}
	for i := range db.Activities.Activities {
		activity := &db.Activities.Activities[i]
		for j := range activity.Laps {
			computeLapHeartRate(&activity.Laps[j])
		}
	}
}

func computeLapHeartRate(lap *ActivityLap) {
	var sum, max float64
	count := 0
	for _, track := range lap.Tracks {
		for _, tp := range track.Trackpoints {
			if tp.HeartRate == nil {
				continue
			}
			v := tp.HeartRate.Value
			sum += v
			if count == 0 || v > max {
				max = v
			}
			count++
		}
	}
	if count == 0 {
		lap.AverageHeartRate = nil
		lap.MaximumHeartRate = nil
		return
	}
	avg := sum / float64(count)
	lap.AverageHeartRate = &avg
	lap.MaximumHeartRate = &max
}
