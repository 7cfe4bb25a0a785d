package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rideTCX = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2" xmlns:ns3="http://www.garmin.com/xmlschemas/ActivityExtension/v2">
  <Activities>
    <Activity Sport="Biking">
      <Id>2021-03-08T17:00:00Z</Id>
      <Lap>
        <TotalTimeSeconds>60.0</TotalTimeSeconds>
        <DistanceMeters>400.0</DistanceMeters>
        <Calories>12</Calories>
        <Track>
          <Trackpoint>
            <Time>2021-03-08T17:00:00Z</Time>
            <HeartRateBpm><Value>120</Value></HeartRateBpm>
            <Extensions><ns3:TPX><ns3:Watts>200</ns3:Watts></ns3:TPX></Extensions>
          </Trackpoint>
          <Trackpoint>
            <Time>2021-03-08T17:00:30Z</Time>
            <HeartRateBpm><Value>140</Value></HeartRateBpm>
            <Extensions><ns3:TPX><ns3:Watts>220</ns3:Watts></ns3:TPX></Extensions>
          </Trackpoint>
          <Trackpoint>
            <Time>2021-03-08T17:01:00Z</Time>
          </Trackpoint>
        </Track>
      </Lap>
      <Lap>
        <TotalTimeSeconds>30.0</TotalTimeSeconds>
        <DistanceMeters>180.0</DistanceMeters>
        <Calories>5</Calories>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTCXParserMetrics(t *testing.T) {
	path := writeTempFile(t, "ride.tcx", rideTCX)

	p, err := New(path)
	require.NoError(t, err)
	require.IsType(t, &TCXParser{}, p)

	metrics, err := p.ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Biking", metrics.Sport)
	assert.Equal(t, time.Date(2021, 3, 8, 17, 0, 0, 0, time.UTC), metrics.StartTime)
	assert.Equal(t, 90*time.Second, metrics.Duration)
	assert.Equal(t, 580.0, metrics.Distance)
	assert.Equal(t, 17, metrics.Calories)
	assert.Equal(t, 2, metrics.Laps)
	assert.Equal(t, 3, metrics.Trackpoints)
	assert.Equal(t, 130.0, metrics.AvgHeartRate)
	assert.Equal(t, 140.0, metrics.MaxHeartRate)
	assert.Equal(t, 210.0, metrics.AvgPower)
}

func TestTCXParserNoActivities(t *testing.T) {
	path := writeTempFile(t, "empty.tcx", `<TrainingCenterDatabase><Folders/></TrainingCenterDatabase>`)

	_, err := NewTCXParser().ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no activity data")
}

func TestNewByExtension(t *testing.T) {
	p, err := New("ride.TCX")
	require.NoError(t, err)
	assert.IsType(t, &TCXParser{}, p)

	p, err = New("ride.fit")
	require.NoError(t, err)
	assert.IsType(t, &FITParser{}, p)
}

func TestNewByContent(t *testing.T) {
	path := writeTempFile(t, "ride.xml", rideTCX)
	p, err := New(path)
	require.NoError(t, err)
	assert.IsType(t, &TCXParser{}, p)
}

func TestNewForTypeUnsupported(t *testing.T) {
	_, err := NewForType(FileTypeGPX)
	require.Error(t, err)

	_, err = NewForType(FileTypeUnknown)
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	fitHeader := append(make([]byte, 8), []byte(".FIT")...)

	tests := []struct {
		name string
		data []byte
		want FileType
	}{
		{"fit header", fitHeader, FileTypeFIT},
		{"tcx document", []byte(rideTCX), FileTypeTCX},
		{"gpx document", []byte(`<?xml version="1.0"?><gpx version="1.1"></gpx>`), FileTypeGPX},
		{"gpx by namespace", []byte(`<?xml version="1.0"?><x xmlns="http://www.topografix.com/GPX/1/1"/>`), FileTypeGPX},
		{"junk", []byte("not an activity file"), FileTypeUnknown},
		{"empty", nil, FileTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.data))
		})
	}
}
