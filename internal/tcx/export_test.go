package tcx

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSONRoundTrip(t *testing.T) {
	db, err := ReadFile("testdata/activity.tcx")
	require.NoError(t, err)
	ComputeHeartRates(db)

	path := filepath.Join(t.TempDir(), "activity.json")
	require.NoError(t, ExportJSON(db, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var reloaded TrainingCenterDatabase
	require.NoError(t, json.Unmarshal(data, &reloaded))
	assert.Equal(t, db, &reloaded, "JSON round trip must preserve every field, derived ones included")
}

func TestExportJSONCourseRoundTrip(t *testing.T) {
	db, err := ReadFile("testdata/course.tcx")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "course.json")
	require.NoError(t, ExportJSON(db, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var reloaded TrainingCenterDatabase
	require.NoError(t, json.Unmarshal(data, &reloaded))
	assert.Equal(t, db, &reloaded)
}

func TestExportJSONFieldNames(t *testing.T) {
	db, err := ReadFile("testdata/activity.tcx")
	require.NoError(t, err)
	ComputeHeartRates(db)

	path := filepath.Join(t.TempDir(), "activity.json")
	require.NoError(t, ExportJSON(db, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// snake_case naming contract for consumers of the export.
	for _, name := range []string{
		`"total_time_seconds"`,
		`"distance_meters"`,
		`"average_heart_rate"`,
		`"maximum_heart_rate"`,
		`"latitude_degrees"`,
		`"trackpoints"`,
		`"tpx"`,
		`"watts"`,
	} {
		assert.Contains(t, string(data), name)
	}
	assert.NotContains(t, string(data), `"TotalTimeSeconds"`)
}

func TestExportJSONUnwritablePath(t *testing.T) {
	db := &TrainingCenterDatabase{}
	err := ExportJSON(db, filepath.Join(t.TempDir(), "missing", "out.json"))
	require.Error(t, err)
}
