package tcx

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExportJSON writes db as pretty-printed JSON to path. Field names follow
// the package's snake_case naming contract (see the package documentation).
// On error the output file may be partially written and should be treated as
// invalid.
func ExportJSON(db *TrainingCenterDatabase, path string) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tcx model: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json export: %w", err)
	}
	return nil
}
