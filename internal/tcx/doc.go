// Package tcx parses Training Center XML (TCX) activity files into a typed
// in-memory model, derives per-lap heart-rate statistics from trackpoint
// samples, and exports the model as JSON.
//
// The package is read-only with respect to TCX: it never writes TCX back out,
// and it does not validate documents against the TCX schema. Unknown tags and
// attributes are ignored so files from newer devices still parse; recognized
// tags with malformed content fail the whole parse with a *MappingError.
//
// JSON field names are the snake_case form of the XML tag names
// (TotalTimeSeconds becomes total_time_seconds). This naming is part of the
// package's contract and stable across releases.
package tcx
