package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CurrentSchemaVersion is stamped on every Run by NewRun or SaveRun and checked by
// DecodeRun.
const CurrentSchemaVersion = 1

// ErrVersionMismatch is returned by DecodeRun for a record written under a
// different schema version.
var ErrVersionMismatch = errors.New("store: record version mismatch")

// EncodeRun serializes r as JSON.
func EncodeRun(r Run) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRun parses a JSON record produced by EncodeRun.
//
// Errors:
//   - the json error for a malformed payload;
//   - ErrVersionMismatch when SchemaVersion is not CurrentSchemaVersion.
func DecodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, err
	}
	if run.SchemaVersion != CurrentSchemaVersion {
		return Run{}, fmt.Errorf("%w: schema=%d want %d", ErrVersionMismatch, run.SchemaVersion, CurrentSchemaVersion)
	}

	return run, nil
}
