// Package store persists k-MST run results. Two backends share one
// interface: an in-process MemoryStore and a SQLiteStore on
// modernc.org/sqlite.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/kmst/graph"
	"github.com/katalvlaran/kmst/woa"
)

// ErrNotInitialized is returned by every operation before Init.
var ErrNotInitialized = errors.New("store: not initialized")

// Store defines persistence operations for run records.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) (string, error)
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)
	Close() error
}

// Run is one seed's search outcome.
type Run struct {
	SchemaVersion int          `json:"schema_version"`
	ID            string       `json:"id"`
	Source        string       `json:"source"`
	Seed          int64        `json:"seed"`
	K             int          `json:"k"`
	Cost          float64      `json:"cost"`
	Connected     bool         `json:"connected"`
	Nodes         []string     `json:"nodes"`
	Edges         []graph.Edge `json:"edges"`
	Curve         []float64    `json:"curve"`
	Stalls        int          `json:"stalls"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NewRun converts an optimizer result into a record for source (usually the
// input path). The ID is left empty; SaveRun assigns one.
func NewRun(source string, res woa.Result, now time.Time) Run {
	return Run{
		SchemaVersion: CurrentSchemaVersion,
		Source:        source,
		Seed:          res.Seed,
		K:             res.K,
		Cost:          res.Cost,
		Connected:     res.Connected,
		Nodes:         res.Nodes,
		Edges:         res.Edges,
		Curve:         res.Curve,
		Stalls:        res.Stalls,
		CreatedAt:     now.UTC(),
	}
}

// Best returns the connected run with the lowest cost, falling back to the
// lowest-cost run when none is connected. Earlier runs win ties.
func Best(runs []Run) (Run, bool) {
	if len(runs) == 0 {
		return Run{}, false
	}
	best := runs[0]
	for _, r := range runs[1:] {
		switch {
		case r.Connected && !best.Connected:
			best = r
		case r.Connected == best.Connected && r.Cost < best.Cost:
			best = r
		}
	}

	return best, true
}

// assignID fills an empty ID with a random UUID.
func assignID(run *Run) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.SchemaVersion == 0 {
		run.SchemaVersion = CurrentSchemaVersion
	}
}
