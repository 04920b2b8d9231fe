package store

import (
	"context"
	"sync"
)

// MemoryStore keeps runs in process memory in insertion order. It is safe
// for concurrent use. Records are lost on exit.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	order       []string
	runs        map[string]Run
}

// NewMemoryStore returns an uninitialized store; call Init before use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store to empty.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.order = nil
	s.runs = make(map[string]Run)

	return nil
}

// SaveRun inserts run, or replaces the record with the same ID. An empty ID
// is filled with a fresh UUID; the ID is returned.
//
// Errors: ErrNotInitialized.
func (s *MemoryStore) SaveRun(_ context.Context, run Run) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return "", ErrNotInitialized
	}
	assignID(&run)
	if _, ok := s.runs[run.ID]; !ok {
		s.order = append(s.order, run.ID)
	}
	s.runs[run.ID] = run

	return run.ID, nil
}

// GetRun returns the run with id and whether it exists.
func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return Run{}, false, ErrNotInitialized
	}
	run, ok := s.runs[id]

	return run, ok, nil
}

// ListRuns returns every run in first-insertion order.
func (s *MemoryStore) ListRuns(_ context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]Run, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.runs[id])
	}

	return out, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
