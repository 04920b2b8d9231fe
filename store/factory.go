package store

import "fmt"

// NewStore returns an uninitialized backend by kind: "" or "memory", or
// "sqlite" at sqlitePath.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("store: unsupported backend %q", kind)
	}
}
