package ports

import (
	"context"
	"time"
)

// Snapshot is the full content of one collection right after a write.
type Snapshot struct {
	Kind    string
	Records []any
	TakenAt time.Time
}

// SnapshotWriter persists collection snapshots (flat file, Mongo).
type SnapshotWriter interface {
	Write(ctx context.Context, snap Snapshot) error
}

// SeedSource fills dst (a pointer to a slice) with the stored records of kind.
// A kind with nothing stored leaves dst untouched and returns nil.
type SeedSource interface {
	Load(ctx context.Context, kind string, dst any) error
}
