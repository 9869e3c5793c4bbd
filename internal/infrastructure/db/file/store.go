// Package file keeps one JSON document per collection under a data
// directory. It serves both as the default seed source and as a snapshot
// sink for the write-behind dispatcher.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/99minutos/commerce-api/internal/core/ports"
)

var (
	_ ports.SeedSource     = (*Store)(nil)
	_ ports.SnapshotWriter = (*Store)(nil)
)

type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(kind string) string {
	return filepath.Join(s.dir, kind+".json")
}

// Load decodes <dir>/<kind>.json into dst. A missing file is not an error.
func (s *Store) Load(ctx context.Context, kind string, dst any) error {
	raw, err := os.ReadFile(s.path(kind))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", kind, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	return nil
}

// Write replaces <dir>/<kind>.json with the snapshot. The document is written
// to a temporary file first and renamed into place, so a crash mid-write
// never leaves a truncated collection behind.
func (s *Store) Write(ctx context.Context, snap ports.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	records := snap.Records
	if records == nil {
		records = []any{}
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", snap.Kind, err)
	}

	tmp, err := os.CreateTemp(s.dir, snap.Kind+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", snap.Kind, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", snap.Kind, err)
	}
	if err := os.Rename(tmp.Name(), s.path(snap.Kind)); err != nil {
		return fmt.Errorf("replace %s: %w", snap.Kind, err)
	}
	return nil
}
