package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pocketfin/pocket/internal/model"
)

// SnapshotFile persists the whole snapshot to one JSON file per mutation.
// The on-disk layout is the budgetData document: transactions, budgets,
// and categories with amounts as JSON numbers and no version field.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile returns a file backend writing to path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Load reads and decodes the snapshot file.
func (f *SnapshotFile) Load() (model.Snapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("decoding snapshot file: %w", err)
	}
	return snap, true, nil
}

// Record writes the full post-mutation snapshot. The change itself is
// not needed; this backend always rewrites whole state. Writes go through
// a temp file and rename so a failure leaves the previous state intact.
func (f *SnapshotFile) Record(_ model.Change, snap model.Snapshot) error {
	// A caller-supplied snapshot may carry nil slices (decoded JSON that
	// omitted a key); the document always stores arrays, never null.
	// Clone allocates every slice.
	snap = snap.Clone()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".budgetData-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between writes.
func (f *SnapshotFile) Close() error {
	return nil
}
