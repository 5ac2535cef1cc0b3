// Package storage persists store snapshots, either as an append-only
// SQLite change journal or as a whole-snapshot JSON file.
package storage

import "github.com/pocketfin/pocket/internal/model"

// Backend is the persistence contract the store writes through. Record is
// called synchronously after every mutation with both the change and the
// full post-mutation snapshot; backends use whichever representation
// suits them.
type Backend interface {
	// Load returns the persisted snapshot. ok is false when no prior
	// state exists. Malformed state is an error; callers discard it and
	// fall back to the seed snapshot.
	Load() (snap model.Snapshot, ok bool, err error)
	Record(change model.Change, snap model.Snapshot) error
	Close() error
}
