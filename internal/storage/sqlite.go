package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pocketfin/pocket/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// compactAfter is the journal tail length that triggers folding the
// journal into a fresh snapshot row.
const compactAfter = 256

// SQLiteJournal is an append-only change log backed by SQLite. Each
// mutation appends one journal row; loading replays the tail on top of
// the most recent compacted snapshot.
type SQLiteJournal struct {
	db *sql.DB

	baseID  int64 // snapshot row the journal tail builds on
	tailLen int
}

// OpenSQLite opens or creates the journal database at the given path.
func OpenSQLite(dbPath string) (*SQLiteJournal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

// Close closes the journal database.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

// Load reads the latest compacted snapshot and replays journal entries
// recorded after it.
func (j *SQLiteJournal) Load() (model.Snapshot, bool, error) {
	var (
		state string
		id    int64
	)
	err := j.db.QueryRow("SELECT id, state FROM snapshots ORDER BY id DESC LIMIT 1").Scan(&id, &state)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(state), &snap); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("decoding snapshot: %w", err)
	}

	rows, err := j.db.Query("SELECT payload FROM journal WHERE snapshot_id = ? ORDER BY seq", id)
	if err != nil {
		return model.Snapshot{}, false, err
	}
	defer func() { _ = rows.Close() }()

	tailLen := 0
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return model.Snapshot{}, false, err
		}
		var change model.Change
		if err := json.Unmarshal([]byte(payload), &change); err != nil {
			return model.Snapshot{}, false, fmt.Errorf("decoding journal entry: %w", err)
		}
		snap = snap.Apply(change)
		tailLen++
	}
	if err := rows.Err(); err != nil {
		return model.Snapshot{}, false, err
	}

	j.baseID = id
	j.tailLen = tailLen
	return snap, true, nil
}

// Record appends one change to the journal, compacting once the tail
// grows past compactAfter entries.
func (j *SQLiteJournal) Record(change model.Change, snap model.Snapshot) error {
	// First write, wholesale replace, and an oversized tail all fold the
	// full state into a fresh base row instead of journaling.
	if j.baseID == 0 || change.Op == model.OpLoadSnapshot || j.tailLen >= compactAfter {
		return j.compact(snap)
	}

	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encoding change: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := j.db.Exec(
		"INSERT INTO journal (snapshot_id, op, payload, applied_at) VALUES (?, ?, ?, ?)",
		j.baseID, string(change.Op), string(payload), now,
	); err != nil {
		return err
	}

	j.tailLen++
	return nil
}

// compact writes snap as a new base snapshot row and drops older rows and
// their journal tails.
func (j *SQLiteJournal) compact(snap model.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.Exec("INSERT INTO snapshots (state, taken_at) VALUES (?, ?)", string(state), now)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM snapshots WHERE id < ?", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	j.baseID = id
	j.tailLen = 0
	return nil
}

// JournalLen returns the current journal tail length, for tests and the
// config display.
func (j *SQLiteJournal) JournalLen() (int, error) {
	var n int
	err := j.db.QueryRow("SELECT COUNT(*) FROM journal WHERE snapshot_id = ?", j.baseID).Scan(&n)
	return n, err
}
