package storage

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    state                TEXT NOT NULL,
    taken_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS journal (
    seq                  INTEGER PRIMARY KEY AUTOINCREMENT,
    snapshot_id          INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
    op                   TEXT NOT NULL,
    payload              TEXT NOT NULL,
    applied_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_snapshot ON journal(snapshot_id);
`
