// Package store persists simulation runs to SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

-- One row per simulation run
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    seed INTEGER NOT NULL,
    config TEXT NOT NULL,  -- JSON
    started_at TEXT NOT NULL,
    ended_at TEXT,
    last_tick INTEGER DEFAULT 0
);

-- Agent state after each recorded tick
CREATE TABLE IF NOT EXISTS agent_states (
    run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    tick INTEGER NOT NULL,
    agent_id INTEGER NOT NULL,
    x REAL NOT NULL,
    y REAL NOT NULL,
    orientation REAL NOT NULL,
    velocity REAL NOT NULL,
    vx REAL NOT NULL,
    vy REAL NOT NULL,
    PRIMARY KEY (run_id, tick, agent_id)
);
CREATE INDEX IF NOT EXISTS idx_states_agent ON agent_states(run_id, agent_id, tick);
`

// InitSchema creates the tables when they do not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}
