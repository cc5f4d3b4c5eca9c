package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/agent"
)

// ErrNoRun is returned when states are written before BeginRun.
var ErrNoRun = errors.New("no run started")

// Recorder writes every agent position after each tick. It implements
// simulation.Observer and must be driven from the goroutine stepping the simulation.
type Recorder struct {
	db    *sql.DB
	path  string
	runID int64
	// Every keeps one tick out of Every, 1 records all of them.
	Every int64
}

// Open creates or opens the database at path.
func Open(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite works best with single writer

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Recorder{db: db, path: path, Every: 1}, nil
}

// Path returns the database file.
func (r *Recorder) Path() string { return r.path }

// RunID returns the current run, 0 before BeginRun.
func (r *Recorder) RunID() int64 { return r.runID }

// BeginRun inserts a run row holding seed and the JSON form of cfg.
func (r *Recorder) BeginRun(ctx context.Context, seed uint64, cfg any) (int64, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (seed, config, started_at) VALUES (?, ?, ?)`,
		int64(seed), string(raw), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	r.runID = id
	return id, nil
}

// AfterTick stores the state of every agent in a single transaction.
func (r *Recorder) AfterTick(tick int64, agents []*agent.Agent) error {
	if r.runID == 0 {
		return ErrNoRun
	}
	if r.Every > 1 && tick%r.Every != 0 {
		return nil
	}
	return r.insertStates(context.Background(), tick, agents)
}

func (r *Recorder) insertStates(ctx context.Context, tick int64, agents []*agent.Agent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO agent_states (run_id, tick, agent_id, x, y, orientation, velocity, vx, vy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range agents {
		if _, err := stmt.ExecContext(ctx, r.runID, tick, a.ID,
			a.Pos.X, a.Pos.Y, a.Orientation, a.Velocity, a.Vx, a.Vy); err != nil {
			return fmt.Errorf("failed to insert state of agent %d: %w", a.ID, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE runs SET last_tick = ? WHERE id = ?`, tick, r.runID); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	return tx.Commit()
}

// EndRun stamps the end time of the current run.
func (r *Recorder) EndRun(ctx context.Context) error {
	if r.runID == 0 {
		return ErrNoRun
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE runs SET ended_at = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), r.runID); err != nil {
		return fmt.Errorf("failed to end run: %w", err)
	}
	return nil
}

// CountStates returns the number of stored agent states of run.
func (r *Recorder) CountStates(ctx context.Context, run int64) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM agent_states WHERE run_id = ?`, run).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count states: %w", err)
	}
	return count, nil
}

// State is one stored row of agent_states.
type State struct {
	Tick        int64
	AgentID     int64
	X, Y        float64
	Orientation float64
	Velocity    float64
}

// Track returns the stored states of one agent ordered by tick.
func (r *Recorder) Track(ctx context.Context, run, agentID int64) ([]State, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tick, agent_id, x, y, orientation, velocity FROM agent_states
		WHERE run_id = ? AND agent_id = ? ORDER BY tick`, run, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query track: %w", err)
	}
	defer rows.Close()

	var states []State
	for rows.Next() {
		var s State
		if err := rows.Scan(&s.Tick, &s.AgentID, &s.X, &s.Y, &s.Orientation, &s.Velocity); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

// Close closes the database.
func (r *Recorder) Close() error {
	return r.db.Close()
}
