// Package sqlite provides a SQLite-backed core.SnapshotStore. Snapshots are
// persisted in their canonical text form keyed by id, which keeps the rows
// directly inspectable and the schema stable across occurrence-set changes.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/hupe1980/moments/core"
	"github.com/hupe1980/moments/store"
)

// Store provides SQLite-backed persistence for snapshot chains.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates the
// schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// New returns a Store bound to an existing database handle. The schema must
// already be migrated.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Put stores the snapshot under its id, overwriting any previous value.
func (s *Store) Put(ctx context.Context, snapshot *core.Snapshot) error {
	if snapshot.ID == "" {
		return fmt.Errorf("put snapshot: empty id")
	}
	const query = `INSERT INTO snapshots (id, previous_id, timestamp, body)
	              VALUES (?, ?, ?, ?)
	              ON CONFLICT(id) DO UPDATE SET previous_id = excluded.previous_id,
	                                            timestamp   = excluded.timestamp,
	                                            body        = excluded.body`
	_, err := s.db.ExecContext(ctx, query, snapshot.ID, snapshot.PreviousID, snapshot.Timestamp, snapshot.Text())
	if err != nil {
		return fmt.Errorf("put snapshot: insert: %w", err)
	}
	return nil
}

// Get returns the snapshot stored under id, or store.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*core.Snapshot, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: select: %w", err)
	}
	snapshot, err := core.ParseSnapshotText(body)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: decode %s: %w", id, err)
	}
	return snapshot, nil
}

// History walks the predecessor chain starting at id, newest first. A
// repeated id means corrupted predecessor links and is an error.
func (s *Store) History(ctx context.Context, id string) ([]*core.Snapshot, error) {
	var history []*core.Snapshot
	seen := map[string]bool{}
	for id != "" {
		if seen[id] {
			return nil, fmt.Errorf("snapshot chain cycle at %q", id)
		}
		seen[id] = true
		snapshot, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		history = append(history, snapshot)
		id = snapshot.PreviousID
	}
	return history, nil
}
