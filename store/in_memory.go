package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/moments/core"
)

// InMemoryStore is a volatile core.SnapshotStore keeping snapshots in a
// process-local map. It is safe for concurrent access and best suited for
// tests or ephemeral demos. Snapshots are cloned on the way in and out so
// callers can never mutate stored state through a shared reference.
type InMemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]*core.Snapshot
}

// NewInMemoryStore constructs an empty in-memory snapshot store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{snapshots: make(map[string]*core.Snapshot)}
}

// Put stores a clone of the snapshot under its id.
func (s *InMemoryStore) Put(_ context.Context, snapshot *core.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshot.ID] = snapshot.Clone()
	return nil
}

// Get returns a clone of the snapshot stored under id, or ErrNotFound.
func (s *InMemoryStore) Get(_ context.Context, id string) (*core.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot.Clone(), nil
}

// History walks the predecessor chain starting at id, newest first. The walk
// stops at the first snapshot with no predecessor; a dangling predecessor id
// (a version that was never persisted) is ErrNotFound and a repeated id
// (possible only with corrupted predecessor links) is an error.
func (s *InMemoryStore) History(ctx context.Context, id string) ([]*core.Snapshot, error) {
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
