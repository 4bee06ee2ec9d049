package core

import "context"

// SnapshotStore persists snapshots keyed by their own id. The backward chain
// of a conversation is reconstructible only when every version is put to a
// store before it is superseded; the core types never touch a store
// themselves.
type SnapshotStore interface {
	// Put stores the snapshot under its id, overwriting any previous value.
	Put(ctx context.Context, s *Snapshot) error
	// Get returns the snapshot stored under id.
	Get(ctx context.Context, id string) (*Snapshot, error)
	// History walks the predecessor chain starting at id, newest first,
	// stopping at the first snapshot without a stored predecessor.
	History(ctx context.Context, id string) ([]*Snapshot, error)
}
