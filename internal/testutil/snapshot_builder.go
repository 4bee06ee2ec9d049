package testutil

import (
	"github.com/hupe1980/moments/core"
)

// SnapshotBuilder provides a fluent helper for constructing snapshots in tests.
type SnapshotBuilder struct {
	id          string
	previousID  string
	timestamp   string
	annotations map[string]any
	moment      *core.Moment
}

// NewSnapshotBuilder creates a builder with a generated id and current timestamp.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		id:          core.NewID(),
		timestamp:   core.NowTimestamp(),
		annotations: map[string]any{},
	}
}

// ID overrides the auto-generated snapshot ID (chainable).
func (b *SnapshotBuilder) ID(id string) *SnapshotBuilder { b.id = id; return b }

// Previous sets the predecessor snapshot id (chainable).
func (b *SnapshotBuilder) Previous(id string) *SnapshotBuilder { b.previousID = id; return b }

// Timestamp overrides the generated timestamp (chainable).
func (b *SnapshotBuilder) Timestamp(ts string) *SnapshotBuilder { b.timestamp = ts; return b }

// Annotation adds a single annotation entry (chainable).
func (b *SnapshotBuilder) Annotation(key string, value any) *SnapshotBuilder {
	b.annotations[key] = value
	return b
}

// Moment sets the snapshot's moment (chainable).
func (b *SnapshotBuilder) Moment(m *core.Moment) *SnapshotBuilder { b.moment = m; return b }

// Build assembles the snapshot. A missing moment defaults to an empty one.
func (b *SnapshotBuilder) Build() *core.Snapshot {
	m := b.moment
	if m == nil {
		m = core.NewMoment()
	}
	return &core.Snapshot{
		ID:          b.id,
		PreviousID:  b.previousID,
		Timestamp:   b.timestamp,
		Annotations: b.annotations,
		Moment:      m,
	}
}
