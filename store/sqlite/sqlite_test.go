package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hupe1980/moments/core"
	"github.com/hupe1980/moments/internal/testutil"
	"github.com/hupe1980/moments/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	snapshot := testutil.NewSnapshotBuilder().
		Annotation("critique", false).
		Moment(testutil.NewMomentBuilder().
			Begin().
			Occurrence(core.Self{Emotion: "cheerful", Says: "hello"}).
			Context(map[string]any{"channel": "web"}).
			Build()).
		Build()
	require.NoError(t, s.Put(ctx, snapshot))

	got, err := s.Get(ctx, snapshot.ID)
	require.NoError(t, err)
	// Serialized to canonical text and reparsed, so the round trip must be exact.
	assert.Equal(t, snapshot, got)
}

func TestStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	snapshot := core.NewSnapshot(&core.Moment{ID: "m", Occurrences: []core.Occurrence{core.Begin{}}})
	require.NoError(t, s.Put(ctx, snapshot))

	snapshot.Moment.Append(core.Self{Says: "more"})
	require.NoError(t, s.Put(ctx, snapshot))

	got, err := s.Get(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.Len(t, got.Moment.Occurrences, 2)
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_HistoryWalksChain(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	a := core.NewSnapshot(&core.Moment{ID: "m", Occurrences: []core.Occurrence{core.Begin{}}})
	require.NoError(t, s.Put(ctx, a))
	b := a.Advance()
	require.NoError(t, s.Put(ctx, b))

	history, err := s.History(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, b.ID, history[0].ID)
	assert.Equal(t, a.ID, history[1].ID)
}

func TestStore_HistoryDetectsCycle(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	// A self-referencing predecessor link can only enter through an edited
	// document; the walk must refuse it rather than loop.
	snapshot := core.NewSnapshot(&core.Moment{ID: "m", Occurrences: []core.Occurrence{core.Begin{}}})
	snapshot.PreviousID = snapshot.ID
	require.NoError(t, s.Put(ctx, snapshot))

	_, err := s.History(ctx, snapshot.ID)
	require.ErrorContains(t, err, "cycle")
}

func TestMigrate_Idempotent(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, Migrate(s.db))
	require.NoError(t, Migrate(s.db))
}
