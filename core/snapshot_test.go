package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleSnapshot = strings.Join([]string{
	"# Snapshot Id: snap-2",
	"# Previous Snapshot Id: snap-1",
	"# Timestamp: 2024-05-01T10:00:00Z",
	"# Annotations: ```",
	"reviewer: alice",
	"```",
	"# Moment Id: moment-1",
	"Begin.",
	`Self: "hello"`,
	"",
}, "\n")

func TestSnapshot_ParseText(t *testing.T) {
	s, err := ParseSnapshotText(sampleSnapshot)
	require.NoError(t, err)

	assert.Equal(t, "snap-2", s.ID)
	assert.Equal(t, "snap-1", s.PreviousID)
	assert.Equal(t, "2024-05-01T10:00:00Z", s.Timestamp)
	assert.Equal(t, map[string]any{"reviewer": "alice"}, s.Annotations)
	require.NotNil(t, s.Moment)
	assert.Equal(t, "moment-1", s.Moment.ID)
	require.Len(t, s.Moment.Occurrences, 2)
}

func TestSnapshot_CanonicalIdempotence(t *testing.T) {
	s, err := ParseSnapshotText(sampleSnapshot)
	require.NoError(t, err)

	canonical := s.Text()
	reparsed, err := ParseSnapshotText(canonical)
	require.NoError(t, err)
	assert.Equal(t, s, reparsed)
	assert.Equal(t, canonical, reparsed.Text())
}

func TestSnapshot_MissingIDIsFatal(t *testing.T) {
	_, err := ParseSnapshotText("# Timestamp: 2024-05-01T10:00:00Z\nBegin.\n")
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "snapshot_id", missing.Field)
}

func TestSnapshot_NoAnnotationsHeaderWhenEmpty(t *testing.T) {
	s := NewSnapshot(&Moment{ID: "m", Occurrences: []Occurrence{Begin{}}})
	assert.NotContains(t, s.Text(), "# Annotations:")
}

func TestSnapshot_DictRoundTrip(t *testing.T) {
	s, err := ParseSnapshotText(sampleSnapshot)
	require.NoError(t, err)

	reparsed, err := ParseSnapshotDict(s.Dict())
	require.NoError(t, err)
	assert.Equal(t, s, reparsed)
}

func TestSnapshot_DictAcceptsIDAlias(t *testing.T) {
	s, err := ParseSnapshotDict(map[string]any{
		"id":     "snap-9",
		"moment": map[string]any{"id": "m", "occurrences": []any{}},
	})
	require.NoError(t, err)
	assert.Equal(t, "snap-9", s.ID)
	assert.Empty(t, s.PreviousID)
	assert.Equal(t, map[string]any{}, s.Annotations)
}

func TestSnapshot_DictMomentIDFallback(t *testing.T) {
	s, err := ParseSnapshotDict(map[string]any{
		"snapshot_id": "snap-9",
		"moment_id":   "moment-7",
		"moment":      map[string]any{"id": "", "occurrences": []any{}},
	})
	require.NoError(t, err)
	assert.Equal(t, "moment-7", s.Moment.ID)
}

func TestSnapshot_DictMissingMoment(t *testing.T) {
	_, err := ParseSnapshotDict(map[string]any{"snapshot_id": "snap-9"})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "moment", missing.Field)
}

func TestSnapshot_NewSeedsChain(t *testing.T) {
	s := NewSnapshot(&Moment{Occurrences: []Occurrence{Begin{}}})
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.PreviousID)
	assert.NotEmpty(t, s.Timestamp)
	assert.NotEmpty(t, s.Moment.ID)
}

func TestSnapshot_AdvanceChainsByID(t *testing.T) {
	a := NewSnapshot(&Moment{ID: "m", Occurrences: []Occurrence{Begin{}}})
	a.Annotations["reviewer"] = "alice"

	b := a.Advance()
	assert.Equal(t, a.ID, b.PreviousID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Moment, b.Moment)
	assert.Equal(t, a.Annotations, b.Annotations)

	// Non-destructive: the receiver is untouched and shares no state.
	b.Moment.Append(Self{Says: "later"})
	b.Annotations["reviewer"] = "bob"
	assert.Len(t, a.Moment.Occurrences, 1)
	assert.Equal(t, "alice", a.Annotations["reviewer"])
	assert.Empty(t, a.PreviousID)
}

func TestSnapshot_AdvanceCapturesMomentAtCallTime(t *testing.T) {
	a := NewSnapshot(&Moment{ID: "m", Occurrences: []Occurrence{Begin{}}})
	b := a.Advance()
	a.Moment.Append(Self{Says: "after the fact"})
	assert.Len(t, b.Moment.Occurrences, 1)
}
