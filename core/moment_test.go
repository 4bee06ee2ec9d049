package core

import (
	"strings"
	"testing"

	"github.com/hupe1980/moments/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleDocument = strings.Join([]string{
	"# Moment Id: moment-1",
	`Instructions: """You are a helpful librarian."""`,
	"Begin.",
	"Context: ```channel: web```",
	`Bob: (curious) "What is that?"`,
	`Thought: """It is a telescope."""`,
	`Self: (cheerful) "A telescope!"`,
	"Waiting: ```order_id: 42```",
	"",
}, "\n")

func TestMoment_ParseText(t *testing.T) {
	m, err := ParseMomentText(sampleDocument)
	require.NoError(t, err)

	assert.Equal(t, "moment-1", m.ID)
	require.Len(t, m.Occurrences, 7)
	assert.Equal(t, Instructions{Text: "You are a helpful librarian."}, m.Occurrences[0])
	assert.Equal(t, Begin{}, m.Occurrences[1])
	assert.Equal(t, Context{Values: map[string]any{"channel": "web"}}, m.Occurrences[2])
	assert.Equal(t, Participant{Name: "Bob", Emotion: "curious", Says: "What is that?"}, m.Occurrences[3])
	assert.Equal(t, Self{Emotion: "cheerful", Says: "A telescope!"}, m.Occurrences[5])
	assert.Equal(t, Waiting{Keys: map[string]any{"order_id": 42}}, m.Occurrences[6])
}

func TestMoment_CanonicalIdempotence(t *testing.T) {
	m, err := ParseMomentText(sampleDocument)
	require.NoError(t, err)

	canonical := m.Text()
	reparsed, err := ParseMomentText(canonical)
	require.NoError(t, err)

	assert.Equal(t, m, reparsed)
	assert.Equal(t, canonical, reparsed.Text())
}

func TestMoment_TextRoundTripPreservesOrder(t *testing.T) {
	m, err := ParseMomentText(sampleDocument)
	require.NoError(t, err)

	kinds := make([]Kind, 0, len(m.Occurrences))
	for _, o := range m.Occurrences {
		kinds = append(kinds, o.Kind())
	}
	assert.Equal(t, []Kind{
		KindInstructions, KindBegin, KindContext, KindParticipant,
		KindThought, KindSelf, KindWaiting,
	}, kinds)
}

func TestMoment_EscapingRoundTrip(t *testing.T) {
	original := &Moment{Occurrences: []Occurrence{Self{Says: `she said "hi"`}}}
	text := original.Text()
	assert.Contains(t, text, `\"hi\"`)

	reparsed, err := ParseMomentText(text)
	require.NoError(t, err)
	assert.Equal(t, Self{Says: `she said "hi"`}, reparsed.Occurrences[0])
}

func TestMoment_MultilineSaysRoundTrip(t *testing.T) {
	original := &Moment{Occurrences: []Occurrence{Self{Says: "first\nsecond"}}}
	text := original.Text()
	assert.Contains(t, text, `"""`)

	reparsed, err := ParseMomentText(text)
	require.NoError(t, err)
	assert.Equal(t, Self{Says: "first\nsecond"}, reparsed.Occurrences[0])
}

func TestMoment_MultilineSaysWithBoundaryQuotes(t *testing.T) {
	// Quotes at either edge of a multi-line payload sit directly against the
	// triple-quote delimiters and must still round-trip.
	for _, says := range []string{
		"line1\nshe said \"hi\"",
		"\"quote\" first\nthen more",
	} {
		original := &Moment{Occurrences: []Occurrence{Self{Says: says}}}
		reparsed, err := ParseMomentText(original.Text())
		require.NoError(t, err)
		assert.Equal(t, Self{Says: says}, reparsed.Occurrences[0])
		assert.Equal(t, original.Text(), reparsed.Text())
	}
}

func TestMoment_ContextScenario(t *testing.T) {
	m, err := ParseMomentText("Context: ```key: value\n```")
	require.NoError(t, err)
	require.Len(t, m.Occurrences, 1)
	assert.Equal(t, Context{Values: map[string]any{"key": "value"}}, m.Occurrences[0])
	assert.Equal(t, "Context: ```key: value```\n", m.Text())
}

func TestMoment_UnmatchedLineIsFatal(t *testing.T) {
	_, err := ParseMomentText("Begin.\nUnrecognized: nothing\n")
	var unmatched *grammar.UnmatchedLineError
	require.ErrorAs(t, err, &unmatched)
	assert.Equal(t, "Unrecognized: nothing", unmatched.Line)
}

func TestMoment_BadFenceContentIsFatal(t *testing.T) {
	_, err := ParseMomentText("Context: ```- a\n- b\n```\n")
	var content *ContentError
	require.ErrorAs(t, err, &content)
	assert.Equal(t, "Context", content.Kind)
}

func TestMoment_DictRoundTripAllKinds(t *testing.T) {
	m := &Moment{ID: "moment-2", Occurrences: []Occurrence{
		Instructions{Text: "be kind"},
		Example{Title: "greeting", Example: `Bob: "hi"`},
		Begin{},
		Context{Values: map[string]any{"k": "v"}},
		Self{Emotion: "warm", Says: "hello"},
		Participant{Name: "Bob", Emotion: "", Says: "hey"},
		Motivation{Text: "help"},
		Observation{Text: "quiet room"},
		Thought{Text: "hmm"},
		Identification{Role: "human", Name: "Bob"},
		Waiting{Keys: map[string]any{"a": 1}},
		Resuming{Keys: map[string]any{"a": 1}},
		Working{Task: map[string]any{"t": "x"}},
		Action{Call: map[string]any{"name": "lookup"}},
		Rejected{Emotion: "flat", Says: "no"},
		Critique{Text: "meh"},
		CritiqueRequest{Text: "review"},
		RevisionRequest{Text: "retry"},
		Revision{Emotion: "warm", Says: "yes"},
		Chosen{Says: "yes"},
	}}

	reparsed, err := ParseMomentDict(m.Dict())
	require.NoError(t, err)
	assert.Equal(t, m, reparsed)
}

func TestMoment_DictUnknownKindIsSkipped(t *testing.T) {
	m, err := ParseMomentDict(map[string]any{
		"id": "moment-3",
		"occurrences": []any{
			map[string]any{"kind": "Bogus", "content": map[string]any{}},
			map[string]any{"kind": "Self", "content": map[string]any{"emotion": "", "says": "hi"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, m.Occurrences, 1)
	assert.Equal(t, Self{Says: "hi"}, m.Occurrences[0])
}

func TestMoment_DictMissingID(t *testing.T) {
	_, err := ParseMomentDict(map[string]any{"occurrences": []any{}})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "id", missing.Field)
}

func TestMoment_DictMissingContent(t *testing.T) {
	_, err := ParseMomentDict(map[string]any{
		"id":          "m",
		"occurrences": []any{map[string]any{"kind": "Self"}},
	})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "content", missing.Field)
	assert.Equal(t, "Self", missing.Kind)
}

func TestMoment_DictSubFieldsDefaultToEmpty(t *testing.T) {
	m, err := ParseMomentDict(map[string]any{
		"id": "m",
		"occurrences": []any{
			map[string]any{"kind": "Self", "content": map[string]any{"says": "hi"}},
			map[string]any{"kind": "Waiting", "content": nil},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, Self{Emotion: "", Says: "hi"}, m.Occurrences[0])
	assert.Equal(t, Waiting{Keys: map[string]any{}}, m.Occurrences[1])
}

func TestMoment_AppendPreservesOrder(t *testing.T) {
	m := NewMoment(Begin{})
	m.Append(Self{Says: "one"}, Self{Says: "two"})
	require.Len(t, m.Occurrences, 3)
	assert.Equal(t, Self{Says: "two"}, m.Occurrences[2])
}

func TestMoment_CloneIsDeep(t *testing.T) {
	m := &Moment{ID: "m", Occurrences: []Occurrence{Context{Values: map[string]any{"k": "v"}}}}
	clone := m.Clone()
	clone.Occurrences[0].(Context).Values["k"] = "changed"
	assert.Equal(t, "v", m.Occurrences[0].(Context).Values["k"])
}

func TestMoment_ParseDispatch(t *testing.T) {
	m, err := ParseMoment(`Self: "hi"` + "\n")
	require.NoError(t, err)
	assert.Len(t, m.Occurrences, 1)

	m, err = ParseMoment(map[string]any{"id": "m", "occurrences": []any{}})
	require.NoError(t, err)
	assert.Equal(t, "m", m.ID)

	_, err = ParseMoment(42)
	require.Error(t, err)
}
