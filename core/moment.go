package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hupe1980/moments/grammar"
)

// Moment is an ordered, identified sequence of occurrences. Order is
// semantically meaningful (conversational/temporal) and is preserved exactly
// through parse and serialize. A Moment is only ever mutated by appending
// occurrences during an agent turn.
type Moment struct {
	ID          string
	Occurrences []Occurrence
}

// NewMoment constructs a fresh Moment with a generated id.
func NewMoment(occurrences ...Occurrence) *Moment {
	return &Moment{ID: NewID(), Occurrences: occurrences}
}

// NewID generates a unique identifier for moments and snapshots.
func NewID() string { return uuid.NewString() }

// ParseMoment dispatches on the source shape: MDL text or a kind-tagged
// mapping. Any failure aborts the whole parse; there is no partial result.
func ParseMoment(source any) (*Moment, error) {
	switch s := source.(type) {
	case string:
		return ParseMomentText(s)
	case map[string]any:
		return ParseMomentDict(s)
	default:
		return nil, fmt.Errorf("mdl: cannot parse moment from %T", source)
	}
}

// ParseMomentText parses an MDL document into a Moment. An optional leading
// "# Moment Id: <value>" comment carries the id.
func ParseMomentText(text string) (*Moment, error) {
	root, err := grammar.Parse(text)
	if err != nil {
		return nil, err
	}
	id, occurrences, err := reduceDocument(root)
	if err != nil {
		return nil, err
	}
	return &Moment{ID: id, Occurrences: occurrences}, nil
}

// ParseMomentDict builds a Moment from {id, occurrences: [{kind, content}]}
// without invoking the grammar. Unrecognized kinds are dropped, not errored.
func ParseMomentDict(dict map[string]any) (*Moment, error) {
	idVal, ok := dict["id"]
	if !ok {
		return nil, &MissingFieldError{Field: "id"}
	}
	rawOccs, ok := dict["occurrences"]
	if !ok {
		return nil, &MissingFieldError{Field: "occurrences"}
	}
	m := &Moment{ID: asString(idVal), Occurrences: []Occurrence{}}
	for _, entry := range asEntrySlice(rawOccs) {
		occ, ok, err := occurrenceFromDict(entry)
		if err != nil {
			return nil, err
		}
		if ok {
			m.Occurrences = append(m.Occurrences, occ)
		}
	}
	return m, nil
}

// asEntrySlice accepts both []map[string]any (as produced by Dict) and
// []any (as produced by generic JSON/YAML decoders). Non-mapping entries are
// treated like unknown kinds and skipped.
func asEntrySlice(v any) []map[string]any {
	switch t := v.(type) {
	case []map[string]any:
		return t
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// Text renders the canonical MDL document: the id comment when set, then one
// block per occurrence in document order, joined by single newlines with a
// trailing newline. Re-parsing the result yields a structurally equal Moment
// whose Text is byte-identical.
func (m *Moment) Text() string {
	var b strings.Builder
	if m.ID != "" {
		b.WriteString("# Moment Id: ")
		b.WriteString(m.ID)
		b.WriteByte('\n')
	}
	for _, o := range m.Occurrences {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Dict renders {id, occurrences: [...]} with each occurrence in its
// canonical dict form.
func (m *Moment) Dict() map[string]any {
	occurrences := make([]map[string]any, 0, len(m.Occurrences))
	for _, o := range m.Occurrences {
		occurrences = append(occurrences, o.Dict())
	}
	return map[string]any{"id": m.ID, "occurrences": occurrences}
}

// Append adds occurrences to the end of the sequence.
func (m *Moment) Append(occurrences ...Occurrence) {
	m.Occurrences = append(m.Occurrences, occurrences...)
}

// Clone returns a deep copy; mapping payloads are copied so the clone shares
// no mutable state with the receiver.
func (m *Moment) Clone() *Moment {
	if m == nil {
		return &Moment{Occurrences: []Occurrence{}}
	}
	occurrences := make([]Occurrence, len(m.Occurrences))
	for i, o := range m.Occurrences {
		occurrences[i] = cloneOccurrence(o)
	}
	return &Moment{ID: m.ID, Occurrences: occurrences}
}

// cloneOccurrence deep-copies the mapping-bearing variants; the remaining
// variants hold only strings and copy by value.
func cloneOccurrence(o Occurrence) Occurrence {
	switch t := o.(type) {
	case Context:
		return Context{Values: cloneMapOrEmpty(t.Values)}
	case Waiting:
		return Waiting{Keys: cloneMapOrEmpty(t.Keys)}
	case Resuming:
		return Resuming{Keys: cloneMapOrEmpty(t.Keys)}
	case Working:
		return Working{Task: cloneMapOrEmpty(t.Task)}
	case Action:
		return Action{Call: cloneMapOrEmpty(t.Call)}
	default:
		return o
	}
}
