package core

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Snapshot is a versioned capture of a Moment. Snapshots form a singly
// linked backward chain through predecessor ids: the predecessor is
// referenced by id only, never retained in memory, so the chain is
// reconstructible only if every version is persisted under its own id by an
// external store before it is superseded. This package keeps no history
// buffer and performs no I/O.
type Snapshot struct {
	ID          string
	PreviousID  string
	Timestamp   string // ISO-8601 (RFC 3339), kept as an opaque string
	Annotations map[string]any
	Moment      *Moment
}

// NowTimestamp returns the canonical snapshot timestamp for this instant.
func NowTimestamp() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// NewSnapshot seeds a new chain: fresh id, no predecessor, current
// timestamp. The moment receives a generated id when it has none.
func NewSnapshot(m *Moment) *Snapshot {
	if m == nil {
		m = &Moment{Occurrences: []Occurrence{}}
	}
	if m.ID == "" {
		m.ID = NewID()
	}
	return &Snapshot{
		ID:          NewID(),
		Timestamp:   NowTimestamp(),
		Annotations: map[string]any{},
		Moment:      m,
	}
}

// Advance produces the next version of the chain: a new Snapshot whose
// predecessor id is the receiver's id, with a fresh id and timestamp, a deep
// copy of the moment and carried-over annotations. The receiver is never
// mutated; whether it is retained (persisted) or discarded is the caller's
// decision.
func (s *Snapshot) Advance() *Snapshot {
	return &Snapshot{
		ID:          NewID(),
		PreviousID:  s.ID,
		Timestamp:   NowTimestamp(),
		Annotations: cloneMapOrEmpty(s.Annotations),
		Moment:      s.Moment.Clone(),
	}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		ID:          s.ID,
		PreviousID:  s.PreviousID,
		Timestamp:   s.Timestamp,
		Annotations: cloneMapOrEmpty(s.Annotations),
		Moment:      s.Moment.Clone(),
	}
}

// ParseSnapshot dispatches on the source shape, mirroring ParseMoment.
func ParseSnapshot(source any) (*Snapshot, error) {
	switch s := source.(type) {
	case string:
		return ParseSnapshotText(s)
	case map[string]any:
		return ParseSnapshotDict(s)
	default:
		return nil, fmt.Errorf("mdl: cannot parse snapshot from %T", source)
	}
}

// Snapshot header keys. "Id" is canonical on output; "ID" is accepted on
// input for documents written by earlier revisions.
var (
	snapshotIDKeys = []string{"# Snapshot Id:", "# Snapshot ID:"}
	previousIDKeys = []string{"# Previous Snapshot Id:", "# Previous Snapshot ID:"}
	timestampKeys  = []string{"# Timestamp:"}
)

// ParseSnapshotText parses the combined header+body form: ordered "#"
// metadata lines followed by the moment's MDL text. Unrecognized comment
// lines (including "# Moment Id:") belong to the moment body. A missing
// snapshot id is fatal.
func ParseSnapshotText(text string) (*Snapshot, error) {
	s := &Snapshot{Annotations: map[string]any{}}
	var body strings.Builder
	seenID := false
	rest := text
	for strings.HasPrefix(rest, "#") {
		if strings.HasPrefix(rest, "# Annotations:") {
			remainder, err := parseAnnotationsHeader(rest, s)
			if err != nil {
				return nil, err
			}
			rest = remainder
			continue
		}
		line, remainder, _ := strings.Cut(rest, "\n")
		switch {
		case headerValue(line, snapshotIDKeys, &s.ID):
			seenID = true
		case headerValue(line, previousIDKeys, &s.PreviousID):
		case headerValue(line, timestampKeys, &s.Timestamp):
		default:
			body.WriteString(line)
			body.WriteByte('\n')
		}
		rest = remainder
	}
	if !seenID {
		return nil, &MissingFieldError{Field: "snapshot_id"}
	}
	body.WriteString(rest)
	m, err := ParseMomentText(body.String())
	if err != nil {
		return nil, err
	}
	s.Moment = m
	return s, nil
}

func headerValue(line string, keys []string, dst *string) bool {
	for _, key := range keys {
		if rest, ok := strings.CutPrefix(line, key); ok {
			*dst = strings.TrimSpace(rest)
			return true
		}
	}
	return false
}

// parseAnnotationsHeader consumes "# Annotations: ```...```" from the start
// of rest. The fence may span lines; the inner text is decoded as a YAML
// mapping. Returns the input remaining after the closing fence's line.
func parseAnnotationsHeader(rest string, s *Snapshot) (string, error) {
	after := strings.TrimLeft(rest[len("# Annotations:"):], " ")
	if !strings.HasPrefix(after, "```") {
		return "", &ContentError{Kind: "Annotations", Err: fmt.Errorf("expected fenced block")}
	}
	inner := after[3:]
	end := strings.Index(inner, "```")
	if end < 0 {
		return "", &ContentError{Kind: "Annotations", Err: fmt.Errorf("unterminated fenced block")}
	}
	raw := inner[:end]
	if strings.TrimSpace(raw) != "" {
		if err := yaml.Unmarshal([]byte(raw), &s.Annotations); err != nil {
			return "", &ContentError{Kind: "Annotations", Err: err}
		}
	}
	tail := inner[end+3:]
	if nl := strings.IndexByte(tail, '\n'); nl >= 0 {
		return tail[nl+1:], nil
	}
	return "", nil
}

// ParseSnapshotDict builds a Snapshot from its structured mapping form.
// "snapshot_id" is canonical; a bare "id" key is accepted as an alias. A
// top-level "moment_id" is routed into the nested moment when that mapping
// carries no id of its own.
func ParseSnapshotDict(dict map[string]any) (*Snapshot, error) {
	idVal, ok := dict["snapshot_id"]
	if !ok {
		idVal, ok = dict["id"]
	}
	if !ok {
		return nil, &MissingFieldError{Field: "snapshot_id"}
	}
	momentVal, ok := dict["moment"].(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: "moment"}
	}
	m, err := ParseMomentDict(momentVal)
	if err != nil {
		return nil, err
	}
	if m.ID == "" {
		m.ID = asString(dict["moment_id"])
	}
	annotations, err := asMapping(dict["annotations"], "Snapshot")
	if err != nil {
		return nil, &MissingFieldError{Field: "annotations"}
	}
	return &Snapshot{
		ID:          asString(idVal),
		PreviousID:  asString(dict["previous_snapshot_id"]),
		Timestamp:   asString(dict["timestamp"]),
		Annotations: annotations,
		Moment:      m,
	}, nil
}

// Text renders the canonical header+body form.
func (s *Snapshot) Text() string {
	var b strings.Builder
	b.WriteString("# Snapshot Id: ")
	b.WriteString(s.ID)
	b.WriteByte('\n')
	if s.PreviousID != "" {
		b.WriteString("# Previous Snapshot Id: ")
		b.WriteString(s.PreviousID)
		b.WriteByte('\n')
	}
	b.WriteString("# Timestamp: ")
	b.WriteString(s.Timestamp)
	b.WriteByte('\n')
	if len(s.Annotations) > 0 {
		b.WriteString("# Annotations: ```\n")
		b.WriteString(yamlBlock(s.Annotations))
		b.WriteString("\n```\n")
	}
	if s.Moment != nil {
		b.WriteString(s.Moment.Text())
	}
	return b.String()
}

// Dict renders the structured mapping form with a nested moment.
func (s *Snapshot) Dict() map[string]any {
	var moment map[string]any
	if s.Moment != nil {
		moment = s.Moment.Dict()
	}
	return map[string]any{
		"snapshot_id":          s.ID,
		"previous_snapshot_id": s.PreviousID,
		"timestamp":            s.Timestamp,
		"annotations":          cloneMapOrEmpty(s.Annotations),
		"moment":               moment,
	}
}
