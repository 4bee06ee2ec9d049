// Package testutil provides fluent builders for constructing moments and
// snapshots in tests.
package testutil

import (
	"github.com/hupe1980/moments/core"
)

// MomentBuilder provides a fluent helper for constructing moments in tests.
// Example:
//
//	m := NewMomentBuilder().Instructions("Be kind.").Begin().SelfSays("Hello!").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type MomentBuilder struct {
	id          string
	occurrences []core.Occurrence
}

// NewMomentBuilder creates a builder with a generated moment id.
func NewMomentBuilder() *MomentBuilder { return &MomentBuilder{id: core.NewID()} }

// ID overrides the auto-generated moment ID (chainable). Use mainly in tests where determinism matters.
func (b *MomentBuilder) ID(id string) *MomentBuilder { b.id = id; return b }

// Instructions appends an instructions block (chainable).
func (b *MomentBuilder) Instructions(text string) *MomentBuilder {
	b.occurrences = append(b.occurrences, core.Instructions{Text: text})
	return b
}

// Example appends a titled example block (chainable).
func (b *MomentBuilder) Example(title, example string) *MomentBuilder {
	b.occurrences = append(b.occurrences, core.Example{Title: title, Example: example})
	return b
}

// Begin appends the begin marker (chainable).
func (b *MomentBuilder) Begin() *MomentBuilder {
	b.occurrences = append(b.occurrences, core.Begin{})
	return b
}

// Context appends a context mapping (chainable).
func (b *MomentBuilder) Context(values map[string]any) *MomentBuilder {
	b.occurrences = append(b.occurrences, core.Context{Values: values})
	return b
}

// SelfSays appends a self utterance without emotion (chainable).
func (b *MomentBuilder) SelfSays(says string) *MomentBuilder {
	b.occurrences = append(b.occurrences, core.Self{Says: says})
	return b
}

// ParticipantSays appends a named participant utterance (chainable).
func (b *MomentBuilder) ParticipantSays(name, says string) *MomentBuilder {
	b.occurrences = append(b.occurrences, core.Participant{Name: name, Says: says})
	return b
}

// Occurrence appends an arbitrary occurrence (chainable).
func (b *MomentBuilder) Occurrence(o core.Occurrence) *MomentBuilder {
	b.occurrences = append(b.occurrences, o)
	return b
}

// Build assembles the moment.
func (b *MomentBuilder) Build() *core.Moment {
	m := core.NewMoment(b.occurrences...)
	m.ID = b.id
	return m
}
