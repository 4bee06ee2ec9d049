package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/moments/core"
)

// Agent is the contract for a snapshot-driven participant. A turn runs the
// three hooks in order against the moment of a freshly advanced snapshot:
// Before adds context or observations, Respond produces the agent's own
// contribution, After performs any follow-up actions.
type Agent interface {
	// ID returns the instance id, unique per running agent.
	ID() string

	// Name returns the human-readable name used in Self lines.
	Name() string

	// Config returns the configuration the agent was created from.
	Config() Config

	// Before runs ahead of Respond. Hook to add context, observations,
	// motivations, etc.
	Before(ctx context.Context, moment *core.Moment) error

	// Respond produces the agent's contribution to the moment.
	Respond(ctx context.Context, moment *core.Moment) error

	// After runs once Respond has finished. Hook to perform actions, etc.
	After(ctx context.Context, moment *core.Moment) error
}

// BaseAgent bundles identity and configuration. Embed it in concrete agent
// implementations and supply the hooks; Before and After default to no-ops.
type BaseAgent struct {
	id     string
	name   string
	config Config
}

// NewBaseAgent constructs a BaseAgent with the given instance id and name.
func NewBaseAgent(id, name string, config Config) BaseAgent {
	return BaseAgent{id: id, name: name, config: config}
}

// ID returns the instance id.
func (b *BaseAgent) ID() string { return b.id }

// Name returns the agent's name.
func (b *BaseAgent) Name() string { return b.name }

// Config returns the agent's configuration.
func (b *BaseAgent) Config() Config { return b.config }

// Before implements Agent as a no-op.
func (b *BaseAgent) Before(_ context.Context, _ *core.Moment) error { return nil }

// After implements Agent as a no-op.
func (b *BaseAgent) After(_ context.Context, _ *core.Moment) error { return nil }

// System builds the first snapshot of a chain by parsing the agent's init
// document. The snapshot has no predecessor and empty annotations.
func System(a Agent) (*core.Snapshot, error) {
	moment, err := core.ParseMomentText(a.Config().Init)
	if err != nil {
		return nil, fmt.Errorf("parse init document: %w", err)
	}
	moment.ID = core.NewID()
	return core.NewSnapshot(moment), nil
}

// Next advances the chain by one turn: it derives the successor snapshot and
// runs the agent's hooks against the successor's moment. The given snapshot
// is left untouched, so callers keep a usable history.
func Next(ctx context.Context, a Agent, snapshot *core.Snapshot) (*core.Snapshot, error) {
	next := snapshot.Advance()
	if err := a.Before(ctx, next.Moment); err != nil {
		return nil, fmt.Errorf("before hook: %w", err)
	}
	if err := a.Respond(ctx, next.Moment); err != nil {
		return nil, fmt.Errorf("respond: %w", err)
	}
	if err := a.After(ctx, next.Moment); err != nil {
		return nil, fmt.Errorf("after hook: %w", err)
	}
	return next, nil
}
