// Package moments provides a high-level façade over the moment grammar, the
// snapshot chain and the store abstractions. Most applications interact with
// this package by:
//  1. Creating a Chain via New() (optionally overriding the default in-memory store)
//  2. Starting it with an agent's seed snapshot (Start)
//  3. Stepping it turn by turn (Step), persisting every snapshot along the way
//
// The façade delegates parsing to the core package and the turn loop to the
// agent package while keeping setup ergonomics concise. All defaults are safe
// for local development and testing; durable deployments supply the SQLite
// store and a structured logger.
package moments

import (
	"context"
	"fmt"

	"github.com/hupe1980/moments/agent"
	"github.com/hupe1980/moments/core"
	"github.com/hupe1980/moments/logging"
	"github.com/hupe1980/moments/store"
)

// Options configures the Chain instance.
type Options struct {
	// Store persists every snapshot of the chain (defaults to in-memory).
	Store core.SnapshotStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Chain is the high-level façade aggregating an agent, its snapshot history
// and the backing store. The head snapshot is never mutated; each Step
// derives a successor and persists it.
type Chain struct {
	opts  Options
	agent agent.Agent
	head  *core.Snapshot
}

// New creates a new Chain for the given agent with optional overrides.
func New(a agent.Agent, optFns ...func(o *Options)) *Chain {
	opts := Options{
		Store:  store.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Chain{opts: opts, agent: a}
}

// Head returns the most recent snapshot, or nil before Start.
func (c *Chain) Head() *core.Snapshot { return c.head }

// Start seeds the chain from the agent's init document and persists the
// first snapshot.
func (c *Chain) Start(ctx context.Context) (*core.Snapshot, error) {
	snap, err := agent.System(c.agent)
	if err != nil {
		return nil, err
	}
	if err := c.opts.Store.Put(ctx, snap); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	c.opts.Logger.Info("chain started", "agent", c.agent.ID(), "snapshot", snap.ID)
	c.head = snap
	return snap, nil
}

// Resume makes an existing snapshot the head without running any hooks.
func (c *Chain) Resume(ctx context.Context, id string) (*core.Snapshot, error) {
	snap, err := c.opts.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.head = snap
	return snap, nil
}

// Step runs one agent turn against the head snapshot, persists the successor
// and makes it the new head.
func (c *Chain) Step(ctx context.Context) (*core.Snapshot, error) {
	if c.head == nil {
		return nil, fmt.Errorf("chain not started")
	}
	next, err := agent.Next(ctx, c.agent, c.head)
	if err != nil {
		return nil, err
	}
	if err := c.opts.Store.Put(ctx, next); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	c.opts.Logger.Info("chain advanced", "agent", c.agent.ID(), "snapshot", next.ID, "previous", next.PreviousID)
	c.head = next
	return next, nil
}

// History returns the chain from the head back to its first snapshot,
// newest first.
func (c *Chain) History(ctx context.Context) ([]*core.Snapshot, error) {
	if c.head == nil {
		return nil, fmt.Errorf("chain not started")
	}
	return c.opts.Store.History(ctx, c.head.ID)
}
