package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/moments/core"
	"github.com/hupe1980/moments/logging"
	"github.com/hupe1980/moments/model"
)

// ModelAgentOptions configures a ModelAgent instance.
//
// Use functional options with NewModelAgent to override defaults.
type ModelAgentOptions struct {
	Logger       logging.Logger
	Instructions string   // system guidance sent alongside the document
	Stop         []string // stop sequences for the completion
}

// ModelAgent continues moments with a language model. Respond renders the
// moment to canonical text, asks the model for a continuation and appends the
// parsed occurrences. Before and After are inherited no-ops; embed ModelAgent
// to override them.
type ModelAgent struct {
	BaseAgent
	llm    model.Model
	logger logging.Logger
	opts   ModelAgentOptions
}

// NewModelAgent creates a model-backed agent. By default completions stop at
// the first newline so the model contributes a single occurrence per turn.
func NewModelAgent(id, name string, cfg Config, llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{
		Logger: logging.NoOpLogger{},
		Stop:   []string{"\n"},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ModelAgent{
		BaseAgent: NewBaseAgent(id, name, cfg),
		llm:       llm,
		logger:    opts.Logger,
		opts:      opts,
	}
}

// Respond implements Agent.
func (a *ModelAgent) Respond(ctx context.Context, moment *core.Moment) error {
	req := model.Request{
		Instructions: a.opts.Instructions,
		Document:     moment.Text(),
		Stop:         a.opts.Stop,
	}
	resp, err := a.llm.Complete(ctx, req)
	if err != nil {
		return fmt.Errorf("complete moment: %w", err)
	}
	a.logger.Debug("model completion", "agent", a.ID(), "provider", a.llm.Info().Provider, "chars", len(resp.Text))

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return fmt.Errorf("model returned empty completion")
	}
	continuation, err := core.ParseMomentText(text + "\n")
	if err != nil {
		return fmt.Errorf("parse model completion: %w", err)
	}
	moment.Append(continuation.Occurrences...)
	return nil
}
