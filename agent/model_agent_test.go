package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/moments/core"
	"github.com/hupe1980/moments/model"
)

func TestModelAgentRespondAppendsCompletion(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("Begin.", `Self: (waves) "Hello!"`)

	cfg := testConfig()
	cfg.Kind = "model"
	a := NewModelAgent("m-1", "Leela", cfg, llm)

	snap, err := System(a)
	require.NoError(t, err)

	next, err := Next(context.Background(), a, snap)
	require.NoError(t, err)

	occs := next.Moment.Occurrences
	require.Len(t, occs, 4)
	self, ok := occs[3].(core.Self)
	require.True(t, ok)
	assert.Equal(t, "waves", self.Emotion)
	assert.Equal(t, "Hello!", self.Says)
}

func TestModelAgentRejectsUnparsableCompletion(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("Begin.", "Unrecognized: nothing")

	a := NewModelAgent("m-1", "Leela", testConfig(), llm)
	snap, err := System(a)
	require.NoError(t, err)

	_, err = Next(context.Background(), a, snap)
	require.Error(t, err)
}

func TestModelAgentMultiLineCompletion(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("Begin.", "Thought: \"\"\"They just arrived.\"\"\"\nSelf: \"Welcome.\"")

	a := NewModelAgent("m-1", "Leela", testConfig(), llm, func(o *ModelAgentOptions) {
		o.Stop = nil
	})
	snap, err := System(a)
	require.NoError(t, err)

	next, err := Next(context.Background(), a, snap)
	require.NoError(t, err)

	occs := next.Moment.Occurrences
	require.Len(t, occs, 5)
	thought, ok := occs[3].(core.Thought)
	require.True(t, ok)
	assert.Equal(t, "They just arrived.", thought.Text)
	assert.Equal(t, core.KindSelf, occs[4].Kind())
}
