package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModelCannedResponse(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("Begin.", `Self: "Hello!"`)

	resp, err := m.Complete(context.Background(), Request{Document: "Instructions: \"\"\"Be kind.\"\"\"\nBegin.\n"})
	require.NoError(t, err)
	assert.Equal(t, `Self: "Hello!"`, resp.Text)
	assert.Equal(t, "mock", m.Info().Provider)
}

func TestMockModelDefaultResponse(t *testing.T) {
	m := NewMockModel("test")

	resp, err := m.Complete(context.Background(), Request{Document: "Begin.\n"})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Mock response to: Begin.")
}

func TestMockModelEmptyDocument(t *testing.T) {
	m := NewMockModel("test")
	_, err := m.Complete(context.Background(), Request{})
	require.Error(t, err)
}

func TestMockModelCancelledContext(t *testing.T) {
	m := NewMockModel("test")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, Request{Document: "Begin.\n"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLastLineSkipsTrailingBlanks(t *testing.T) {
	assert.Equal(t, "Begin.", lastLine("Begin.\n\n\n"))
	assert.Equal(t, "", lastLine(""))
}
