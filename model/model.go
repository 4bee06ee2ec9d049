package model

import (
	"context"
	"fmt"
	"strings"
)

// Request captures the normalized model input produced by agents. Document is
// the moment rendered to its canonical text form; the model is expected to
// continue it, typically with a single occurrence line.
type Request struct {
	Instructions string   `json:"instructions"`   // out-of-band system guidance, may be empty
	Document     string   `json:"document"`       // canonical moment text to continue
	Stop         []string `json:"stop,omitempty"` // stop sequences, e.g. "\n" to end after one line
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the completed continuation returned by a provider.
type Response struct {
	Text  string      `json:"text"`
	Usage *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required by agents to drive generation.
type Model interface {
	Complete(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Canned completions are keyed by the last line of the request document.
type MockModel struct {
	info      Info
	responses map[string]string
}

// NewMockModel constructs a MockModel with no canned completions.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a document
// whose last non-empty line equals prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if req.Document == "" {
		return Response{}, fmt.Errorf("no document provided")
	}
	prompt := lastLine(req.Document)
	text := m.responses[prompt]
	if text == "" {
		text = fmt.Sprintf("Self: \"Mock response to: %s\"", prompt)
	}
	return Response{Text: text}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }

func lastLine(doc string) string {
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}
