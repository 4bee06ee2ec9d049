package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `mdl: 0.0.1
kind: scripted
id: assistant
variant: default
init: |
  Instructions: """You are a helpful assistant."""
  Begin.
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(configYAML))
	require.NoError(t, err)

	assert.Equal(t, "0.0.1", cfg.MDL)
	assert.Equal(t, "scripted", cfg.Kind)
	assert.Equal(t, "assistant", cfg.ID)
	assert.Equal(t, "default", cfg.Variant)
	assert.Contains(t, cfg.Init, "Begin.")
}

func TestParseConfigMissingKind(t *testing.T) {
	_, err := ParseConfig([]byte("mdl: 0.0.1\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "scripted", cfg.Kind)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
