package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const momentDoc = "Self: (smiles) \"Hello!\"\nUser: \"Hi.\"\n"

const snapshotDoc = "# Snapshot Id: snap-1\n# Timestamp: 2023-04-05T12:00:00Z\nSelf: \"Hello!\"\n"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "moment.txt", momentDoc)
	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	bad := writeFile(t, "bad.txt", "Unrecognized: nothing\n")
	_, err = runCLI(t, "validate", bad)
	require.Error(t, err)
}

func TestValidateSnapshot(t *testing.T) {
	path := writeFile(t, "snap.txt", snapshotDoc)
	out, err := runCLI(t, "validate", "--snapshot", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestFmtCanonicalizes(t *testing.T) {
	// Redundant whitespace and blank lines disappear in canonical form.
	path := writeFile(t, "moment.txt", "Self:    \"Hello!\"\n\n\nUser: \"Hi.\"\n")
	out, err := runCLI(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, "Self: \"Hello!\"\nUser: \"Hi.\"\n", out)
}

func TestFmtWriteInPlace(t *testing.T) {
	path := writeFile(t, "moment.txt", "Self:   \"Hello!\"\n")
	_, err := runCLI(t, "fmt", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Self: \"Hello!\"\n", string(data))
}

func TestExport(t *testing.T) {
	path := writeFile(t, "moment.txt", momentDoc)
	out, err := runCLI(t, "export", path)
	require.NoError(t, err)

	var dict map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &dict))
	occs, ok := dict["occurrences"].([]any)
	require.True(t, ok)
	assert.Len(t, occs, 2)
}

func TestChainAddShowHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "chain.db")
	path := writeFile(t, "snap.txt", snapshotDoc)

	out, err := runCLI(t, "chain", "--db", db, "add", path)
	require.NoError(t, err)
	assert.Contains(t, out, "snap-1")

	out, err = runCLI(t, "chain", "--db", db, "show", "snap-1")
	require.NoError(t, err)
	assert.Contains(t, out, "# Snapshot Id: snap-1")
	assert.Contains(t, out, "Self: \"Hello!\"")

	out, err = runCLI(t, "chain", "--db", db, "history", "snap-1")
	require.NoError(t, err)
	assert.Contains(t, out, "snap-1")

	_, err = runCLI(t, "chain", "--db", db, "show", "missing")
	require.Error(t, err)
}
