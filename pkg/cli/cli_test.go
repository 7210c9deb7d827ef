package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInjectErrorFault(t *testing.T) {
	out, err := execute(t, "inject", "--fault", "error", "--error-code", "503", "--message", "x")
	require.NoError(t, err, "a simulated fault is the expected product, not a command failure")
	assert.Contains(t, out, "Injecting 'error' fault")
	assert.Contains(t, out, "[503] x")
}

func TestInjectLatencyFault(t *testing.T) {
	out, err := execute(t, "inject", "--fault", "latency", "--duration-ms", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "no error raised")
}

func TestInjectUnknownKind(t *testing.T) {
	_, err := execute(t, "inject", "--fault", "disk_on_fire")
	assert.Error(t, err)
}

func TestRunExperimentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.json")
	definition := `{
		"name": "cli-smoke",
		"duration_seconds": 1,
		"faults": [{"kind": "timeout", "probability": 1.0}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(definition), 0o600))

	out, err := execute(t, "run", "--experiment", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Running experiment 'cli-smoke'")
	assert.Contains(t, out, "Status    : completed")
	assert.Contains(t, out, "faults_by_kind.timeout: 1")
}

func TestRunMissingExperimentFile(t *testing.T) {
	_, err := execute(t, "run", "--experiment", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReportIsInProcessOnly(t *testing.T) {
	out, err := execute(t, "report", "--experiment-id", "exp-1")
	assert.Error(t, err)
	assert.Contains(t, out, "in-process")
}
