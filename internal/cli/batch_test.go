package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ampacity/internal/cli"
)

const circuitsYAML = `version: "1.0.0"
defaults:
  source_voltage: 120
  max_drop: 2
circuits:
  - name: branch-1
    size: "12"
    length: 100 ft
    current: 10
  - name: feeder
    task: size
    length: 100 ft
    current: 10
  - name: pv-string
    mode: dc
    task: length
    size: "10"
    current: 8
`

func writeCircuits(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatch(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "batch", writeCircuits(t, circuitsYAML), "--concurrency", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "BATCH ")
	assert.Contains(t, out, "branch-1")
	assert.Contains(t, out, "feeder")
	assert.Contains(t, out, "pv-string")
	assert.Contains(t, out, "3 circuits, 0 failed")
}

func TestBatch_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "batch", writeCircuits(t, circuitsYAML), "-o", "json")
	require.NoError(t, err)

	var got struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Name   string `json:"name"`
			Sizing *struct {
				Size string `json:"size"`
			} `json:"sizing"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.RunID, 26)
	require.Len(t, got.Results, 3)
	assert.Equal(t, "feeder", got.Results[1].Name)
	require.NotNil(t, got.Results[1].Sizing)
	assert.Equal(t, "10", got.Results[1].Sizing.Size)
}

func TestBatch_Failures(t *testing.T) {
	setupCLITest(t)

	content := `circuits:
  - name: good
    size: "12"
    length: 100
    current: 10
  - name: bad-size
    size: "13"
    current: 10
  - name: bad-pf
    size: "12"
    length: 100
    current: 10
    power_factor: 0.2
`
	out, err := executeCmd(t, "batch", writeCircuits(t, content))
	requireExitCode(t, err, cli.ExitDiagnostics)
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "[invalid_power_factor]")
	assert.Contains(t, out, "3 circuits, 2 failed")
}

func TestBatch_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
	}{
		{name: "no circuits", content: "version: \"1.0.0\"\n"},
		{name: "unsupported version", content: "version: \"2.0.0\"\ncircuits:\n  - size: \"12\"\n"},
		{name: "malformed yaml", content: "circuits: [\n"},
		{name: "chunk size", content: circuitsYAML, args: []string{"--chunk-size", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			args := append([]string{"batch", writeCircuits(t, tt.content)}, tt.args...)
			_, err := executeCmd(t, args...)
			requireExitCode(t, err, cli.ExitUsage)
		})
	}
}

func TestBatch_MissingFile(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	requireExitCode(t, err, cli.ExitUsage)
}
