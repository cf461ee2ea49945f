package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ampacity/internal/cli"
)

func TestFill(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "fill", "--size", "6", "--insulation", "THHN", "--conduit", "steel", "--conductors", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "CONDUIT FILL")
	assert.Contains(t, out, "40%")
	assert.Contains(t, out, "3/4")
}

func TestFill_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "fill", "--size", "6", "--insulation", "THHN", "--conduit", "steel",
		"--conductors", "4", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Members        int     `json:"members"`
		AllowedPercent float64 `json:"allowed_percent"`
		TradeSize      string  `json:"trade_size"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Members)
	assert.InDelta(t, 40.0, got.AllowedPercent, 1e-9)
	assert.Equal(t, "3/4", got.TradeSize)
}

func TestFill_Nipple(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "fill", "--size", "10", "--conductors", "9", "--nipple")
	require.NoError(t, err)
	assert.Contains(t, out, "60%")
}

func TestFill_RejectsBundle(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "fill", "--bundle", "2")
	requireExitCode(t, err, cli.ExitUsage)
}
