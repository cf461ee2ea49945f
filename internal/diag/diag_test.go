package diag

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_ZeroValue(t *testing.T) {
	var m Messages
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.HasErrors())
	assert.False(t, m.HasWarnings())
	assert.NoError(t, m.Err())
	assert.Empty(t, m.String())
}

func TestMessages_Severities(t *testing.T) {
	var m Messages
	m.Warnf(CodeParallelBelow1_0, "%d sets of %s", 2, "10 AWG")
	assert.True(t, m.HasWarnings())
	assert.False(t, m.HasErrors())
	assert.NoError(t, m.Err(), "warnings alone are not an error")

	m.Errorf(CodeInvalidCurrent, "current must be positive, got %v", -1.0)
	assert.True(t, m.HasErrors())
	require.Len(t, m.Errors(), 1)
	require.Len(t, m.Warnings(), 1)
	assert.Equal(t, "2 sets of 10 AWG", m.Warnings()[0].Text)

	err := m.Err()
	require.Error(t, err)
	var msg Message
	require.True(t, errors.As(err, &msg))
	assert.Equal(t, CodeInvalidCurrent, msg.Code)
	assert.Contains(t, err.Error(), "invalid_current")

	assert.True(t, m.Has(CodeParallelBelow1_0))
	assert.False(t, m.Has(CodeNoSizeAchievesTarget))
	assert.Contains(t, m.String(), "warning: parallel_below_1_0")
	assert.Contains(t, m.String(), "error: invalid_current")
}

func TestMessages_Merge(t *testing.T) {
	var a, b Messages
	a.Warnf(CodeAmpacityExceeded, "a")
	b.Errorf(CodeNoSizeAchievesTarget, "b")
	a.Merge(b)
	require.Equal(t, 2, a.Len())
	assert.Equal(t, CodeAmpacityExceeded, a.Items[0].Code)
	assert.Equal(t, CodeNoSizeAchievesTarget, a.Items[1].Code)
}

func TestCodes_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for c := CodeInvalidSourceVoltage; c <= CodeSourceExhausted; c++ {
		name := c.String()
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 12)
	assert.Equal(t, "Code(99)", Code(99).String())
}

func TestMessages_JSON(t *testing.T) {
	var m Messages
	m.Warnf(CodeParallelBelow1_0, "two sets")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"messages":[{"code":"parallel_below_1_0","severity":"warning","text":"two sets"}]}`,
		string(data))
}
