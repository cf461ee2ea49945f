package batch

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
)

func newRunner(t *testing.T, opts ...RunnerOption) *Runner {
	t.Helper()
	r, err := NewRunner(nec.Default(), opts...)
	require.NoError(t, err)
	return r
}

func TestNewRunnerRejectsNilProperties(t *testing.T) {
	_, err := NewRunner(nil)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	f, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	rep, err := newRunner(t).Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)
	assert.Len(t, rep.RunID, 26)
	assert.Zero(t, rep.Failures())

	branch := rep.Results[0]
	assert.Equal(t, "branch", branch.Name)
	require.NotNil(t, branch.Drop)
	assert.InDelta(t, 116.0, branch.Drop.VoltageAtLoad, 0.001)
	assert.InDelta(t, 3.3333, branch.Drop.DropPercent, 0.0005)
	assert.Equal(t, nec.Size12, branch.Conductor.Size)

	feeder := rep.Results[1]
	require.NotNil(t, feeder.Sizing)
	require.True(t, feeder.Sizing.Found, feeder.Sizing.Messages.String())
	assert.LessOrEqual(t, feeder.Sizing.DropPercent, 2.0)
	assert.Equal(t, feeder.Sizing.Size, feeder.Conductor.Size)
	assert.Equal(t, nec.SteelConduit, feeder.Conductor.Material)

	pv := rep.Results[2]
	require.NotNil(t, pv.Length)
	assert.True(t, pv.Length.Found)
	assert.Greater(t, pv.Length.MaxLength, 0.0)
	assert.Equal(t, ModeDC, pv.Mode)
}

func TestRunKeepsFileOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("circuits:\n")
	for i := range 50 {
		fmt.Fprintf(&sb, "  - {name: c%d, size: '12', length: '%d ft', current: 10}\n", i, 10+i)
	}
	f, err := Parse([]byte(sb.String()))
	require.NoError(t, err)

	rep, err := newRunner(t, WithChunkSize(3), WithConcurrency(4)).Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, rep.Results, 50)
	for i, res := range rep.Results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, fmt.Sprintf("c%d", i), res.Name)
		assert.InDelta(t, float64(10+i), res.Conductor.LengthFt, 1e-9)
	}
	for i := 1; i < len(rep.Results); i++ {
		assert.Greater(t, rep.Results[i].Drop.DropPercent, rep.Results[i-1].Drop.DropPercent)
	}
}

func TestRunRecordsCircuitFailures(t *testing.T) {
	f, err := Parse([]byte(`
circuits:
  - {name: bad-metal, size: '12', length: '10', current: 10, metal: tin}
  - {name: no-current, size: '12', length: '10'}
  - {name: ok, size: '12', length: '10', current: 10}
`))
	require.NoError(t, err)

	rep, err := newRunner(t).Run(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Failures())

	assert.Contains(t, rep.Results[0].Error, "metal")
	assert.True(t, rep.Results[0].Failed())

	assert.Empty(t, rep.Results[1].Error)
	assert.True(t, rep.Results[1].Messages().Has(diag.CodeInvalidCurrent))

	assert.False(t, rep.Results[2].Failed())
}

func TestRunProgressAndLogging(t *testing.T) {
	f, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	var buf bytes.Buffer
	var calls int32
	r := newRunner(t,
		WithChunkSize(1),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
		WithProgress(func(*Progress) { atomic.AddInt32(&calls, 1) }),
	)
	rep, err := r.Run(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls)
	assert.Contains(t, buf.String(), `"component":"batch"`)
	assert.Contains(t, buf.String(), rep.RunID)
	assert.Contains(t, buf.String(), "batch run finished")
}

func TestRunErrors(t *testing.T) {
	r := newRunner(t)
	_, err := r.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoCircuits)

	f, err := Parse([]byte(sampleFile))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, f)
	require.ErrorIs(t, err, context.Canceled)

	_, err = newRunner(t, WithChunkSize(0)).Run(context.Background(), f)
	require.ErrorIs(t, err, ErrInvalidChunkSize)
}
