package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/parscan/device"
	"github.com/exascience/parscan/internal/logging"
	"github.com/exascience/parscan/internal/metrics"
)

func TestRunScan(t *testing.T) {
	dev := device.NewParallel(device.WithName("bench-scan"))
	report, err := Run(dev, OpScan, []int{1, 2, 2, 3, 3, 3}, Options{Iterations: 4, Verify: true, Logger: logging.DiscardLogger()})
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "bench-scan", report.Device)
	assert.Equal(t, 6, report.N)
	assert.Equal(t, 8, report.Padded)
	assert.Equal(t, 4, report.Iterations)
	assert.Equal(t, 14, report.Result)
	assert.Equal(t, []int{0, 1, 3, 5, 8, 11}, report.Output)
	assert.True(t, report.Verified)
	assert.LessOrEqual(t, report.Min, report.Mean)
	assert.LessOrEqual(t, report.Mean, report.Max)
	assert.Zero(t, dev.InUse())
	assert.Positive(t, testutil.CollectAndCount(metrics.OperationDurationSeconds))
}

func TestRunRepeats(t *testing.T) {
	dev := device.NewSequential(device.WithName("bench-repeats"))
	input := []int{7, 7, 7, 7}

	report, err := Run(dev, OpFindRepeats, input, Options{Iterations: 1, Verify: true, Logger: logging.DiscardLogger()})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Result)
	assert.Equal(t, []int{0, 1, 2}, report.Output)
	assert.Zero(t, report.StdDev)

	report, err = Run(dev, OpCountRepeats, input, Options{Verify: true})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Result)
	assert.Equal(t, 1, report.Iterations)
	assert.Zero(t, dev.InUse())
}

func TestRunOutOfMemory(t *testing.T) {
	dev := device.NewParallel(device.WithName("bench-oom"), device.WithMemoryLimit(2*device.ElementSize))
	_, err := Run(dev, OpScan, []int{1, 2, 3}, Options{Iterations: 2})
	assert.ErrorIs(t, err, device.ErrOutOfMemory)
}

func TestRunUnknownOp(t *testing.T) {
	_, err := Run(device.NewSequential(), Op("sort"), []int{1}, Options{})
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, err = ParseOp("repeats")
	assert.NoError(t, err)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(logging.Config{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	_, err = Run(device.NewParallel(), OpCountRepeats, []int{1, 1}, Options{Logger: logger})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "benchmark finished"))
	assert.True(t, strings.Contains(buf.String(), `"op":"count"`))
}
