/*
Package bench times the scan operations on a device.

Every iteration uploads the input to a fresh device buffer, times exactly
one core call, and downloads the result. Transfers are not part of the
measured time. Results can be verified against the sequential device.
*/
package bench

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/parscan/device"
	"github.com/exascience/parscan/internal/metrics"
	"github.com/exascience/parscan/scan"
)

// Op is a timed operation.
type Op string

const (
	OpScan         Op = "scan"
	OpFindRepeats  Op = "repeats"
	OpCountRepeats Op = "count"
)

var (
	// ErrUnknownOp is returned for an unsupported operation.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrMismatch is returned when verification against the sequential
	// device fails.
	ErrMismatch = errors.New("result differs from sequential reference")
)

// ParseOp returns the Op named s.
func ParseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case OpScan, OpFindRepeats, OpCountRepeats:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// Options control a benchmark run.
type Options struct {
	Iterations int
	Verify     bool
	Logger     zerolog.Logger
}

// Report summarizes a benchmark run.
type Report struct {
	RunID      string        `json:"run_id"`
	Device     string        `json:"device"`
	Op         Op            `json:"op"`
	N          int           `json:"n"`
	Padded     int           `json:"padded"`
	Iterations int           `json:"iterations"`
	Mean       time.Duration `json:"mean"`
	StdDev     time.Duration `json:"stddev"`
	Min        time.Duration `json:"min"`
	Max        time.Duration `json:"max"`
	// Result is the repeat count for repeats and count, and the inclusive
	// total for scan.
	Result   int   `json:"result"`
	Output   []int `json:"-"`
	Verified bool  `json:"verified"`
}

// Run times op on dev over input.
func Run(dev device.Device, op Op, input []int, opts Options) (Report, error) {
	if _, err := ParseOp(string(op)); err != nil {
		return Report{}, err
	}
	if opts.Iterations < 1 {
		opts.Iterations = 1
	}
	name := dev.Info().Name
	report := Report{
		RunID:      uuid.NewString(),
		Device:     name,
		Op:         op,
		N:          len(input),
		Padded:     scan.PowerOfTwoPad(len(input)),
		Iterations: opts.Iterations,
	}
	logger := opts.Logger.With().Str("run_id", report.RunID).Str("device", name).Str("op", string(op)).Logger()
	observer := metrics.OperationDurationSeconds.WithLabelValues(string(op), name)

	samples := make([]float64, 0, opts.Iterations)
	for i := 0; i < opts.Iterations; i++ {
		elapsed, result, output, err := runOnce(dev, op, input)
		if err != nil {
			return report, fmt.Errorf("iteration %d: %w", i, err)
		}
		observer.Observe(elapsed.Seconds())
		samples = append(samples, elapsed.Seconds())
		report.Result, report.Output = result, output
		logger.Debug().Int("iteration", i).Dur("elapsed", elapsed).Msg("iteration done")
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if len(samples) < 2 {
		std = 0
	}
	report.Mean = seconds(mean)
	report.StdDev = seconds(std)
	report.Min = seconds(floats.Min(samples))
	report.Max = seconds(floats.Max(samples))

	if opts.Verify {
		result, output, err := reference(op, input)
		if err != nil {
			return report, err
		}
		if result != report.Result || !reflect.DeepEqual(output, report.Output) {
			return report, fmt.Errorf("%w: %s on %s", ErrMismatch, op, name)
		}
		report.Verified = true
	}

	logger.Info().
		Int("n", report.N).
		Int("iterations", report.Iterations).
		Dur("mean", report.Mean).
		Dur("stddev", report.StdDev).
		Int("result", report.Result).
		Bool("verified", report.Verified).
		Msg("benchmark finished")
	return report, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// runOnce uploads input, times one call of op and downloads the output.
func runOnce(dev device.Device, op Op, input []int) (elapsed time.Duration, result int, output []int, err error) {
	n := len(input)
	buf, err := device.Upload(dev, input, scan.PowerOfTwoPad(n))
	if err != nil {
		return 0, 0, nil, err
	}
	defer dev.Free(buf)
	buf = buf[:n]

	switch op {
	case OpScan:
		start := time.Now()
		result = scan.ExclusiveScanTotal(dev, buf, buf)
		elapsed = time.Since(start)
		output = device.Download(buf, n)
	case OpFindRepeats:
		out, err := dev.Alloc(n)
		if err != nil {
			return 0, 0, nil, err
		}
		defer dev.Free(out)
		start := time.Now()
		result, err = scan.FindRepeats(dev, buf, out)
		elapsed = time.Since(start)
		if err != nil {
			return 0, 0, nil, err
		}
		output = device.Download(out, result)
	case OpCountRepeats:
		start := time.Now()
		result = scan.CountRepeats(dev, buf)
		elapsed = time.Since(start)
	}
	return elapsed, result, output, nil
}

func reference(op Op, input []int) (int, []int, error) {
	_, result, output, err := runOnce(device.NewSequential(device.WithName("reference")), op, input)
	return result, output, err
}
