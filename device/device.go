/*
Package device models the compute surface that scan kernels run on.

A Device launches batches of lightweight workers over a range of worker
ids and owns a memory budget from which kernel buffers are allocated.
Every Launch and Reduce blocks until all of its workers have terminated,
and all writes of those workers happen before the call returns. This is
the barrier between consecutive tree levels of a scan.

Devices are explicit handles: the scan operations receive the device they
run on as a parameter, and there is no ambient global device state.
*/
package device

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/exascience/parscan/internal"
	"github.com/exascience/parscan/internal/logging"
	"github.com/exascience/parscan/internal/metrics"
	"github.com/exascience/parscan/parallel"
	"github.com/exascience/parscan/sequential"
)

// A Kernel processes the worker ids in the half-open interval [low, high).
// Workers of one launch must write pairwise disjoint locations.
type Kernel func(low, high int)

// A ReduceKernel processes the worker ids in [low, high) and returns a
// partial result. The partial results of one launch are summed.
type ReduceKernel func(low, high int) int

// Device is a compute surface.
type Device interface {
	// Info reports the properties of the device.
	Info() Info

	// Launch dispatches n workers with ids 0 to n-1 and returns when all
	// of them have terminated. Launch with n == 0 returns immediately.
	Launch(n int, kernel Kernel)

	// Reduce dispatches n workers like Launch and returns the sum of the
	// partial results.
	Reduce(n int, kernel ReduceKernel) int

	// Alloc returns a zeroed buffer of the given capacity in elements.
	Alloc(capacity int) ([]int, error)

	// Free returns the buffer's memory to the device budget.
	Free(buf []int)
}

// Kinds of devices understood by New.
const (
	KindParallel   = "parallel"
	KindSequential = "sequential"
)

// ErrUnknownKind is returned by New for an unsupported device kind.
var ErrUnknownKind = errors.New("unknown device kind")

type options struct {
	name        string
	batches     int
	memoryLimit int64
	logger      zerolog.Logger
}

// An Option configures a device created by NewParallel, NewSequential or New.
type Option func(*options)

// WithName sets the device name used in Info, logs and metrics labels.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithBatches sets the number of batches a launch is divided into. 0
// selects internal.DefaultBatches, twice GOMAXPROCS.
func WithBatches(batches int) Option {
	return func(o *options) { o.batches = batches }
}

// WithMemoryLimit bounds the bytes that may be allocated at the same time.
// 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) { o.memoryLimit = bytes }
}

// WithLogger sets the logger for allocation failures and diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(kind string, opts []Option) options {
	o := options{name: kind, logger: logging.DiscardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.batches < 0 {
		panic(fmt.Sprintf("invalid number of batches: %v", o.batches))
	}
	return o
}

// New creates a device of the given kind.
func New(kind string, opts ...Option) (Device, error) {
	switch strings.ToLower(kind) {
	case KindParallel:
		return NewParallel(opts...), nil
	case KindSequential:
		return NewSequential(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

type base struct {
	kind    string
	name    string
	batches int
	*Memory

	launches  prometheus.Counter
	workItems prometheus.Counter
}

func newBase(kind string, o options) base {
	return base{
		kind:      kind,
		name:      o.name,
		batches:   o.batches,
		Memory:    newMemory(o.name, o.memoryLimit, o.logger),
		launches:  metrics.KernelLaunchesTotal.WithLabelValues(o.name),
		workItems: metrics.KernelWorkItemsTotal.WithLabelValues(o.name),
	}
}

func (b *base) count(n int) {
	b.launches.Inc()
	b.workItems.Add(float64(n))
}

// Info implements the Device interface.
func (b *base) Info() Info {
	batches := b.batches
	if batches == 0 {
		batches = internal.DefaultBatches()
	}
	return Info{
		Name:        b.name,
		Kind:        b.kind,
		Workers:     runtime.GOMAXPROCS(0),
		LogicalCPUs: runtime.NumCPU(),
		Batches:     batches,
		MemoryLimit: b.Limit(),
		MemoryInUse: b.InUse(),
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Parallel is a device whose workers run in parallel goroutines.
type Parallel struct {
	base
}

// NewParallel returns a parallel device.
func NewParallel(opts ...Option) *Parallel {
	return &Parallel{newBase(KindParallel, buildOptions(KindParallel, opts))}
}

// Launch implements the Device interface.
func (d *Parallel) Launch(n int, kernel Kernel) {
	if n <= 0 {
		return
	}
	d.count(n)
	parallel.Range(0, n, d.batches, kernel)
}

// Reduce implements the Device interface.
func (d *Parallel) Reduce(n int, kernel ReduceKernel) int {
	if n <= 0 {
		return 0
	}
	d.count(n)
	return parallel.RangeReduceIntSum(0, n, d.batches, kernel)
}

// Sequential is a device that runs the batches of a launch one after the
// other in the calling goroutine, for testing and debugging.
type Sequential struct {
	base
}

// NewSequential returns a sequential device.
func NewSequential(opts ...Option) *Sequential {
	return &Sequential{newBase(KindSequential, buildOptions(KindSequential, opts))}
}

// Launch implements the Device interface.
func (d *Sequential) Launch(n int, kernel Kernel) {
	if n <= 0 {
		return
	}
	d.count(n)
	sequential.Range(0, n, d.batches, kernel)
}

// Reduce implements the Device interface.
func (d *Sequential) Reduce(n int, kernel ReduceKernel) int {
	if n <= 0 {
		return 0
	}
	d.count(n)
	return sequential.RangeReduceIntSum(0, n, d.batches, kernel)
}
