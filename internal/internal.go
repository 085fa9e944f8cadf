// Package internal holds the batching and panic helpers shared by the
// parallel and sequential executors and the devices built on them.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// DefaultBatches is the number of batches a launch is divided into when
// no explicit count is configured.
func DefaultBatches() int {
	return 2 * runtime.GOMAXPROCS(0)
}

// ComputeNofBatches returns how many batches the worker range [low, high)
// is split into for a requested count n. n == 0 selects DefaultBatches.
// The result never exceeds the number of workers, and an empty range is
// a single empty batch.
func ComputeNofBatches(low, high, n int) int {
	workers := high - low
	if workers < 0 {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if n < 0 {
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	if workers == 0 {
		return 1
	}
	if n == 0 {
		n = DefaultBatches()
	}
	return min(n, workers)
}

// workerPanic keeps a recovered runtime.Error recognizable as one after
// the worker stack has been attached.
type workerPanic struct{ error }

func (workerPanic) RuntimeError() {}

// WrapPanic attaches the stack of the panicking worker to a recovered
// value so that the launching goroutine can re-panic with it. Errors stay
// errors and runtime errors stay runtime errors; any other value becomes
// a string. WrapPanic(nil) is nil.
func WrapPanic(p any) any {
	if p == nil {
		return nil
	}
	msg := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	switch p.(type) {
	case runtime.Error:
		return workerPanic{errors.New(msg)}
	case error:
		return errors.New(msg)
	default:
		return msg
	}
}
