package internal

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultBatches(t *testing.T) {
	if got, want := DefaultBatches(), 2*runtime.GOMAXPROCS(0); got != want {
		t.Errorf("DefaultBatches() = %v, want %v", got, want)
	}
}

func TestComputeNofBatches(t *testing.T) {
	tests := []struct {
		name         string
		low, high, n int
		want         int
	}{
		{"empty range", 3, 3, 5, 1},
		{"explicit batches", 0, 100, 7, 7},
		{"more batches than workers", 0, 4, 16, 4},
		{"default batches", 0, 1 << 20, 0, DefaultBatches()},
		{"default clamped to workers", 10, 11, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeNofBatches(tt.low, tt.high, tt.n); got != tt.want {
				t.Errorf("ComputeNofBatches(%v, %v, %v) = %v, want %v", tt.low, tt.high, tt.n, got, tt.want)
			}
		})
	}
}

func TestComputeNofBatchesPanics(t *testing.T) {
	for _, args := range [][3]int{{5, 4, 0}, {0, 10, -1}, {0, 0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ComputeNofBatches%v did not panic", args)
				}
			}()
			ComputeNofBatches(args[0], args[1], args[2])
		}()
	}
}

func TestWrapPanic(t *testing.T) {
	if WrapPanic(nil) != nil {
		t.Error("WrapPanic(nil) != nil")
	}
	if s, ok := WrapPanic("boom").(string); !ok || !strings.HasPrefix(s, "boom\n") {
		t.Errorf("WrapPanic(string) = %v", s)
	}
	err, ok := WrapPanic(errors.New("boom")).(error)
	if !ok {
		t.Fatal("WrapPanic(error) is not an error")
	}
	if _, isRuntime := err.(runtime.Error); isRuntime {
		t.Error("WrapPanic(error) became a runtime.Error")
	}
	var re runtime.Error
	func() {
		defer func() { re, _ = recover().(runtime.Error) }()
		var s []int
		_ = s[1]
	}()
	if re == nil {
		t.Fatal("expected an index out of range runtime.Error")
	}
	if _, ok := WrapPanic(re).(runtime.Error); !ok {
		t.Error("WrapPanic(runtime.Error) is not a runtime.Error")
	}
}
