package scan

import (
	"fmt"

	"github.com/exascience/parscan/device"
)

// FlagRepeats marks adjacent equal elements: flags[i] is 1 if input[i] ==
// input[i+1] and 0 otherwise, for i < len(input)-1. flags[len(input)-1]
// and the padding up to PowerOfTwoPad(len(input)) are set to 0, which
// makes the scanned flags end in the total number of repeats.
//
// The capacity of flags must be at least PowerOfTwoPad(len(input)), and
// flags must not overlap input.
func FlagRepeats(dev device.Device, input, flags []int) {
	n := len(input)
	p := PowerOfTwoPad(n)
	flags = flags[:p]
	dev.Launch(p, func(low, high int) {
		for i := low; i < high; i++ {
			if i < n-1 && input[i] == input[i+1] {
				flags[i] = 1
			} else {
				flags[i] = 0
			}
		}
	})
}

// FindRepeats writes the ascending indices i with input[i] == input[i+1]
// to output and returns how many there are. Only output[0:count] is
// meaningful afterwards; the capacity of output must be at least
// len(input).
//
// The flag and offset buffers are allocated from dev and freed before
// FindRepeats returns. If dev refuses an allocation, FindRepeats returns
// the error and leaves output untouched.
func FindRepeats(dev device.Device, input, output []int) (count int, err error) {
	n := len(input)
	if n <= 1 {
		return 0, nil
	}
	p := PowerOfTwoPad(n)
	output = output[:n]

	flags, err := dev.Alloc(p)
	if err != nil {
		return 0, fmt.Errorf("allocating repeat flags: %w", err)
	}
	defer dev.Free(flags)
	offsets, err := dev.Alloc(p)
	if err != nil {
		return 0, fmt.Errorf("allocating repeat offsets: %w", err)
	}
	defer dev.Free(offsets)

	FlagRepeats(dev, input, flags)
	ExclusiveScan(dev, flags, offsets)
	count = offsets[p-1]

	// flagged indices have strictly increasing offsets, so the writes are
	// disjoint
	dev.Launch(n, func(low, high int) {
		for i := low; i < high; i++ {
			if flags[i] == 1 {
				output[offsets[i]] = i
			}
		}
	})
	return count, nil
}

// CountRepeats returns the number of indices i with input[i] == input[i+1]
// without materializing them.
func CountRepeats(dev device.Device, input []int) int {
	n := len(input)
	if n <= 1 {
		return 0
	}
	return dev.Reduce(n-1, func(low, high int) (count int) {
		for i := low; i < high; i++ {
			if input[i] == input[i+1] {
				count++
			}
		}
		return
	})
}
