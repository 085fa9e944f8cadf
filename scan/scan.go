package scan

import "github.com/exascience/parscan/device"

// ExclusiveScan stores the exclusive prefix sums of input in result:
// result[i] is the sum of input[0:i] for every i < len(input).
//
// result may be input itself. Its capacity must be at least
// PowerOfTwoPad(len(input)); the elements of result between len(input)
// and that capacity are used as tree storage and hold unspecified values
// afterwards. Any other overlap of input and result is not supported.
//
// ExclusiveScan panics if the capacity of result is too small.
func ExclusiveScan(dev device.Device, input, result []int) {
	n := len(input)
	switch n {
	case 0:
		return
	case 1:
		result[:1][0] = 0
		return
	}
	p := PowerOfTwoPad(n)
	work := result[:p]
	load(dev, input, work)
	sweep(dev, work, p)
}

// ExclusiveScanTotal is ExclusiveScan that also returns the sum of all
// elements of input. The total is read from the tree root before it is
// cleared; the padding elements of result are zeroed first so that they do
// not contribute to it.
func ExclusiveScanTotal(dev device.Device, input, result []int) (total int) {
	n := len(input)
	switch n {
	case 0:
		return 0
	case 1:
		total = input[0]
		result[:1][0] = 0
		return
	}
	p := PowerOfTwoPad(n)
	work := result[:p]
	load(dev, input, work)
	zero(dev, work[n:])
	return sweep(dev, work, p)
}

// load copies input into the first len(input) elements of work unless both
// already start at the same element.
func load(dev device.Device, input, work []int) {
	n := len(input)
	if &input[0] == &work[0] {
		return
	}
	dev.Launch(n, func(low, high int) {
		copy(work[low:high], input[low:high])
	})
}

func zero(dev device.Device, buf []int) {
	dev.Launch(len(buf), func(low, high int) {
		for i := low; i < high; i++ {
			buf[i] = 0
		}
	})
}
