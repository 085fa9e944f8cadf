package scan

import "github.com/exascience/parscan/device"

// Upsweep performs one level of the reduction tree over buf[0:p]: for every
// i that is a multiple of 2*stride and below p,
//
//	buf[i+2*stride-1] += buf[i+stride-1]
//
// It runs one worker per touched node and returns after all of them have
// terminated. p must be a power of two and stride a power of two below p.
func Upsweep(dev device.Device, buf []int, p, stride int) {
	twoStride := 2 * stride
	buf = buf[:p]
	dev.Launch(p/twoStride, func(low, high int) {
		for k := low; k < high; k++ {
			i := k * twoStride
			buf[i+twoStride-1] += buf[i+stride-1]
		}
	})
}

// ResetRoot clears the root of the reduction tree, buf[p-1], turning the
// completed up-sweep into the seed of the down-sweep.
func ResetRoot(buf []int, p int) {
	buf[p-1] = 0
}

// Downsweep performs one level of the propagation tree over buf[0:p]: for
// every i that is a multiple of 2*stride and below p, the left child
// receives the parent's value and the right child the parent's value plus
// the left child's old value.
//
// It runs one worker per touched node and returns after all of them have
// terminated. p must be a power of two and stride a power of two below p.
func Downsweep(dev device.Device, buf []int, p, stride int) {
	twoStride := 2 * stride
	buf = buf[:p]
	dev.Launch(p/twoStride, func(low, high int) {
		for k := low; k < high; k++ {
			i := k * twoStride
			left, right := i+stride-1, i+twoStride-1
			t := buf[left]
			buf[left] = buf[right]
			buf[right] += t
		}
	})
}

// sweep runs the whole scan over buf[0:p] in place and returns the value
// of the root before it was cleared. p must be a power of two >= 2.
func sweep(dev device.Device, buf []int, p int) (root int) {
	for stride := 1; stride < p; stride *= 2 {
		Upsweep(dev, buf, p, stride)
	}
	root = buf[p-1]
	ResetRoot(buf, p)
	for stride := p / 2; stride >= 1; stride /= 2 {
		Downsweep(dev, buf, p, stride)
	}
	return
}
