package parscan

import (
	"github.com/exascience/parscan/device"
	"github.com/exascience/parscan/scan"
)

// ExclusiveScan returns the exclusive prefix sums of values: element i of
// the result is the sum of values[0:i].
func ExclusiveScan(values []int) ([]int, error) {
	dev := device.NewParallel()
	n := len(values)
	buf, err := device.Upload(dev, values, scan.PowerOfTwoPad(n))
	if err != nil {
		return nil, err
	}
	defer dev.Free(buf)
	scan.ExclusiveScan(dev, buf[:n], buf)
	return device.Download(buf, n), nil
}

// FindRepeats returns, in increasing order, the indices i with
// values[i] == values[i+1].
func FindRepeats(values []int) ([]int, error) {
	dev := device.NewParallel()
	n := len(values)
	buf, err := device.Upload(dev, values, n)
	if err != nil {
		return nil, err
	}
	defer dev.Free(buf)
	out, err := dev.Alloc(n)
	if err != nil {
		return nil, err
	}
	defer dev.Free(out)
	count, err := scan.FindRepeats(dev, buf, out)
	if err != nil {
		return nil, err
	}
	return device.Download(out, count), nil
}

// CountRepeats returns the number of indices i with values[i] == values[i+1].
func CountRepeats(values []int) int {
	return scan.CountRepeats(device.NewParallel(), values)
}
