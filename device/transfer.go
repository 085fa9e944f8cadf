package device

import "fmt"

// Upload allocates a buffer of the given capacity on dev and copies host
// into its first len(host) elements. The remaining elements are zero.
// Upload fails if capacity < len(host) or if dev refuses the allocation.
func Upload(dev Device, host []int, capacity int) ([]int, error) {
	if capacity < len(host) {
		return nil, fmt.Errorf("%w: capacity %d below length %d", ErrInvalidCapacity, capacity, len(host))
	}
	buf, err := dev.Alloc(capacity)
	if err != nil {
		return nil, err
	}
	copy(buf, host)
	return buf, nil
}

// Download copies the first n elements of buf into a new host slice.
func Download(buf []int, n int) []int {
	host := make([]int, n)
	copy(host, buf[:n])
	return host
}
