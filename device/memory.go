package device

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/exascience/parscan/internal/metrics"
)

// ElementSize is the size in bytes of one buffer element.
const ElementSize = bits.UintSize / 8

var (
	// ErrOutOfMemory is returned by Alloc when the allocation would exceed
	// the device's memory limit.
	ErrOutOfMemory = errors.New("device out of memory")

	// ErrInvalidCapacity is returned by Alloc for negative capacities.
	ErrInvalidCapacity = errors.New("invalid buffer capacity")
)

// Memory is the accountant of a device's compute memory. Buffers are
// ordinary Go slices; Memory tracks how many bytes are handed out and
// refuses allocations beyond the limit.
type Memory struct {
	name   string
	limit  int64
	logger zerolog.Logger
	gauge  prometheus.Gauge

	mutex sync.Mutex
	inUse int64
	live  map[*int]int64
}

func newMemory(name string, limit int64, logger zerolog.Logger) *Memory {
	return &Memory{
		name:   name,
		limit:  limit,
		logger: logger,
		gauge:  metrics.DeviceMemoryBytes.WithLabelValues(name),
		live:   make(map[*int]int64),
	}
}

// Limit returns the memory limit in bytes, or 0 if unlimited.
func (m *Memory) Limit() int64 {
	return m.limit
}

// InUse returns the number of bytes currently allocated.
func (m *Memory) InUse() int64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.inUse
}

// Alloc returns a zeroed buffer of length and capacity capacity.
func (m *Memory) Alloc(capacity int) ([]int, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if capacity == 0 {
		return []int{}, nil
	}
	size := int64(capacity) * ElementSize
	m.mutex.Lock()
	if m.limit > 0 && m.inUse+size > m.limit {
		available := m.limit - m.inUse
		m.mutex.Unlock()
		metrics.AllocFailuresTotal.WithLabelValues(m.name).Inc()
		m.logger.Warn().
			Str("device", m.name).
			Int64("requested", size).
			Int64("available", available).
			Msg("compute memory allocation refused")
		return nil, fmt.Errorf("%w: requested %d bytes, %d of %d available",
			ErrOutOfMemory, size, available, m.limit)
	}
	m.inUse += size
	m.gauge.Add(float64(size))
	m.mutex.Unlock()

	buf := make([]int, capacity)
	m.mutex.Lock()
	m.live[&buf[0]] = size
	m.mutex.Unlock()
	return buf, nil
}

// Free returns the memory of a buffer obtained from Alloc to the budget.
// Freeing a buffer twice, or a buffer not obtained from this Memory, has
// no effect. The buffer must not be used afterwards.
func (m *Memory) Free(buf []int) {
	if cap(buf) == 0 {
		return
	}
	key := &buf[:1][0]
	m.mutex.Lock()
	defer m.mutex.Unlock()
	size, ok := m.live[key]
	if !ok {
		return
	}
	delete(m.live, key)
	m.inUse -= size
	m.gauge.Sub(float64(size))
}
