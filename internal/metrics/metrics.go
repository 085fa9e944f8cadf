// Package metrics holds the Prometheus collectors shared by the devices,
// the benchmark harness and the logger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// KernelLaunchesTotal counts kernel launches (one per tree level or
	// flag/scatter pass) by device.
	KernelLaunchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parscan_kernel_launches_total",
			Help: "Total number of kernel launches by device",
		},
		[]string{"device"},
	)

	// KernelWorkItemsTotal counts workers dispatched by device.
	KernelWorkItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parscan_kernel_work_items_total",
			Help: "Total number of workers dispatched by device",
		},
		[]string{"device"},
	)

	// DeviceMemoryBytes is the compute memory currently allocated per device.
	DeviceMemoryBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parscan_device_memory_bytes",
			Help: "Compute memory currently allocated by device",
		},
		[]string{"device"},
	)

	// AllocFailuresTotal counts allocations refused by the memory budget.
	AllocFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parscan_alloc_failures_total",
			Help: "Total number of refused compute memory allocations by device",
		},
		[]string{"device"},
	)

	// OperationDurationSeconds records timed core calls in the benchmark
	// harness.
	OperationDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parscan_operation_duration_seconds",
			Help:    "Duration of timed scan operations",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"operation", "device"},
	)

	// LogEntriesTotal counts log entries by level.
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parscan_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)
)
