// Package parscan provides a work-efficient data-parallel exclusive prefix
// sum over integer arrays, and a stream compaction built on top of it that
// locates adjacent equal elements.
//
// The functions in this package are host-level conveniences: they copy
// their input into device memory, run the operation on a fresh parallel
// device, and copy the result back. Programs that run many operations, or
// want control over batching and memory limits, use the subpackages
// directly.
//
// parscan/scan provides the scan engine (up-sweep, root reset, down-sweep)
// and the find-repeats composition (flagging, scanning offsets, scatter).
//
// parscan/device provides the compute surface the kernels run on: parallel
// and sequential devices with a memory budget, host transfers, and a
// capability query.
//
// parscan/parallel and parscan/sequential provide the fork/join range
// functions that back the devices.
//
// parscan/sort provides a parallel quicksort for integer data.
//
// parscan/dataset reads and writes integer arrays as Arrow IPC streams,
// Parquet files, or text, and generates random inputs.
//
// parscan/bench times the operations on a device.
//
// The scan follows the balanced tree formulation described by Blelloch,
// see https://www.cs.cmu.edu/~guyb/papers/Ble93.pdf for background.
package parscan
