/*
Package sort provides a parallel quicksort for integer data, used to
produce sorted, repeat-heavy inputs for find-repeats workloads.
*/
package sort

import (
	"sort"

	"github.com/exascience/parscan/parallel"
)

/*
SequentialSorter is a type, typically a collection, that can be
sequentially sorted. This is needed as a base case for the parallel
sorting algorithm in this package.
*/
type SequentialSorter interface {
	// Sort the range that starts at index i and ends at index j. If the
	// collection that is represented by this interface is a slice, then
	// the slice expression collection[i:j] returns the correct slice to
	// be sorted.
	SequentialSort(i, j int)
}

/*
IsSorted determines in parallel whether data is already sorted. Every
batch stops at its first inversion.
*/
func IsSorted(data sort.Interface) bool {
	size := data.Len()
	if size < qsortGrainSize {
		return sort.IsSorted(data)
	}
	inversions := parallel.RangeReduceIntSum(1, size, 0, func(low, high int) int {
		for i := low; i < high; i++ {
			if data.Less(i, i-1) {
				return 1
			}
		}
		return 0
	})
	return inversions == 0
}

// IntSlice attaches the methods of sort.Interface, SequentialSorter,
// and Sorter to []int, sorting in increasing order.
type IntSlice []int

// SequentialSort implements the method of the SequentialSorter interface.
func (s IntSlice) SequentialSort(i, j int) {
	sort.Ints(s[i:j])
}

func (s IntSlice) Len() int {
	return len(s)
}

func (s IntSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s IntSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Ints sorts a slice of ints in increasing order, in parallel.
func Ints(a []int) {
	Sort(IntSlice(a))
}

// IntsAreSorted determines in parallel whether a slice of ints is
// already sorted in increasing order.
func IntsAreSorted(a []int) bool {
	return IsSorted(IntSlice(a))
}
