package sort

import (
	"sort"

	"github.com/exascience/parscan/parallel"
)

// Ranges below this size are handed to SequentialSort.
const qsortGrainSize = 0x500

// A Sorter can be sorted by Sort in this package. Ranges of its elements
// must be addressable by integer indices.
type Sorter interface {
	SequentialSorter
	sort.Interface
}

func medianOfThree(data sort.Interface, l, m, r int) int {
	if data.Less(l, m) {
		if data.Less(m, r) {
			return m
		} else if data.Less(l, r) {
			return r
		}
	} else if data.Less(r, m) {
		return m
	} else if data.Less(r, l) {
		return r
	}
	return l
}

func pseudoMedianOfNine(data sort.Interface, index, size int) int {
	offset := size / 8
	return medianOfThree(data,
		medianOfThree(data, index, index+offset, index+offset*2),
		medianOfThree(data, index+offset*3, index+offset*4, index+offset*5),
		medianOfThree(data, index+offset*6, index+offset*7, index+size-1),
	)
}

// partition moves the pivot to its final position within
// [index, index+size) and returns that position. Elements equal to the
// pivot may end up on either side.
func partition(data sort.Interface, index, size int) int {
	if m := pseudoMedianOfNine(data, index, size); m > index {
		data.Swap(index, m)
	}
	i, j := index, index+size
	for {
		for {
			j--
			if !data.Less(index, j) {
				break
			}
		}
		for {
			if i == j {
				data.Swap(j, index)
				return j
			}
			i++
			if !data.Less(i, index) {
				break
			}
		}
		if i == j {
			data.Swap(j, index)
			return j
		}
		data.Swap(i, j)
	}
}

// Sort uses a parallel quicksort implementation. Both halves of every
// partition step are sorted in parallel.
//
// It is good for small core counts and small collection sizes.
func Sort(data Sorter) {
	size := data.Len()
	if size < qsortGrainSize {
		data.SequentialSort(0, size)
		return
	}
	var pSort func(int, int)
	pSort = func(index, size int) {
		if size < qsortGrainSize {
			data.SequentialSort(index, index+size)
			return
		}
		j := partition(data, index, size)
		parallel.Do(
			func() { pSort(index, j-index) },
			func() { pSort(j+1, index+size-j-1) },
		)
	}
	if !IsSorted(data) {
		pSort(0, size)
	}
}
