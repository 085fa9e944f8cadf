package sort

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func makeRandomSlice(size, limit int) []int {
	result := make([]int, size)
	for i := 0; i < size; i++ {
		result[i] = rand.Intn(limit)
	}
	return result
}

func TestSort(t *testing.T) {
	orgSlice := makeRandomSlice(100*0x600, 1000)
	s1 := make([]int, len(orgSlice))
	s2 := make([]int, len(orgSlice))
	copy(s1, orgSlice)
	copy(s2, orgSlice)

	sort.Ints(s1)

	t.Run("Ints", func(t *testing.T) {
		Ints(s2)
		if !reflect.DeepEqual(s1, s2) {
			t.Errorf("Parallel sort incorrect.")
		}
	})

	t.Run("IntsAreSorted", func(t *testing.T) {
		if !IntsAreSorted(s2) {
			t.Errorf("sorted slice reported as unsorted")
		}
		if IntsAreSorted(orgSlice) {
			t.Errorf("random slice reported as sorted")
		}
	})
}

func TestSortSmall(t *testing.T) {
	s := []int{5, 3, 3, 9, 1}
	Ints(s)
	if !reflect.DeepEqual(s, []int{1, 3, 3, 5, 9}) {
		t.Errorf("Ints = %v", s)
	}
}

func BenchmarkSort(b *testing.B) {
	orgSlice := makeRandomSlice(100*0x6000, 100*100*0x6000)
	s1 := make([]int, len(orgSlice))
	s2 := make([]int, len(orgSlice))

	b.Run("SequentialSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s1, orgSlice)
			b.StartTimer()
			sort.Ints(s1)
		}
	})

	b.Run("ParallelSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s2, orgSlice)
			b.StartTimer()
			Ints(s2)
		}
	})
}
