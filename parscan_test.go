package parscan_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/parscan"
)

func Example() {
	values := []int{1, 2, 2, 3, 3, 3}

	sums, err := parscan.ExclusiveScan(values)
	if err != nil {
		fmt.Println(err)
		return
	}
	repeats, err := parscan.FindRepeats(values)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sums)
	fmt.Println(repeats, parscan.CountRepeats(values))

	// Output:
	// [0 1 3 5 8 11]
	// [1 3 4] 3
}

func TestTrivialInputs(t *testing.T) {
	for _, values := range [][]int{nil, {}, {5}} {
		sums, err := parscan.ExclusiveScan(values)
		require.NoError(t, err)
		assert.Len(t, sums, len(values))

		repeats, err := parscan.FindRepeats(values)
		require.NoError(t, err)
		assert.Empty(t, repeats)
		assert.Zero(t, parscan.CountRepeats(values))
	}

	sums, err := parscan.ExclusiveScan([]int{5})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, sums)
}

func TestInputUnchanged(t *testing.T) {
	values := []int{7, 7, 7, 7}
	sums, err := parscan.ExclusiveScan(values)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 7, 14, 21}, sums)
	assert.Equal(t, []int{7, 7, 7, 7}, values)
}
