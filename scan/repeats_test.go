package scan

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/parscan/device"
)

func referenceRepeats(values []int) []int {
	result := []int{}
	for i := 0; i+1 < len(values); i++ {
		if values[i] == values[i+1] {
			result = append(result, i)
		}
	}
	return result
}

func TestFlagRepeats(t *testing.T) {
	dev := device.NewParallel()
	input := []int{1, 2, 2, 3, 3, 3}
	flags := padded(make([]int, 6), 5)[:8]
	FlagRepeats(dev, input, flags)
	assert.Equal(t, []int{0, 1, 0, 1, 1, 0, 0, 0}, flags)

	flags = make([]int, 1)
	FlagRepeats(dev, []int{4}, flags)
	assert.Equal(t, []int{0}, flags)
}

func TestFindRepeatsScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"mixed runs", []int{1, 2, 2, 3, 3, 3}, []int{1, 3, 4}},
		{"single element", []int{5}, []int{}},
		{"empty", []int{}, []int{}},
		{"all equal", []int{7, 7, 7, 7}, []int{0, 1, 2}},
		{"no repeats", []int{1, 2, 3, 4, 5}, []int{}},
		{"repeat at the end", []int{1, 2, 3, 3}, []int{2}},
		{"equal but not adjacent", []int{1, 2, 1, 2}, []int{}},
	}
	for _, dev := range testDevices() {
		for _, tt := range tests {
			t.Run(dev.Info().Name+"/"+tt.name, func(t *testing.T) {
				output := make([]int, len(tt.input))
				count, err := FindRepeats(dev, tt.input, output)
				require.NoError(t, err)
				assert.Equal(t, len(tt.want), count)
				assert.Equal(t, tt.want, output[:count])
				assert.Equal(t, len(tt.want), CountRepeats(dev, tt.input))
			})
		}
	}
}

func TestFindRepeatsRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for _, dev := range testDevices() {
		for _, n := range []int{2, 3, 17, 64, 999, 5000} {
			t.Run(fmt.Sprintf("%s/n=%d", dev.Info().Name, n), func(t *testing.T) {
				values := randomValues(rnd, n, 2)
				output := make([]int, n)
				count, err := FindRepeats(dev, values, output)
				require.NoError(t, err)
				want := referenceRepeats(values)
				require.Equal(t, len(want), count)
				require.Equal(t, want, output[:count])
				require.Equal(t, count, CountRepeats(dev, values))
			})
		}
	}
}

func TestFindRepeatsReleasesMemory(t *testing.T) {
	dev := device.NewParallel(device.WithName("repeats-release"))
	input := []int{3, 3, 1, 1, 1, 2}
	output := make([]int, len(input))
	_, err := FindRepeats(dev, input, output)
	require.NoError(t, err)
	assert.Zero(t, dev.Info().MemoryInUse)
}

func TestFindRepeatsOutOfMemory(t *testing.T) {
	// room for the flags of 6 elements but not for the offsets
	dev := device.NewSequential(
		device.WithName("repeats-oom"),
		device.WithMemoryLimit(12*device.ElementSize),
	)
	input := []int{1, 2, 2, 3, 3, 3}
	output := []int{-1, -1, -1, -1, -1, -1}
	count, err := FindRepeats(dev, input, output)
	require.ErrorIs(t, err, device.ErrOutOfMemory)
	assert.Zero(t, count)
	assert.Equal(t, []int{-1, -1, -1, -1, -1, -1}, output)
	assert.Zero(t, dev.InUse())

	// trivial inputs allocate nothing
	count, err = FindRepeats(dev, []int{4}, output)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func ExampleFindRepeats() {
	dev := device.NewParallel()
	input := []int{1, 2, 2, 3, 3, 3}
	output := make([]int, len(input))
	count, err := FindRepeats(dev, input, output)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(count, output[:count])

	// Output:
	// 3 [1 3 4]
}

func BenchmarkFindRepeats(b *testing.B) {
	const n = 1 << 20
	values := randomValues(rand.New(rand.NewSource(1)), n, 4)
	output := make([]int, n)

	for _, dev := range []device.Device{device.NewSequential(), device.NewParallel()} {
		b.Run(dev.Info().Kind, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := FindRepeats(dev, values, output); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
