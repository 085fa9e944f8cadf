package scan

import "testing"

func TestPowerOfTwoPad(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative pads to one", -3, 1},
		{"zero pads to one", 0, 1},
		{"one is a power of two", 1, 1},
		{"two is a power of two", 2, 2},
		{"three pads to four", 3, 4},
		{"six pads to eight", 6, 8},
		{"1024 is a power of two", 1024, 1024},
		{"1025 pads to 2048", 1025, 2048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PowerOfTwoPad(tt.n); got != tt.want {
				t.Errorf("PowerOfTwoPad(%v) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestPowerOfTwoPadBounds(t *testing.T) {
	for n := 1; n < 5000; n++ {
		p := PowerOfTwoPad(n)
		if p&(p-1) != 0 || p < n || (p > 1 && p/2 >= n) {
			t.Fatalf("PowerOfTwoPad(%v) = %v", n, p)
		}
	}
}
