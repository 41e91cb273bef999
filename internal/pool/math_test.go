package pool

import "testing"

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint64
		want    uint64
	}{
		{"small exact", 6, 10, 3, 20},
		{"truncates toward zero", 7, 3, 2, 10},
		{"wide intermediate", 10_000_000_000, 100_000_000_000, 99_991_000_000, 10_000_900_081},
		{"price scaling", 6_000_000, 1_500_000, 1_000_000, 9_000_000},
		{"quotient narrows to low bits", 1 << 63, 4, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv(tt.a, tt.b, tt.c); got != tt.want {
				t.Fatalf("mulDiv(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestMulWrap(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want uint64
	}{
		{"small", 123, 456, 56088},
		{"identity", 99_991_000_000, 1, 99_991_000_000},
		{"wraps to low bits", 1<<32 + 1, 1 << 32, 1 << 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulWrap(tt.a, tt.b); got != tt.want {
				t.Fatalf("mulWrap(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
