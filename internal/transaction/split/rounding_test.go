package split

import (
	"errors"
	"math"
	"testing"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		raw     []float64
		total   float64
		want    []float64
		wantErr error
	}{
		{
			name:  "empty input gives empty output",
			raw:   []float64{},
			total: 0,
			want:  []float64{},
		},
		{
			name:  "already exact amounts pass through",
			raw:   []float64{10.00, 20.00, 70.00},
			total: 100.00,
			want:  []float64{10.00, 20.00, 70.00},
		},
		{
			name:  "three-way equal split distributes the lost cent",
			raw:   []float64{33.333333, 33.333333, 33.333333},
			total: 100.00,
			want:  []float64{33.34, 33.33, 33.33},
		},
		{
			name:  "largest fractional remainder gets the extra cent",
			raw:   []float64{10.002, 10.008},
			total: 20.01,
			want:  []float64{10.00, 10.01},
		},
		{
			name:  "ties break in input order",
			raw:   []float64{25.005, 25.005, 25.005, 25.005},
			total: 100.02,
			want:  []float64{25.01, 25.01, 25.00, 25.00},
		},
		{
			name:    "negative total rejected",
			raw:     []float64{10},
			total:   -10,
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "negative raw amount rejected",
			raw:     []float64{-5, 15},
			total:   10,
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "total far above raw sum is a contract violation",
			raw:     []float64{1.00, 1.00},
			total:   50.00,
			wantErr: ErrRemainderOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distribute(tt.raw, tt.total)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Distribute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Distribute() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Distribute() returned %d amounts, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Distribute()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The sum invariant is checked in integer cents, never with float equality.
func TestDistributeSumInvariant(t *testing.T) {
	inputs := []struct {
		raw   []float64
		total float64
	}{
		{[]float64{33.333333, 33.333333, 33.333333}, 100},
		{[]float64{14.285714, 14.285714, 14.285714, 14.285714, 14.285714, 14.285714, 14.285714}, 100},
		{[]float64{0.333333, 0.333333, 0.333333}, 1},
		{[]float64{24.999999, 75.000001}, 100},
		{[]float64{0, 0, 0}, 0},
	}

	for _, in := range inputs {
		got, err := Distribute(in.raw, in.total)
		if err != nil {
			t.Fatalf("Distribute(%v, %v) error: %v", in.raw, in.total, err)
		}
		var cents int64
		for _, v := range got {
			cents += int64(math.Round(v * 100))
		}
		if cents != int64(math.Round(in.total*100)) {
			t.Errorf("Distribute(%v, %v) sums to %d cents, want %d", in.raw, in.total, cents, int64(math.Round(in.total*100)))
		}
	}
}
