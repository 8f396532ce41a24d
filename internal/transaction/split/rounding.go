package split

import (
	"errors"
	"math"
	"sort"
)

// ErrRemainderOutOfRange reports raw amounts that do not add up to the
// target total within one cent per entry. Each truncation loses less than a
// cent, so under the caller contract the remainder is always within range.
var ErrRemainderOutOfRange = errors.New("rounding remainder out of range for input")

// Distribute converts fractional monetary amounts into integer-cent amounts
// that sum exactly to the rounded total, using largest-remainder allocation.
// Every raw amount is truncated to whole cents, then the lost cents are
// given back one at a time to the entries with the largest fractional
// remainders. Ties break in input order. Verified with integer-cent
// arithmetic throughout; the result is exact, not approximately equal.
//
// Negative totals or raw amounts are a caller bug and are rejected.
func Distribute(raw []float64, total float64) ([]float64, error) {
	if len(raw) == 0 {
		return []float64{}, nil
	}
	if total < 0 {
		return nil, ErrNegativeAmount
	}

	cents := make([]int64, len(raw))
	fractions := make([]float64, len(raw))
	var floored int64
	for i, r := range raw {
		if r < 0 {
			return nil, ErrNegativeAmount
		}
		scaled := r * 100
		cents[i] = int64(math.Floor(scaled))
		fractions[i] = scaled - math.Floor(scaled)
		floored += cents[i]
	}

	remainder := int64(math.Round(total*100)) - floored
	if remainder < 0 || remainder > int64(len(raw)) {
		return nil, ErrRemainderOutOfRange
	}

	// Indices with the largest fractional loss get the extra cents.
	// The stable sort keeps input order for equal fractions.
	order := make([]int, len(raw))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fractions[order[a]] > fractions[order[b]]
	})

	for i := int64(0); i < remainder; i++ {
		cents[order[i]]++
	}

	out := make([]float64, len(raw))
	for i, c := range cents {
		out[i] = float64(c) / 100
	}
	return out, nil
}
