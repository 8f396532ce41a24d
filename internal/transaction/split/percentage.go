package split

import (
	"fmt"
	"math"
)

// PercentageStrategy divides the amount by participant percentage points.
// The percentages must sum to 100.
type PercentageStrategy struct{}

// Mode returns the split mode identifier
func (s *PercentageStrategy) Mode() Mode {
	return ModePercentage
}

// Validate checks that the entered percentages sum to 100 within a 0.01
// tolerance, reporting the actual sum on mismatch.
func (s *PercentageStrategy) Validate(amount float64, participants []Participant) Result {
	var sum float64
	for _, p := range participants {
		sum += p.Value
	}

	if math.Abs(sum-100) > 0.01 {
		return invalid(fmt.Sprintf("percentages sum to %.2f, must sum to 100", sum))
	}
	return ok()
}

// Shares computes each participant's unrounded percentage of the amount
func (s *PercentageStrategy) Shares(amount float64, participants []Participant) (map[string]float64, error) {
	out := make(map[string]float64, len(participants))
	for _, p := range participants {
		out[p.PersonID] = amount * (p.Value / 100)
	}
	return out, nil
}
