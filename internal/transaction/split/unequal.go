package split

import (
	"fmt"
	"math"
)

// UnequalStrategy takes participant values as absolute monetary amounts.
// The values must sum to the transaction amount.
type UnequalStrategy struct{}

// Mode returns the split mode identifier
func (s *UnequalStrategy) Mode() Mode {
	return ModeUnequal
}

// Validate checks that the entered amounts sum to the transaction amount
// within a one cent tolerance. The mismatch reason reports both the entered
// sum and the target so the caller can show it inline.
func (s *UnequalStrategy) Validate(amount float64, participants []Participant) Result {
	var sum float64
	for _, p := range participants {
		sum += p.Value
	}

	if math.Abs(sum-amount) > 0.01 {
		return invalid(fmt.Sprintf("amounts sum to %.2f but the transaction total is %.2f", sum, amount))
	}
	return ok()
}

// Shares returns each participant's recorded amount as-is, assuming the
// values were validated at entry time.
func (s *UnequalStrategy) Shares(amount float64, participants []Participant) (map[string]float64, error) {
	out := make(map[string]float64, len(participants))
	for _, p := range participants {
		out[p.PersonID] = p.Value
	}
	return out, nil
}
