package split

// SharesStrategy divides the amount by relative weights: each participant
// owes value / sum(values) of the total.
type SharesStrategy struct{}

// Mode returns the split mode identifier
func (s *SharesStrategy) Mode() Mode {
	return ModeShares
}

// Validate checks that the weights sum to something strictly positive
func (s *SharesStrategy) Validate(amount float64, participants []Participant) Result {
	if totalWeight(participants) <= 0 {
		return invalid("share weights must sum to more than zero")
	}
	return ok()
}

// Shares computes each participant's weighted, unrounded portion of the
// amount. A zero total weight is a data-integrity problem: the result is an
// empty map plus ErrZeroShareWeights so the caller can report it instead of
// dividing by zero or dropping the record silently.
func (s *SharesStrategy) Shares(amount float64, participants []Participant) (map[string]float64, error) {
	total := totalWeight(participants)
	if total == 0 {
		return map[string]float64{}, ErrZeroShareWeights
	}

	out := make(map[string]float64, len(participants))
	for _, p := range participants {
		out[p.PersonID] = amount * (p.Value / total)
	}
	return out, nil
}

func totalWeight(participants []Participant) float64 {
	var total float64
	for _, p := range participants {
		total += p.Value
	}
	return total
}
