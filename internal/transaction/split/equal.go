package split

// EqualStrategy divides the amount evenly among all participants.
// Participant values are ignored for this mode.
type EqualStrategy struct{}

// Mode returns the split mode identifier
func (s *EqualStrategy) Mode() Mode {
	return ModeEqual
}

// Validate accepts any non-empty participant list; presence is sufficient
// because the values carry no meaning for an equal split.
func (s *EqualStrategy) Validate(amount float64, participants []Participant) Result {
	return ok()
}

// Shares gives every participant an equal, unrounded fraction of the amount
func (s *EqualStrategy) Shares(amount float64, participants []Participant) (map[string]float64, error) {
	perPerson := amount / float64(len(participants))

	out := make(map[string]float64, len(participants))
	for _, p := range participants {
		out[p.PersonID] = perPerson
	}
	return out, nil
}
