package split

import (
	"errors"
	"fmt"
	"math"
)

// Mode identifies how a transaction's amount is divided among participants
type Mode string

const (
	ModeEqual      Mode = "equal"      // every participant owes the same fraction
	ModeUnequal    Mode = "unequal"    // values are absolute amounts summing to the total
	ModePercentage Mode = "percentage" // values are percentage points summing to 100
	ModeShares     Mode = "shares"     // values are relative weights
)

// Participant is one (person, value) entry of a split. The meaning of Value
// depends on the split mode; for "equal" it is ignored.
type Participant struct {
	PersonID string  `json:"personId"`
	Value    float64 `json:"value"`
}

// Result is the outcome of validating user-entered split values.
// Reason is a human-readable message surfaced verbatim by the caller.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func invalid(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

var (
	ErrUnknownMode      = errors.New("unknown split mode")
	ErrZeroShareWeights = errors.New("share weights sum to zero")
	ErrNegativeAmount   = errors.New("amounts cannot be negative")
)

// Strategy is the interface implemented by each split mode
type Strategy interface {
	// Mode returns the mode identifier for this strategy
	Mode() Mode

	// Validate checks user-entered values for internal consistency.
	// The common preconditions (positive amount, non-empty participants)
	// are checked by the package-level Validate before dispatch.
	Validate(amount float64, participants []Participant) Result

	// Shares computes the unrounded amount owed per participant.
	// Callers that need shares to sum exactly to the amount must use
	// Materialize instead.
	Shares(amount float64, participants []Participant) (map[string]float64, error)
}

// strategyFor returns the strategy implementation for the given mode
func strategyFor(mode Mode) (Strategy, error) {
	switch mode {
	case ModeEqual:
		return &EqualStrategy{}, nil
	case ModeUnequal:
		return &UnequalStrategy{}, nil
	case ModePercentage:
		return &PercentageStrategy{}, nil
	case ModeShares:
		return &SharesStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Validate checks whether the entered values are consistent for the mode.
// Preconditions are checked in order and the first failure wins. It never
// returns an error; bad data from untyped storage yields an invalid Result.
func Validate(mode Mode, amount float64, participants []Participant) Result {
	if amount <= 0 {
		return invalid("amount must be positive")
	}
	if len(participants) == 0 {
		return invalid("at least one participant required")
	}

	strategy, err := strategyFor(mode)
	if err != nil {
		return invalid("unknown split mode")
	}
	return strategy.Validate(amount, participants)
}

// Shares computes each participant's owed amount for a single transaction.
// A zero amount or empty participant list returns an empty map, not an error.
// Degenerate inputs (zero total weight, unknown mode) also return an empty
// map but additionally report a sentinel error so callers feeding dashboards
// can log the bad record instead of silently dropping it.
func Shares(mode Mode, amount float64, participants []Participant) (map[string]float64, error) {
	if amount == 0 || len(participants) == 0 {
		return map[string]float64{}, nil
	}

	strategy, err := strategyFor(mode)
	if err != nil {
		return map[string]float64{}, err
	}
	return strategy.Shares(amount, participants)
}

// Materialize converts a split into concrete rounded amounts guaranteed to
// sum to the transaction amount to the cent. Equal, percentage and shares
// modes compute raw shares and distribute the rounding remainder; unequal
// values are taken as entered, with any residual above one cent pushed
// entirely onto the first participant in list order. The residual policy is
// a compatibility choice: drift from user-entered exact amounts belongs to
// one visible person, not smeared across the group.
func Materialize(mode Mode, amount float64, participants []Participant) (map[string]float64, error) {
	if len(participants) == 0 {
		return map[string]float64{}, nil
	}

	if mode == ModeUnequal {
		return materializeUnequal(amount, participants), nil
	}

	shares, err := Shares(mode, amount, participants)
	if err != nil {
		return map[string]float64{}, err
	}
	if len(shares) == 0 {
		return map[string]float64{}, nil
	}

	// Distribute in participant order so remainder ties are deterministic
	raw := make([]float64, len(participants))
	for i, p := range participants {
		raw[i] = shares[p.PersonID]
	}

	rounded, err := Distribute(raw, amount)
	if err != nil {
		return map[string]float64{}, err
	}

	out := make(map[string]float64, len(participants))
	for i, p := range participants {
		out[p.PersonID] = rounded[i]
	}
	return out, nil
}

func materializeUnequal(amount float64, participants []Participant) map[string]float64 {
	out := make(map[string]float64, len(participants))
	var sum float64
	for _, p := range participants {
		out[p.PersonID] = p.Value
		sum += p.Value
	}

	residual := amount - sum
	if residual > 0.01 || residual < -0.01 {
		first := participants[0].PersonID
		out[first] = roundToCents(out[first] + residual)
	}
	return out
}

// roundToCents rounds a value to 2 decimal places
func roundToCents(value float64) float64 {
	return math.Round(value*100) / 100
}
