package split

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func participants(entries ...Participant) []Participant {
	return entries
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		mode         Mode
		amount       float64
		participants []Participant
		wantValid    bool
		wantReason   []string // substrings the reason must contain
	}{
		{
			name:         "equal split with participants is valid",
			mode:         ModeEqual,
			amount:       50,
			participants: participants(Participant{PersonID: "p1"}, Participant{PersonID: "p2"}),
			wantValid:    true,
		},
		{
			name:         "zero amount fails before any mode check",
			mode:         ModeEqual,
			amount:       0,
			participants: participants(Participant{PersonID: "p1"}),
			wantValid:    false,
			wantReason:   []string{"amount must be positive"},
		},
		{
			name:         "empty participants fail after the amount check",
			mode:         ModeEqual,
			amount:       100,
			participants: nil,
			wantValid:    false,
			wantReason:   []string{"at least one participant required"},
		},
		{
			name:         "unequal amounts summing to the total are valid",
			mode:         ModeUnequal,
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 60}, Participant{PersonID: "p2", Value: 40}),
			wantValid:    true,
		},
		{
			name:         "unequal mismatch reports both sums",
			mode:         ModeUnequal,
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 60}, Participant{PersonID: "p2", Value: 50}),
			wantValid:    false,
			wantReason:   []string{"110.00", "100.00"},
		},
		{
			name:         "percentages summing to 100 are valid",
			mode:         ModePercentage,
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 30}, Participant{PersonID: "p2", Value: 70}),
			wantValid:    true,
		},
		{
			name:         "percentage mismatch reports the actual sum",
			mode:         ModePercentage,
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 30}, Participant{PersonID: "p2", Value: 60}),
			wantValid:    false,
			wantReason:   []string{"90.00"},
		},
		{
			name:         "percentage within tolerance is valid",
			mode:         ModePercentage,
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 33.33}, Participant{PersonID: "p2", Value: 33.33}, Participant{PersonID: "p3", Value: 33.34}),
			wantValid:    true,
		},
		{
			name:         "all-zero share weights are invalid",
			mode:         ModeShares,
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 0}, Participant{PersonID: "p2", Value: 0}),
			wantValid:    false,
		},
		{
			name:         "positive share weights are valid",
			mode:         ModeShares,
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 2}, Participant{PersonID: "p2", Value: 1}),
			wantValid:    true,
		},
		{
			name:         "unknown mode is rejected defensively",
			mode:         Mode("weighted"),
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 1}),
			wantValid:    false,
			wantReason:   []string{"unknown split mode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.mode, tt.amount, tt.participants)
			if got.Valid != tt.wantValid {
				t.Fatalf("Validate() = %+v, want valid %v", got, tt.wantValid)
			}
			for _, sub := range tt.wantReason {
				if !strings.Contains(got.Reason, sub) {
					t.Errorf("Validate() reason %q does not contain %q", got.Reason, sub)
				}
			}
		})
	}
}

func TestShares(t *testing.T) {
	tests := []struct {
		name         string
		mode         Mode
		amount       float64
		participants []Participant
		wantErr      error
		validateFunc func(t *testing.T, shares map[string]float64)
	}{
		{
			name:         "zero amount returns an empty map",
			mode:         ModeEqual,
			amount:       0,
			participants: participants(Participant{PersonID: "p1"}),
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if len(shares) != 0 {
					t.Errorf("expected empty map, got %v", shares)
				}
			},
		},
		{
			name:         "empty participants return an empty map",
			mode:         ModeEqual,
			amount:       100,
			participants: nil,
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if len(shares) != 0 {
					t.Errorf("expected empty map, got %v", shares)
				}
			},
		},
		{
			name:         "equal split divides evenly",
			mode:         ModeEqual,
			amount:       90,
			participants: participants(Participant{PersonID: "p1"}, Participant{PersonID: "p2"}, Participant{PersonID: "p3"}),
			validateFunc: func(t *testing.T, shares map[string]float64) {
				for _, id := range []string{"p1", "p2", "p3"} {
					if math.Abs(shares[id]-30) > 0.01 {
						t.Errorf("%s share = %v, want 30", id, shares[id])
					}
				}
			},
		},
		{
			name:   "percentage split is exact for whole percentages",
			mode:   ModePercentage,
			amount: 100,
			participants: participants(
				Participant{PersonID: "p1", Value: 30},
				Participant{PersonID: "p2", Value: 70},
			),
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if math.Abs(shares["p1"]-30) > 0.001 {
					t.Errorf("p1 share = %v, want 30", shares["p1"])
				}
				if math.Abs(shares["p2"]-70) > 0.001 {
					t.Errorf("p2 share = %v, want 70", shares["p2"])
				}
			},
		},
		{
			name:   "unequal split returns recorded values",
			mode:   ModeUnequal,
			amount: 100,
			participants: participants(
				Participant{PersonID: "p1", Value: 60},
				Participant{PersonID: "p2", Value: 40},
			),
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if shares["p1"] != 60 || shares["p2"] != 40 {
					t.Errorf("shares = %v, want p1=60 p2=40", shares)
				}
			},
		},
		{
			name:   "shares split is proportional to weights",
			mode:   ModeShares,
			amount: 90,
			participants: participants(
				Participant{PersonID: "p1", Value: 2},
				Participant{PersonID: "p2", Value: 1},
			),
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if math.Abs(shares["p1"]-60) > 0.01 {
					t.Errorf("p1 share = %v, want 60", shares["p1"])
				}
				if math.Abs(shares["p2"]-30) > 0.01 {
					t.Errorf("p2 share = %v, want 30", shares["p2"])
				}
			},
		},
		{
			name:   "zero total weight reports a sentinel error",
			mode:   ModeShares,
			amount: 100,
			participants: participants(
				Participant{PersonID: "p1", Value: 0},
				Participant{PersonID: "p2", Value: 0},
			),
			wantErr: ErrZeroShareWeights,
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if len(shares) != 0 {
					t.Errorf("expected empty map alongside the error, got %v", shares)
				}
			},
		},
		{
			name:         "unknown mode reports a sentinel error",
			mode:         Mode("itemized"),
			amount:       100,
			participants: participants(Participant{PersonID: "p1", Value: 1}),
			wantErr:      ErrUnknownMode,
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if len(shares) != 0 {
					t.Errorf("expected empty map alongside the error, got %v", shares)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Shares(tt.mode, tt.amount, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Shares() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Shares() unexpected error: %v", err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, shares)
			}
		})
	}
}

func sumCents(shares map[string]float64) int64 {
	var cents int64
	for _, v := range shares {
		cents += int64(math.Round(v * 100))
	}
	return cents
}

func TestMaterializeSumInvariant(t *testing.T) {
	cases := []struct {
		name         string
		mode         Mode
		amount       float64
		participants []Participant
	}{
		{
			name:   "equal three ways",
			mode:   ModeEqual,
			amount: 100,
			participants: participants(
				Participant{PersonID: "p1"},
				Participant{PersonID: "p2"},
				Participant{PersonID: "p3"},
			),
		},
		{
			name:   "equal seven ways",
			mode:   ModeEqual,
			amount: 100,
			participants: participants(
				Participant{PersonID: "p1"}, Participant{PersonID: "p2"},
				Participant{PersonID: "p3"}, Participant{PersonID: "p4"},
				Participant{PersonID: "p5"}, Participant{PersonID: "p6"},
				Participant{PersonID: "p7"},
			),
		},
		{
			name:   "odd percentages",
			mode:   ModePercentage,
			amount: 99.99,
			participants: participants(
				Participant{PersonID: "p1", Value: 33.33},
				Participant{PersonID: "p2", Value: 33.33},
				Participant{PersonID: "p3", Value: 33.34},
			),
		},
		{
			name:   "uneven share weights",
			mode:   ModeShares,
			amount: 250,
			participants: participants(
				Participant{PersonID: "p1", Value: 3},
				Participant{PersonID: "p2", Value: 2},
				Participant{PersonID: "p3", Value: 2},
			),
		},
		{
			name:   "exact unequal amounts",
			mode:   ModeUnequal,
			amount: 100,
			participants: participants(
				Participant{PersonID: "p1", Value: 60},
				Participant{PersonID: "p2", Value: 40},
			),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if res := Validate(tt.mode, tt.amount, tt.participants); !res.Valid {
				t.Fatalf("test case is not a valid split: %s", res.Reason)
			}

			shares, err := Materialize(tt.mode, tt.amount, tt.participants)
			if err != nil {
				t.Fatalf("Materialize() error: %v", err)
			}
			if got, want := sumCents(shares), int64(math.Round(tt.amount*100)); got != want {
				t.Errorf("materialized shares sum to %d cents, want %d", got, want)
			}
		})
	}
}

// For equal splits, every materialized share stays within one cent of the
// ideal amount/N and no two participants differ by more than one cent.
func TestMaterializeEqualFairness(t *testing.T) {
	for n := 1; n <= 9; n++ {
		parts := make([]Participant, n)
		for i := range parts {
			parts[i] = Participant{PersonID: string(rune('a' + i))}
		}

		shares, err := Materialize(ModeEqual, 100, parts)
		if err != nil {
			t.Fatalf("Materialize() error for n=%d: %v", n, err)
		}

		ideal := 100.0 / float64(n)
		min, max := math.Inf(1), math.Inf(-1)
		for id, v := range shares {
			if math.Abs(v-ideal) > 0.01 {
				t.Errorf("n=%d: %s share %v is more than a cent from ideal %v", n, id, v, ideal)
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		if max-min > 0.0100001 {
			t.Errorf("n=%d: share spread %v exceeds one cent", n, max-min)
		}
	}
}

func TestMaterializeSharesProportionality(t *testing.T) {
	parts := participants(
		Participant{PersonID: "p1", Value: 5},
		Participant{PersonID: "p2", Value: 3},
		Participant{PersonID: "p3", Value: 2},
	)

	shares, err := Materialize(ModeShares, 200, parts)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	// Ideal amounts are 100/60/40; rounding may move each by at most a cent.
	wants := map[string]float64{"p1": 100, "p2": 60, "p3": 40}
	for id, want := range wants {
		if math.Abs(shares[id]-want) > 0.01 {
			t.Errorf("%s share = %v, want within a cent of %v", id, shares[id], want)
		}
	}
}

func TestMaterializeUnequalResidualPolicy(t *testing.T) {
	// Recorded values fall short of the total by more than a cent; the whole
	// residual lands on the first participant in list order.
	shares, err := Materialize(ModeUnequal, 100, participants(
		Participant{PersonID: "p1", Value: 50},
		Participant{PersonID: "p2", Value: 49.50},
	))
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	if shares["p1"] != 50.50 {
		t.Errorf("p1 share = %v, want 50.50 (residual pushed to first participant)", shares["p1"])
	}
	if shares["p2"] != 49.50 {
		t.Errorf("p2 share = %v, want unchanged 49.50", shares["p2"])
	}

	// Within-tolerance drift is left alone.
	shares, err = Materialize(ModeUnequal, 100, participants(
		Participant{PersonID: "p1", Value: 60},
		Participant{PersonID: "p2", Value: 40.005},
	))
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	if shares["p1"] != 60 {
		t.Errorf("p1 share = %v, want 60 for sub-cent drift", shares["p1"])
	}
}

func TestMaterializeEmptyAndDegenerate(t *testing.T) {
	if shares, err := Materialize(ModeEqual, 100, nil); err != nil || len(shares) != 0 {
		t.Errorf("Materialize(empty) = %v, %v; want empty map, nil", shares, err)
	}

	_, err := Materialize(ModeShares, 100, participants(
		Participant{PersonID: "p1", Value: 0},
	))
	if !errors.Is(err, ErrZeroShareWeights) {
		t.Errorf("Materialize(zero weights) error = %v, want ErrZeroShareWeights", err)
	}
}

// Calling the core functions twice with identical input must produce
// identical output: no hidden state, no randomness, no time dependence.
func TestDeterminism(t *testing.T) {
	parts := participants(
		Participant{PersonID: "p1", Value: 33.33},
		Participant{PersonID: "p2", Value: 33.33},
		Participant{PersonID: "p3", Value: 33.34},
	)

	first, err := Materialize(ModePercentage, 99.99, parts)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	second, err := Materialize(ModePercentage, 99.99, parts)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	for id, v := range first {
		if second[id] != v {
			t.Errorf("%s share differs between identical calls: %v vs %v", id, v, second[id])
		}
	}

	r1 := Validate(ModePercentage, 99.99, parts)
	r2 := Validate(ModePercentage, 99.99, parts)
	if r1 != r2 {
		t.Errorf("Validate() differs between identical calls: %+v vs %+v", r1, r2)
	}
}
