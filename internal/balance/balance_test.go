package balance

import (
	"math"
	"testing"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction/split"
)

func expense(id, groupID, payer string, amount float64, mode split.Mode, parts ...split.Participant) transaction.Transaction {
	return transaction.Transaction{
		ID:       id,
		GroupID:  groupID,
		Amount:   amount,
		PaidByID: payer,
		Type:     transaction.TypeExpense,
		Split:    transaction.Split{Mode: mode, Participants: parts},
	}
}

func settlement(id, groupID, payer, receiver string, amount float64) transaction.Transaction {
	return transaction.Transaction{
		ID:       id,
		GroupID:  groupID,
		Amount:   amount,
		PaidByID: payer,
		Type:     transaction.TypeSettlement,
		Split: transaction.Split{
			Mode: split.ModeUnequal,
			Participants: []split.Participant{
				{PersonID: payer, Value: 0},
				{PersonID: receiver, Value: amount},
			},
		},
	}
}

func TestGroupBalances(t *testing.T) {
	tests := []struct {
		name string
		txs  []transaction.Transaction
		want map[string]float64
	}{
		{
			name: "no transactions yields no balances",
			txs:  nil,
			want: map[string]float64{},
		},
		{
			name: "expense plus partial settlement",
			txs: []transaction.Transaction{
				expense("t1", "g1", "alice", 3000, split.ModeEqual,
					split.Participant{PersonID: "alice"},
					split.Participant{PersonID: "bob"},
				),
				settlement("t2", "g1", "bob", "alice", 1000),
			},
			want: map[string]float64{"alice": 500, "bob": -500},
		},
		{
			name: "three-way percentage expense",
			txs: []transaction.Transaction{
				expense("t1", "g1", "carol", 200, split.ModePercentage,
					split.Participant{PersonID: "alice", Value: 25},
					split.Participant{PersonID: "bob", Value: 25},
					split.Participant{PersonID: "carol", Value: 50},
				),
			},
			want: map[string]float64{"alice": -50, "bob": -50, "carol": 100},
		},
		{
			name: "multi-payer expense credits each payer",
			txs: []transaction.Transaction{
				{
					ID:      "t1",
					GroupID: "g1",
					Amount:  100,
					Payers: []transaction.PayerEntry{
						{PersonID: "alice", Amount: 70},
						{PersonID: "bob", Amount: 30},
					},
					Type: transaction.TypeExpense,
					Split: transaction.Split{
						Mode: split.ModeEqual,
						Participants: []split.Participant{
							{PersonID: "alice"},
							{PersonID: "bob"},
						},
					},
				},
			},
			want: map[string]float64{"alice": 20, "bob": -20},
		},
		{
			name: "degenerate split contributes zero instead of failing the fold",
			txs: []transaction.Transaction{
				expense("t1", "g1", "alice", 100, split.ModeShares,
					split.Participant{PersonID: "alice", Value: 0},
					split.Participant{PersonID: "bob", Value: 0},
				),
				expense("t2", "g1", "alice", 50, split.ModeEqual,
					split.Participant{PersonID: "alice"},
					split.Participant{PersonID: "bob"},
				),
			},
			want: map[string]float64{"alice": 25, "bob": -25},
		},
		{
			name: "unknown mode from untyped storage contributes zero",
			txs: []transaction.Transaction{
				expense("t1", "g1", "alice", 100, split.Mode("itemized"),
					split.Participant{PersonID: "bob", Value: 100},
				),
			},
			want: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupBalances(tt.txs)
			if len(got) != len(tt.want) {
				t.Fatalf("GroupBalances() = %v, want %v", got, tt.want)
			}
			for person, want := range tt.want {
				if math.Abs(got[person]-want) > 0.01 {
					t.Errorf("net[%s] = %v, want %v", person, got[person], want)
				}
			}
		})
	}
}

func TestGroupBalancesSumToZero(t *testing.T) {
	txs := []transaction.Transaction{
		expense("t1", "g1", "alice", 90.01, split.ModeEqual,
			split.Participant{PersonID: "alice"},
			split.Participant{PersonID: "bob"},
			split.Participant{PersonID: "carol"},
		),
		expense("t2", "g1", "bob", 45.50, split.ModeShares,
			split.Participant{PersonID: "alice", Value: 2},
			split.Participant{PersonID: "bob", Value: 1},
		),
		settlement("t3", "g1", "carol", "alice", 10),
	}

	var total float64
	for _, v := range GroupBalances(txs) {
		total += v
	}
	if math.Abs(total) > 0.001 {
		t.Errorf("group net balances sum to %v, want 0", total)
	}
}

func TestPersonSummary(t *testing.T) {
	txs := []transaction.Transaction{
		expense("t1", "g1", "alice", 3000, split.ModeEqual,
			split.Participant{PersonID: "alice"},
			split.Participant{PersonID: "bob"},
		),
		settlement("t2", "g1", "bob", "alice", 1000),
	}

	alice := PersonSummary(txs, "alice")
	if math.Abs(alice.Net()-500) > 0.01 {
		t.Errorf("alice net = %v, want 500", alice.Net())
	}
	if math.Abs(alice.Owed-1500) > 0.01 {
		t.Errorf("alice owed = %v, want 1500", alice.Owed)
	}
	if math.Abs(alice.Owes-1000) > 0.01 {
		t.Errorf("alice owes = %v, want 1000", alice.Owes)
	}

	bob := PersonSummary(txs, "bob")
	if math.Abs(bob.Net()+500) > 0.01 {
		t.Errorf("bob net = %v, want -500", bob.Net())
	}

	// A person who appears in no transaction has an empty summary.
	carol := PersonSummary(txs, "carol")
	if carol.Owed != 0 || carol.Owes != 0 {
		t.Errorf("carol summary = %+v, want zeros", carol)
	}
}

// Balances aggregate across groups with no currency awareness: the fold
// simply sums whatever amounts it is handed.
func TestPersonSummaryAcrossGroups(t *testing.T) {
	txs := []transaction.Transaction{
		expense("t1", "g1", "alice", 100, split.ModeEqual,
			split.Participant{PersonID: "alice"},
			split.Participant{PersonID: "bob"},
		),
		expense("t2", "g2", "bob", 60, split.ModeEqual,
			split.Participant{PersonID: "alice"},
			split.Participant{PersonID: "bob"},
		),
	}

	alice := PersonSummary(txs, "alice")
	if math.Abs(alice.Owed-50) > 0.01 {
		t.Errorf("alice owed = %v, want 50", alice.Owed)
	}
	if math.Abs(alice.Owes-30) > 0.01 {
		t.Errorf("alice owes = %v, want 30", alice.Owes)
	}
}
