package transaction

import (
	"math"
	"strings"
	"testing"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction/split"
)

func TestCheckSettlementSplit(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateTransactionRequest
		wantErr bool
	}{
		{
			name: "valid settlement",
			req: &CreateTransactionRequest{
				Amount:   1000,
				PaidByID: "bob",
				Split: Split{
					Mode: split.ModeUnequal,
					Participants: []split.Participant{
						{PersonID: "bob", Value: 0},
						{PersonID: "alice", Value: 1000},
					},
				},
			},
			wantErr: false,
		},
		{
			name: "single participant",
			req: &CreateTransactionRequest{
				Amount:   1000,
				PaidByID: "bob",
				Split: Split{
					Mode:         split.ModeUnequal,
					Participants: []split.Participant{{PersonID: "alice", Value: 1000}},
				},
			},
			wantErr: true,
		},
		{
			name: "receiver value does not match amount",
			req: &CreateTransactionRequest{
				Amount:   1000,
				PaidByID: "bob",
				Split: Split{
					Mode: split.ModeUnequal,
					Participants: []split.Participant{
						{PersonID: "bob", Value: 0},
						{PersonID: "alice", Value: 500},
					},
				},
			},
			wantErr: true,
		},
		{
			name: "payer not among participants",
			req: &CreateTransactionRequest{
				Amount:   1000,
				PaidByID: "carol",
				Split: Split{
					Mode: split.ModeUnequal,
					Participants: []split.Participant{
						{PersonID: "bob", Value: 0},
						{PersonID: "alice", Value: 1000},
					},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSettlementSplit(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkSettlementSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreviewSplit(t *testing.T) {
	s := &Service{}

	t.Run("valid equal split returns shares", func(t *testing.T) {
		resp := s.PreviewSplit(&PreviewSplitRequest{
			Mode:   split.ModeEqual,
			Amount: 100,
			Participants: []split.Participant{
				{PersonID: "alice"},
				{PersonID: "bob"},
				{PersonID: "carol"},
			},
		})

		if !resp.Validation.Valid {
			t.Fatalf("expected valid split, got reason %q", resp.Validation.Reason)
		}

		var sum float64
		for _, v := range resp.Shares {
			sum += v
		}
		if math.Abs(sum-100) > 0.001 {
			t.Errorf("shares sum to %v, want 100", sum)
		}
	})

	t.Run("invalid split returns reason and no shares", func(t *testing.T) {
		resp := s.PreviewSplit(&PreviewSplitRequest{
			Mode:   split.ModePercentage,
			Amount: 100,
			Participants: []split.Participant{
				{PersonID: "alice", Value: 60},
				{PersonID: "bob", Value: 60},
			},
		})

		if resp.Validation.Valid {
			t.Fatal("expected invalid split")
		}
		if !strings.Contains(resp.Validation.Reason, "100") {
			t.Errorf("reason %q should mention the required total", resp.Validation.Reason)
		}
		if resp.Shares != nil {
			t.Errorf("expected no shares for invalid split, got %v", resp.Shares)
		}
	})
}

func TestPaidBy(t *testing.T) {
	t.Run("single payer", func(t *testing.T) {
		tx := &Transaction{Amount: 120, PaidByID: "alice"}
		paid := tx.PaidBy()
		if len(paid) != 1 || paid["alice"] != 120 {
			t.Errorf("PaidBy() = %v, want alice paying 120", paid)
		}
	})

	t.Run("multiple payers", func(t *testing.T) {
		tx := &Transaction{
			Amount:   100,
			PaidByID: "alice",
			Payers: []PayerEntry{
				{PersonID: "alice", Amount: 70},
				{PersonID: "bob", Amount: 30},
			},
		}
		paid := tx.PaidBy()
		if paid["alice"] != 70 || paid["bob"] != 30 {
			t.Errorf("PaidBy() = %v, want alice 70 and bob 30", paid)
		}
	})
}

func TestSettlementReceiver(t *testing.T) {
	tx := &Transaction{
		Amount:   1000,
		PaidByID: "bob",
		Type:     TypeSettlement,
		Split: Split{
			Mode: split.ModeUnequal,
			Participants: []split.Participant{
				{PersonID: "bob", Value: 0},
				{PersonID: "alice", Value: 1000},
			},
		},
	}

	receiver, ok := tx.SettlementReceiver()
	if !ok || receiver != "alice" {
		t.Errorf("SettlementReceiver() = %q, %v, want alice, true", receiver, ok)
	}

	expense := &Transaction{Type: TypeExpense}
	if _, ok := expense.SettlementReceiver(); ok {
		t.Error("expenses must not report a settlement receiver")
	}
}
