package transaction

import (
	"time"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction/split"
)

// Type discriminates between shared costs and direct debt repayments
type Type string

const (
	TypeExpense    Type = "expense"    // normal shared cost
	TypeSettlement Type = "settlement" // direct transfer that nets out one debt
)

// PayerEntry is one payer's contribution in a multi-payer transaction.
// The entry amounts must sum to the transaction amount.
type PayerEntry struct {
	PersonID string  `json:"personId"`
	Amount   float64 `json:"amount"`
}

// Split is the rule describing how the amount divides among participants
type Split struct {
	Mode         split.Mode          `json:"mode"`
	Participants []split.Participant `json:"participants"`
}

// Transaction represents an expense or settlement within a group
type Transaction struct {
	ID              string       `json:"id"`
	GroupID         string       `json:"groupId"`
	Description     string       `json:"description"`
	Amount          float64      `json:"amount"`
	PaidByID        string       `json:"paidById"`
	Payers          []PayerEntry `json:"payers,omitempty"`
	Date            string       `json:"date"` // YYYY-MM-DD
	Tag             string       `json:"tag"`
	PaymentSourceID *string      `json:"paymentSourceId,omitempty"`
	Comment         *string      `json:"comment,omitempty"`
	Type            Type         `json:"type"`
	Split           Split        `json:"split"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// PaidBy returns the amount each payer contributed. Single-payer
// transactions attribute the full amount to PaidByID; multi-payer
// transactions use the payer entries instead.
func (t *Transaction) PaidBy() map[string]float64 {
	if len(t.Payers) == 0 {
		return map[string]float64{t.PaidByID: t.Amount}
	}
	paid := make(map[string]float64, len(t.Payers))
	for _, p := range t.Payers {
		paid[p.PersonID] += p.Amount
	}
	return paid
}

// SettlementReceiver returns the receiving side of a settlement. By
// convention a settlement's split has exactly two participants: the payer
// with value 0 and the receiver with value equal to the amount.
func (t *Transaction) SettlementReceiver() (string, bool) {
	if t.Type != TypeSettlement {
		return "", false
	}
	for _, p := range t.Split.Participants {
		if p.PersonID != t.PaidByID && p.Value > 0 {
			return p.PersonID, true
		}
	}
	// Legacy rows may carry a zero-valued receiver entry.
	for _, p := range t.Split.Participants {
		if p.PersonID != t.PaidByID {
			return p.PersonID, true
		}
	}
	return "", false
}
