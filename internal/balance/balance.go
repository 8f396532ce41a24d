// Package balance folds transaction history into per-person net balances.
//
// The fold is a pure reducer over an immutable snapshot of transactions: it
// never errors and never mutates its input, so one malformed record cannot
// blank a whole dashboard. Malformed transactions contribute zero and are
// logged at debug level. Strict checking happens at entry time through the
// split validator, not here.
package balance

import (
	"log/slog"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction/split"
)

// GroupBalances computes each person's net balance across the given
// transactions. Positive means the person is a net creditor.
//
// Expenses credit each payer with what they fronted and debit each
// participant with their computed share. Settlements adjust the payer up and
// the receiver down by the settlement amount directly; their split only
// encodes payer/receiver bookkeeping, not a shared cost.
func GroupBalances(txs []transaction.Transaction) map[string]float64 {
	net := make(map[string]float64)

	for i := range txs {
		tx := &txs[i]

		if tx.Type == transaction.TypeSettlement {
			receiver, found := tx.SettlementReceiver()
			if !found {
				slog.Debug("skipping settlement without receiver", "transaction", tx.ID)
				continue
			}
			net[tx.PaidByID] += tx.Amount
			net[receiver] -= tx.Amount
			continue
		}

		shares, err := split.Shares(tx.Split.Mode, tx.Amount, tx.Split.Participants)
		if err != nil {
			slog.Debug("skipping transaction with degenerate split", "transaction", tx.ID, "error", err)
			continue
		}

		for personID, paid := range tx.PaidBy() {
			net[personID] += paid
		}
		for personID, share := range shares {
			net[personID] -= share
		}
	}

	return net
}

// Summary holds one person's position across a set of transactions.
type Summary struct {
	Owed float64 `json:"owed"` // others owe this person
	Owes float64 `json:"owes"` // this person owes others
}

// Net is the person's net balance; positive means net creditor.
func (s Summary) Net() float64 {
	return s.Owed - s.Owes
}

// PersonSummary folds the transactions into the two running totals shown on
// a person's dashboard. For an expense the person paid, they are owed what
// they fronted beyond their own share; for one someone else paid, they owe
// their share. Settlements count fully toward the side the person is on.
// Amounts are summed as-is across groups with no currency conversion.
func PersonSummary(txs []transaction.Transaction, personID string) Summary {
	var s Summary

	for i := range txs {
		tx := &txs[i]

		if tx.Type == transaction.TypeSettlement {
			receiver, found := tx.SettlementReceiver()
			if !found {
				continue
			}
			if tx.PaidByID == personID {
				s.Owed += tx.Amount
			} else if receiver == personID {
				s.Owes += tx.Amount
			}
			continue
		}

		shares, err := split.Shares(tx.Split.Mode, tx.Amount, tx.Split.Participants)
		if err != nil {
			slog.Debug("skipping transaction with degenerate split", "transaction", tx.ID, "error", err)
			continue
		}

		ownShare := shares[personID]
		paid := tx.PaidBy()[personID]
		if paid > 0 {
			s.Owed += paid - ownShare
		} else if ownShare > 0 {
			s.Owes += ownShare
		}
	}

	return s
}
