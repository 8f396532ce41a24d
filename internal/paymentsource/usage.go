package paymentsource

import "github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction"

// UsageReport summarizes how payment sources appear in transaction history
type UsageReport struct {
	Counts   map[string]int    `json:"counts"`
	LastUsed map[string]string `json:"lastUsed"` // YYYY-MM-DD
}

// Usage folds transaction history into per-source usage counts and the most
// recent date each source was used. Transactions without a payment source
// are skipped. Dates are ISO strings, so a plain string comparison orders
// them correctly.
func Usage(txs []transaction.Transaction) UsageReport {
	report := UsageReport{
		Counts:   make(map[string]int),
		LastUsed: make(map[string]string),
	}

	for i := range txs {
		tx := &txs[i]
		if tx.PaymentSourceID == nil || *tx.PaymentSourceID == "" {
			continue
		}

		id := *tx.PaymentSourceID
		report.Counts[id]++
		if tx.Date > report.LastUsed[id] {
			report.LastUsed[id] = tx.Date
		}
	}

	return report
}
