package paymentsource

import (
	"testing"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction"
)

func txWithSource(id, sourceID, date string) transaction.Transaction {
	tx := transaction.Transaction{ID: id, Date: date, Type: transaction.TypeExpense}
	if sourceID != "" {
		tx.PaymentSourceID = &sourceID
	}
	return tx
}

func TestUsage(t *testing.T) {
	txs := []transaction.Transaction{
		txWithSource("t1", "card", "2025-03-01"),
		txWithSource("t2", "card", "2025-05-20"),
		txWithSource("t3", "card", "2025-04-11"),
		txWithSource("t4", "upi", "2025-01-09"),
		txWithSource("t5", "", "2025-06-01"),
	}

	report := Usage(txs)

	if report.Counts["card"] != 3 {
		t.Errorf("card count = %d, want 3", report.Counts["card"])
	}
	if report.Counts["upi"] != 1 {
		t.Errorf("upi count = %d, want 1", report.Counts["upi"])
	}
	if len(report.Counts) != 2 {
		t.Errorf("expected 2 sources in report, got %d", len(report.Counts))
	}

	// Last used is the latest date, not the latest record.
	if report.LastUsed["card"] != "2025-05-20" {
		t.Errorf("card last used = %q, want 2025-05-20", report.LastUsed["card"])
	}
	if report.LastUsed["upi"] != "2025-01-09" {
		t.Errorf("upi last used = %q, want 2025-01-09", report.LastUsed["upi"])
	}
}

func TestUsageEmpty(t *testing.T) {
	report := Usage(nil)
	if len(report.Counts) != 0 || len(report.LastUsed) != 0 {
		t.Errorf("Usage(nil) = %+v, want empty maps", report)
	}
}
