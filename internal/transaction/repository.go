package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction/split"
)

// Repository handles transaction data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new transaction repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a transaction with its split participants and payer
// entries in one database transaction.
func (r *Repository) Create(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	record := &Transaction{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO transactions (id, group_id, description, amount, paid_by_id, date, tag, payment_source_id, comment, type, split_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, group_id, description, amount, paid_by_id, date, tag, payment_source_id, comment, type, split_mode, created_at
	`,
		uuid.New().String(),
		req.GroupID,
		req.Description,
		req.Amount,
		req.PaidByID,
		req.Date,
		req.Tag,
		req.PaymentSourceID,
		req.Comment,
		req.Type,
		req.Split.Mode,
	).Scan(
		&record.ID,
		&record.GroupID,
		&record.Description,
		&record.Amount,
		&record.PaidByID,
		&record.Date,
		&record.Tag,
		&record.PaymentSourceID,
		&record.Comment,
		&record.Type,
		&record.Split.Mode,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	for i, p := range req.Split.Participants {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO transaction_splits (transaction_id, person_id, value, position)
			VALUES ($1, $2, $3, $4)
		`, record.ID, p.PersonID, p.Value, i)
		if err != nil {
			return nil, fmt.Errorf("failed to create split participant: %w", err)
		}
	}
	record.Split.Participants = req.Split.Participants

	for _, p := range req.Payers {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO transaction_payers (transaction_id, person_id, amount)
			VALUES ($1, $2, $3)
		`, record.ID, p.PersonID, p.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to create payer entry: %w", err)
		}
	}
	record.Payers = req.Payers

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return record, nil
}

const selectTransaction = `
	SELECT id, group_id, description, amount, paid_by_id, date, tag, payment_source_id, comment, type, split_mode, created_at
	FROM transactions
`

func (r *Repository) scanTransaction(row interface{ Scan(...interface{}) error }) (*Transaction, error) {
	record := &Transaction{}
	err := row.Scan(
		&record.ID,
		&record.GroupID,
		&record.Description,
		&record.Amount,
		&record.PaidByID,
		&record.Date,
		&record.Tag,
		&record.PaymentSourceID,
		&record.Comment,
		&record.Type,
		&record.Split.Mode,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetByID retrieves a transaction with its split participants and payers
func (r *Repository) GetByID(ctx context.Context, id string) (*Transaction, error) {
	record, err := r.scanTransaction(r.db.QueryRowContext(ctx, selectTransaction+` WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := r.loadDetails(ctx, []*Transaction{record}); err != nil {
		return nil, err
	}
	return record, nil
}

// ListByGroup retrieves a group's transactions, newest first, optionally
// filtered by type.
func (r *Repository) ListByGroup(ctx context.Context, groupID string, txType Type, limit, offset int) ([]*Transaction, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM transactions
		WHERE group_id = $1 AND ($2 = '' OR type = $2)
	`, groupID, string(txType)).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, selectTransaction+`
		WHERE group_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY date DESC, created_at DESC
		LIMIT $3 OFFSET $4
	`, groupID, string(txType), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	records, err := r.collect(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListForPerson retrieves every transaction in every group the person
// currently belongs to. Used for cross-group balance summaries and
// payment-source usage reports.
func (r *Repository) ListForPerson(ctx context.Context, personID string) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, selectTransaction+`
		WHERE group_id IN (SELECT group_id FROM group_members WHERE person_id = $1)
		ORDER BY date DESC, created_at DESC
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for person: %w", err)
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *Repository) collect(ctx context.Context, rows *sql.Rows) ([]*Transaction, error) {
	var records []*Transaction
	for rows.Next() {
		record, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	if err := r.loadDetails(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// loadDetails attaches split participants and payer entries to the records
func (r *Repository) loadDetails(ctx context.Context, records []*Transaction) error {
	byID := make(map[string]*Transaction, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
		ids = append(ids, rec.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	splitRows, err := r.db.QueryContext(ctx, `
		SELECT transaction_id, person_id, value
		FROM transaction_splits
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load split participants: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var txID string
		var p split.Participant
		if err := splitRows.Scan(&txID, &p.PersonID, &p.Value); err != nil {
			return fmt.Errorf("failed to scan split participant: %w", err)
		}
		if rec := byID[txID]; rec != nil {
			rec.Split.Participants = append(rec.Split.Participants, p)
		}
	}
	if err := splitRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate split participants: %w", err)
	}

	payerRows, err := r.db.QueryContext(ctx, `
		SELECT transaction_id, person_id, amount
		FROM transaction_payers
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load payer entries: %w", err)
	}
	defer payerRows.Close()

	for payerRows.Next() {
		var txID string
		var p PayerEntry
		if err := payerRows.Scan(&txID, &p.PersonID, &p.Amount); err != nil {
			return fmt.Errorf("failed to scan payer entry: %w", err)
		}
		if rec := byID[txID]; rec != nil {
			rec.Payers = append(rec.Payers, p)
		}
	}
	if err := payerRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate payer entries: %w", err)
	}

	return nil
}

// Update modifies a transaction's editable fields and, when the split
// changed, replaces the split participants.
func (r *Repository) Update(ctx context.Context, id string, req *UpdateTransactionRequest) (*Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var splitMode *split.Mode
	if req.Split != nil {
		splitMode = &req.Split.Mode
	}

	record := &Transaction{}
	err = tx.QueryRowContext(ctx, `
		UPDATE transactions
		SET description = COALESCE($2, description),
		    date = COALESCE($3, date),
		    tag = COALESCE($4, tag),
		    payment_source_id = COALESCE($5, payment_source_id),
		    comment = COALESCE($6, comment),
		    amount = COALESCE($7, amount),
		    split_mode = COALESCE($8, split_mode)
		WHERE id = $1
		RETURNING id, group_id, description, amount, paid_by_id, date, tag, payment_source_id, comment, type, split_mode, created_at
	`, id, req.Description, req.Date, req.Tag, req.PaymentSourceID, req.Comment, req.Amount, splitMode).Scan(
		&record.ID,
		&record.GroupID,
		&record.Description,
		&record.Amount,
		&record.PaidByID,
		&record.Date,
		&record.Tag,
		&record.PaymentSourceID,
		&record.Comment,
		&record.Type,
		&record.Split.Mode,
		&record.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if req.Split != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM transaction_splits WHERE transaction_id = $1`, id); err != nil {
			return nil, fmt.Errorf("failed to clear split participants: %w", err)
		}
		for i, p := range req.Split.Participants {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO transaction_splits (transaction_id, person_id, value, position)
				VALUES ($1, $2, $3, $4)
			`, id, p.PersonID, p.Value, i)
			if err != nil {
				return nil, fmt.Errorf("failed to create split participant: %w", err)
			}
		}
		record.Split.Participants = req.Split.Participants
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if req.Split == nil {
		if err := r.loadDetails(ctx, []*Transaction{record}); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// Delete removes a transaction and its split/payer rows via cascade
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted transaction: %w", err)
	}
	return affected > 0, nil
}

// CountByPaymentSource reports how many transactions reference a payment
// source. Used to block deleting sources that are still in use.
func (r *Repository) CountByPaymentSource(ctx context.Context, paymentSourceID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE payment_source_id = $1`,
		paymentSourceID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions by payment source: %w", err)
	}
	return count, nil
}
