package paymentsource

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Repository handles database operations for payment sources
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment source repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment source into the database
func (r *Repository) Create(ctx context.Context, ownerID string, req *CreatePaymentSourceRequest) (*PaymentSource, error) {
	query := `
		INSERT INTO payment_sources (id, owner_id, label, type, card_issuer, card_last4, upi_app, upi_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, owner_id, label, type, card_issuer, card_last4, upi_app, upi_id, archived, created_at`

	source := &PaymentSource{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), ownerID, req.Label, req.Type,
		req.CardIssuer, req.CardLast4, req.UpiApp, req.UpiID,
	).Scan(
		&source.ID, &source.OwnerID, &source.Label, &source.Type,
		&source.CardIssuer, &source.CardLast4, &source.UpiApp, &source.UpiID,
		&source.Archived, &source.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return source, nil
}

// GetByID retrieves a payment source by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*PaymentSource, error) {
	query := `
		SELECT id, owner_id, label, type, card_issuer, card_last4, upi_app, upi_id, archived, created_at
		FROM payment_sources
		WHERE id = $1`

	source := &PaymentSource{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&source.ID, &source.OwnerID, &source.Label, &source.Type,
		&source.CardIssuer, &source.CardLast4, &source.UpiApp, &source.UpiID,
		&source.Archived, &source.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return source, nil
}

// ListByOwner retrieves a person's payment sources, newest first
func (r *Repository) ListByOwner(ctx context.Context, ownerID string, includeArchived bool) ([]*PaymentSource, error) {
	query := `
		SELECT id, owner_id, label, type, card_issuer, card_last4, upi_app, upi_id, archived, created_at
		FROM payment_sources
		WHERE owner_id = $1 AND ($2 OR NOT archived)
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID, includeArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*PaymentSource
	for rows.Next() {
		source := &PaymentSource{}
		err := rows.Scan(
			&source.ID, &source.OwnerID, &source.Label, &source.Type,
			&source.CardIssuer, &source.CardLast4, &source.UpiApp, &source.UpiID,
			&source.Archived, &source.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// Update modifies an existing payment source
func (r *Repository) Update(ctx context.Context, id string, req *UpdatePaymentSourceRequest) (*PaymentSource, error) {
	query := `
		UPDATE payment_sources
		SET label = COALESCE($2, label),
		    type = COALESCE($3, type),
		    card_issuer = COALESCE($4, card_issuer),
		    card_last4 = COALESCE($5, card_last4),
		    upi_app = COALESCE($6, upi_app),
		    upi_id = COALESCE($7, upi_id),
		    archived = COALESCE($8, archived)
		WHERE id = $1
		RETURNING id, owner_id, label, type, card_issuer, card_last4, upi_app, upi_id, archived, created_at`

	source := &PaymentSource{}
	err := r.db.QueryRowContext(ctx, query, id,
		req.Label, req.Type, req.CardIssuer, req.CardLast4,
		req.UpiApp, req.UpiID, req.Archived,
	).Scan(
		&source.ID, &source.OwnerID, &source.Label, &source.Type,
		&source.CardIssuer, &source.CardLast4, &source.UpiApp, &source.UpiID,
		&source.Archived, &source.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return source, nil
}

// Delete removes a payment source from the database
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payment_sources WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
