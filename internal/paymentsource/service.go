package paymentsource

import (
	"context"
	"errors"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction"
)

// Common errors
var (
	ErrSourceNotFound = errors.New("payment source not found")
	ErrNotOwner       = errors.New("payment source belongs to another person")
	ErrInvalidType    = errors.New("unknown payment source type")
	ErrSourceInUse    = errors.New("payment source is referenced by transactions")
)

// Service handles payment source business logic
type Service struct {
	repo   *Repository
	txRepo *transaction.Repository
}

// NewService creates a new payment source service
func NewService(repo *Repository, txRepo *transaction.Repository) *Service {
	return &Service{repo: repo, txRepo: txRepo}
}

// Create validates and saves a new payment source for its owner
func (s *Service) Create(ctx context.Context, ownerID string, req *CreatePaymentSourceRequest) (*PaymentSource, error) {
	if !ValidType(req.Type) {
		return nil, ErrInvalidType
	}

	return s.repo.Create(ctx, ownerID, req)
}

// GetByID retrieves a payment source, enforcing ownership
func (s *Service) GetByID(ctx context.Context, id, ownerID string) (*PaymentSource, error) {
	source, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ErrSourceNotFound
	}
	if source.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return source, nil
}

// ListForOwner retrieves a person's payment sources
func (s *Service) ListForOwner(ctx context.Context, ownerID string, includeArchived bool) ([]*PaymentSource, error) {
	return s.repo.ListByOwner(ctx, ownerID, includeArchived)
}

// Update modifies a payment source after checking ownership
func (s *Service) Update(ctx context.Context, id, ownerID string, req *UpdatePaymentSourceRequest) (*PaymentSource, error) {
	if _, err := s.GetByID(ctx, id, ownerID); err != nil {
		return nil, err
	}
	if req.Type != nil && !ValidType(*req.Type) {
		return nil, ErrInvalidType
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrSourceNotFound
	}

	return updated, nil
}

// Delete removes a payment source. Sources referenced by transaction
// history cannot be deleted; archive them instead.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.GetByID(ctx, id, ownerID); err != nil {
		return err
	}

	count, err := s.txRepo.CountByPaymentSource(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSourceInUse
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSourceNotFound
	}

	return nil
}

// UsageForOwner folds a person's transaction history into per-source
// usage counts and last-used dates
func (s *Service) UsageForOwner(ctx context.Context, ownerID string) (*UsageReport, error) {
	records, err := s.txRepo.ListForPerson(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	txs := make([]transaction.Transaction, 0, len(records))
	for _, r := range records {
		txs = append(txs, *r)
	}

	report := Usage(txs)
	return &report, nil
}
