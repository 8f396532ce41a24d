package transaction

import (
	"context"
	"errors"
	"fmt"
	"math"

	"log/slog"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/group"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/notification"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/person"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction/split"
)

// Common errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupArchived       = errors.New("group is archived")
	ErrParticipantNotInGroup = errors.New("split participant is not a member of the group")
	ErrPayerMismatch       = errors.New("payer amounts must sum to the transaction amount")
	ErrBadSettlementSplit  = errors.New("settlement requires exactly a payer and a receiver")
	ErrUnknownType         = errors.New("transaction type must be expense or settlement")
)

// InvalidSplitError carries the validator's human-readable reason so
// handlers can surface it verbatim.
type InvalidSplitError struct {
	Reason string
}

func (e *InvalidSplitError) Error() string {
	return fmt.Sprintf("invalid split: %s", e.Reason)
}

// Service handles transaction business logic
type Service struct {
	repo       *Repository
	groupRepo  *group.Repository
	personRepo *person.Repository
	notifier   *notification.Service
}

// NewService creates a new transaction service. notifier may be nil to
// disable in-app notifications.
func NewService(repo *Repository, groupRepo *group.Repository, personRepo *person.Repository, notifier *notification.Service) *Service {
	return &Service{repo: repo, groupRepo: groupRepo, personRepo: personRepo, notifier: notifier}
}

// Create validates and persists a new transaction, returning the record
// together with its materialized shares.
func (s *Service) Create(ctx context.Context, req *CreateTransactionRequest) (*Transaction, map[string]float64, error) {
	if req.Type != TypeExpense && req.Type != TypeSettlement {
		return nil, nil, ErrUnknownType
	}

	grp, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, nil, err
	}
	if grp == nil {
		return nil, nil, ErrGroupNotFound
	}
	if grp.Archived {
		return nil, nil, ErrGroupArchived
	}

	if res := split.Validate(req.Split.Mode, req.Amount, req.Split.Participants); !res.Valid {
		return nil, nil, &InvalidSplitError{Reason: res.Reason}
	}

	switch req.Type {
	case TypeExpense:
		if err := s.checkParticipants(ctx, req); err != nil {
			return nil, nil, err
		}
	case TypeSettlement:
		if err := checkSettlementSplit(req); err != nil {
			return nil, nil, err
		}
	}

	if len(req.Payers) > 0 {
		var sum float64
		for _, p := range req.Payers {
			sum += p.Amount
		}
		if math.Abs(sum-req.Amount) > 0.01 {
			return nil, nil, ErrPayerMismatch
		}
	} else if req.PaidByID == "" {
		return nil, nil, ErrPayerMismatch
	}

	record, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	s.notify(ctx, record)

	shares, err := split.Materialize(record.Split.Mode, record.Amount, record.Split.Participants)
	if err != nil {
		// Persisted data already passed validation; a materialize failure
		// here only affects the response payload.
		shares = nil
	}
	return record, shares, nil
}

// checkParticipants verifies that every split participant is a current
// group member. Former members stay referenced by historical transactions,
// but new expenses can only split across the present member set.
func (s *Service) checkParticipants(ctx context.Context, req *CreateTransactionRequest) error {
	members, err := s.groupRepo.ListMembers(ctx, req.GroupID)
	if err != nil {
		return err
	}

	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m.PersonID] = true
	}

	for _, p := range req.Split.Participants {
		if !memberSet[p.PersonID] {
			return fmt.Errorf("%w: %s", ErrParticipantNotInGroup, p.PersonID)
		}
	}
	return nil
}

// checkSettlementSplit enforces the settlement convention: two
// participants, the payer with value 0 and the receiver with the amount.
func checkSettlementSplit(req *CreateTransactionRequest) error {
	if len(req.Split.Participants) != 2 {
		return ErrBadSettlementSplit
	}

	var payerSeen, receiverSeen bool
	for _, p := range req.Split.Participants {
		if p.PersonID == req.PaidByID {
			payerSeen = true
			continue
		}
		if math.Abs(p.Value-req.Amount) > 0.01 {
			return ErrBadSettlementSplit
		}
		receiverSeen = true
	}
	if !payerSeen || !receiverSeen {
		return ErrBadSettlementSplit
	}
	return nil
}

// notify fans out in-app notifications for a newly created transaction.
// Failures are logged, never surfaced: the transaction is already saved.
func (s *Service) notify(ctx context.Context, record *Transaction) {
	if s.notifier == nil {
		return
	}

	payerName := "Someone"
	if payer, err := s.personRepo.GetByID(ctx, record.PaidByID); err == nil && payer != nil {
		payerName = payer.Name
	}

	if record.Type == TypeSettlement {
		receiverID, ok := record.SettlementReceiver()
		if !ok {
			return
		}
		if _, err := s.notifier.NotifySettlementRecorded(ctx, receiverID, payerName, record.Amount, record.ID); err != nil {
			slog.Warn("settlement notification failed", "transaction_id", record.ID, "error", err)
		}
		return
	}

	for _, p := range record.Split.Participants {
		if p.PersonID == record.PaidByID {
			continue
		}
		if _, err := s.notifier.NotifyTransactionAdded(ctx, p.PersonID, payerName, record.Amount, record.ID); err != nil {
			slog.Warn("expense notification failed", "transaction_id", record.ID, "recipient_id", p.PersonID, "error", err)
		}
	}
}

// GetByID retrieves a transaction with its materialized shares
func (s *Service) GetByID(ctx context.Context, id string) (*Transaction, map[string]float64, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if record == nil {
		return nil, nil, ErrTransactionNotFound
	}

	shares, err := split.Materialize(record.Split.Mode, record.Amount, record.Split.Participants)
	if err != nil {
		shares = nil
	}
	return record, shares, nil
}

// ListByGroup retrieves a group's transactions with pagination
func (s *Service) ListByGroup(ctx context.Context, groupID string, txType Type, page, perPage int) ([]*Transaction, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroup(ctx, groupID, txType, perPage, offset)
}

// Update revalidates and persists changes to a transaction
func (s *Service) Update(ctx context.Context, id string, req *UpdateTransactionRequest) (*Transaction, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTransactionNotFound
	}

	if req.Amount != nil || req.Split != nil {
		amount := existing.Amount
		if req.Amount != nil {
			amount = *req.Amount
		}
		sp := existing.Split
		if req.Split != nil {
			sp = *req.Split
		}
		if res := split.Validate(sp.Mode, amount, sp.Participants); !res.Valid {
			return nil, &InvalidSplitError{Reason: res.Reason}
		}
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTransactionNotFound
	}
	return updated, nil
}

// Delete removes a transaction
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}

// PreviewShares materializes a stored transaction's shares
func (s *Service) PreviewShares(t *Transaction) (map[string]float64, error) {
	return split.Materialize(t.Split.Mode, t.Amount, t.Split.Participants)
}

// PreviewSplit runs the validator and, when the split is valid, the
// materializer, without persisting anything.
func (s *Service) PreviewSplit(req *PreviewSplitRequest) *PreviewSplitResponse {
	resp := &PreviewSplitResponse{
		Validation: split.Validate(req.Mode, req.Amount, req.Participants),
	}
	if !resp.Validation.Valid {
		return resp
	}

	shares, err := split.Materialize(req.Mode, req.Amount, req.Participants)
	if err == nil {
		resp.Shares = shares
	}
	return resp
}
