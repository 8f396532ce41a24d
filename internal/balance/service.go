package balance

import (
	"context"
	"errors"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/group"
	"github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction"
)

// Common errors
var (
	ErrGroupNotFound = errors.New("group not found")
)

// Service computes balances from stored transactions
type Service struct {
	txRepo    *transaction.Repository
	groupRepo *group.Repository
}

// NewService creates a new balance service
func NewService(txRepo *transaction.Repository, groupRepo *group.Repository) *Service {
	return &Service{txRepo: txRepo, groupRepo: groupRepo}
}

// maxGroupTransactions bounds a single balance computation. Groups large
// enough to hit it need pagination-aware aggregation we don't have yet.
const maxGroupTransactions = 10000

// ForGroup computes every member's net balance in a group
func (s *Service) ForGroup(ctx context.Context, groupID string) (map[string]float64, error) {
	grp, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if grp == nil {
		return nil, ErrGroupNotFound
	}

	records, _, err := s.txRepo.ListByGroup(ctx, groupID, "", maxGroupTransactions, 0)
	if err != nil {
		return nil, err
	}

	return GroupBalances(dereference(records)), nil
}

// ForPerson computes a person's owed/owes summary across all their groups
func (s *Service) ForPerson(ctx context.Context, personID string) (*Summary, error) {
	records, err := s.txRepo.ListForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	summary := PersonSummary(dereference(records), personID)
	return &summary, nil
}

func dereference(records []*transaction.Transaction) []transaction.Transaction {
	txs := make([]transaction.Transaction, 0, len(records))
	for _, r := range records {
		txs = append(txs, *r)
	}
	return txs
}
