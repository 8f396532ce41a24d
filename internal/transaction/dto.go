package transaction

import "github.com/Kodanda10/Kharch-Baant-sub000/internal/transaction/split"

// CreateTransactionRequest represents the request to create a transaction
type CreateTransactionRequest struct {
	GroupID         string              `json:"groupId" validate:"required"`
	Description     string              `json:"description" validate:"required,min=1,max=255"`
	Amount          float64             `json:"amount" validate:"required,gt=0"`
	PaidByID        string              `json:"paidById"`
	Payers          []PayerEntry        `json:"payers,omitempty"`
	Date            string              `json:"date" validate:"required"`
	Tag             string              `json:"tag"`
	PaymentSourceID *string             `json:"paymentSourceId,omitempty"`
	Comment         *string             `json:"comment,omitempty"`
	Type            Type                `json:"type" validate:"required,oneof=expense settlement"`
	Split           Split               `json:"split" validate:"required"`
}

// UpdateTransactionRequest represents the request to update a transaction.
// Amount and Split travel together: changing one without the other would
// break the split invariants, so both are revalidated as a pair.
type UpdateTransactionRequest struct {
	Description     *string  `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Date            *string  `json:"date,omitempty"`
	Tag             *string  `json:"tag,omitempty"`
	PaymentSourceID *string  `json:"paymentSourceId,omitempty"`
	Comment         *string  `json:"comment,omitempty"`
	Amount          *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Split           *Split   `json:"split,omitempty"`
}

// PreviewSplitRequest asks for validation and materialized shares without
// persisting anything
type PreviewSplitRequest struct {
	Mode         split.Mode          `json:"mode"`
	Amount       float64             `json:"amount"`
	Participants []split.Participant `json:"participants"`
}

// PreviewSplitResponse carries the validator verdict and, when valid, the
// rounded per-person shares
type PreviewSplitResponse struct {
	Validation split.Result       `json:"validation"`
	Shares     map[string]float64 `json:"shares,omitempty"`
}

// TransactionResponse represents the response for a transaction
type TransactionResponse struct {
	ID              string             `json:"id"`
	GroupID         string             `json:"groupId"`
	Description     string             `json:"description"`
	Amount          float64            `json:"amount"`
	PaidByID        string             `json:"paidById"`
	Payers          []PayerEntry       `json:"payers,omitempty"`
	Date            string             `json:"date"`
	Tag             string             `json:"tag"`
	PaymentSourceID *string            `json:"paymentSourceId,omitempty"`
	Comment         *string            `json:"comment,omitempty"`
	Type            Type               `json:"type"`
	Split           Split              `json:"split"`
	Shares          map[string]float64 `json:"shares,omitempty"`
	CreatedAt       string             `json:"createdAt"`
}

// ToResponse converts a Transaction model to a TransactionResponse DTO.
// Shares carries the materialized per-person amounts when available.
func (t *Transaction) ToResponse(shares map[string]float64) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		GroupID:         t.GroupID,
		Description:     t.Description,
		Amount:          t.Amount,
		PaidByID:        t.PaidByID,
		Payers:          t.Payers,
		Date:            t.Date,
		Tag:             t.Tag,
		PaymentSourceID: t.PaymentSourceID,
		Comment:         t.Comment,
		Type:            t.Type,
		Split:           t.Split,
		Shares:          shares,
		CreatedAt:       t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
