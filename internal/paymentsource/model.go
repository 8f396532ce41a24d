package paymentsource

import "time"

// SourceType categorizes a payment source
type SourceType string

const (
	SourceTypeCreditCard SourceType = "Credit Card"
	SourceTypeUPI        SourceType = "UPI"
	SourceTypeCash       SourceType = "Cash"
	SourceTypeOther      SourceType = "Other"
)

// PaymentSource represents a way a person pays for transactions. The
// structured detail fields match the type: card issuer and last four digits
// for cards, app and handle for UPI. Business logic never depends on a
// source beyond display and usage reporting.
type PaymentSource struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"ownerId"`
	Label      string     `json:"label"`
	Type       SourceType `json:"type"`
	CardIssuer *string    `json:"cardIssuer,omitempty"`
	CardLast4  *string    `json:"cardLast4,omitempty"`
	UpiApp     *string    `json:"upiApp,omitempty"`
	UpiID      *string    `json:"upiId,omitempty"`
	Archived   bool       `json:"archived"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ValidType reports whether t is one of the known source types
func ValidType(t SourceType) bool {
	switch t {
	case SourceTypeCreditCard, SourceTypeUPI, SourceTypeCash, SourceTypeOther:
		return true
	}
	return false
}
