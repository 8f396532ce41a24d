package paymentsource

// CreatePaymentSourceRequest represents the request to create a payment source
type CreatePaymentSourceRequest struct {
	Label      string     `json:"label" validate:"required,min=1,max=100"`
	Type       SourceType `json:"type" validate:"required"`
	CardIssuer *string    `json:"cardIssuer,omitempty"`
	CardLast4  *string    `json:"cardLast4,omitempty" validate:"omitempty,len=4"`
	UpiApp     *string    `json:"upiApp,omitempty"`
	UpiID      *string    `json:"upiId,omitempty"`
}

// UpdatePaymentSourceRequest represents the request to update a payment source
type UpdatePaymentSourceRequest struct {
	Label      *string     `json:"label,omitempty" validate:"omitempty,min=1,max=100"`
	Type       *SourceType `json:"type,omitempty"`
	CardIssuer *string     `json:"cardIssuer,omitempty"`
	CardLast4  *string     `json:"cardLast4,omitempty" validate:"omitempty,len=4"`
	UpiApp     *string     `json:"upiApp,omitempty"`
	UpiID      *string     `json:"upiId,omitempty"`
	Archived   *bool       `json:"archived,omitempty"`
}
