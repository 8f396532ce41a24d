package notification

import "time"

// Notification represents an in-app notification
type Notification struct {
	ID                string    `json:"id"`
	RecipientID       string    `json:"recipientId"`
	Message           string    `json:"message"`
	IsRead            bool      `json:"isRead"`
	RelatedEntityType *string   `json:"relatedEntityType,omitempty"` // "TRANSACTION", "SETTLEMENT" or "GROUP"
	RelatedEntityID   *string   `json:"relatedEntityId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
