package notification

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not the recipient of this notification")
)

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a notification by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Notification, error) {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}

// ListByRecipientID retrieves a person's notifications with pagination
func (s *Service) ListByRecipientID(ctx context.Context, recipientID string, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByRecipientID(ctx, recipientID, perPage, offset, unreadOnly)
}

// MarkAsRead marks a notification as read
func (s *Service) MarkAsRead(ctx context.Context, id, personID string) error {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}
	if notification.RecipientID != personID {
		return ErrNotRecipient
	}

	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all of a person's notifications as read
func (s *Service) MarkAllAsRead(ctx context.Context, personID string) error {
	return s.repo.MarkAllAsRead(ctx, personID)
}

// GetUnreadCount returns the count of unread notifications
func (s *Service) GetUnreadCount(ctx context.Context, personID string) (int, error) {
	return s.repo.GetUnreadCount(ctx, personID)
}

// Helper methods for creating specific notification types

// NotifyAddedToGroup notifies a person they were added to a group
func (s *Service) NotifyAddedToGroup(ctx context.Context, recipientID, groupName, groupID string) (*Notification, error) {
	message := "You have been added to group: " + groupName
	entityType := "GROUP"
	return s.repo.Create(ctx, recipientID, message, &entityType, &groupID)
}

// NotifyTransactionAdded notifies a split participant about a new expense
func (s *Service) NotifyTransactionAdded(ctx context.Context, recipientID, payerName string, amount float64, transactionID string) (*Notification, error) {
	message := fmt.Sprintf("%s added an expense of %.2f that includes you", payerName, amount)
	entityType := "TRANSACTION"
	return s.repo.Create(ctx, recipientID, message, &entityType, &transactionID)
}

// NotifySettlementRecorded notifies the receiver of a settlement payment
func (s *Service) NotifySettlementRecorded(ctx context.Context, recipientID, payerName string, amount float64, transactionID string) (*Notification, error) {
	message := fmt.Sprintf("%s recorded a payment of %.2f to you", payerName, amount)
	entityType := "SETTLEMENT"
	return s.repo.Create(ctx, recipientID, message, &entityType, &transactionID)
}
