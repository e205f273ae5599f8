package storage

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
)

// NotificationStorage defines interface for notification persistence
type NotificationStorage interface {
	// CreateNotifications stores a batch of notifications in one
	// transaction. Empty batch is a no-op
	CreateNotifications(ctx context.Context, notifications []*models.Notification) error

	// GetUserNotifications retrieves notifications of a user, newest
	// first, at most limit. unreadOnly filters out read ones
	GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error)

	// MarkNotificationRead marks a notification of the given user as read
	// Returns ErrNotificationNotFound if it doesn't exist or belongs
	// to another user
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error

	// MarkAllNotificationsRead marks all unread notifications of a user
	// as read. Returns number of updated rows
	MarkAllNotificationsRead(ctx context.Context, userID string) (int, error)
}
