package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
)

// CreateNotifications stores a batch of notifications in one transaction
func (s *Storage) CreateNotifications(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO notifications (id, workspace_id, user_id, kind, ref_id, body, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, n := range notifications {
		_, err := tx.ExecContext(ctx, query,
			n.ID,
			n.WorkspaceID,
			n.UserID,
			n.Kind,
			n.RefID,
			n.Body,
			boolToInt(n.Read),
			n.CreatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetUserNotifications retrieves notifications of a user, newest first
func (s *Storage) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error) {
	query := `
		SELECT id, workspace_id, user_id, kind, ref_id, body, read, created_at
		FROM notifications
		WHERE user_id = ? AND (? = 0 OR read = 0)
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, boolToInt(unreadOnly), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		var read int
		var createdAt int64

		err := rows.Scan(
			&n.ID,
			&n.WorkspaceID,
			&n.UserID,
			&n.Kind,
			&n.RefID,
			&n.Body,
			&read,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.Read = intToBool(read)
		n.CreatedAt = unixToTime(createdAt)
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead marks a notification of the given user as read
func (s *Storage) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	query := `
		UPDATE notifications
		SET read = 1
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNotificationNotFound
	}
	return nil
}

// MarkAllNotificationsRead marks all unread notifications of a user as read
func (s *Storage) MarkAllNotificationsRead(ctx context.Context, userID string) (int, error) {
	query := `
		UPDATE notifications
		SET read = 1
		WHERE user_id = ? AND read = 0
	`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
