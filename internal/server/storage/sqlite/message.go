package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

// CreateMessage stores a new message
func (s *Storage) CreateMessage(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, workspace_id, room_id, author_id, body, created_at, changed_at, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		message.ID,
		message.WorkspaceID,
		message.RoomID,
		message.AuthorID,
		message.Body,
		message.CreatedAt.UnixMicro(),
		message.ChangedAt,
		boolToInt(message.Deleted),
	)

	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// GetMessage retrieves a live (non-deleted) message by ID
func (s *Storage) GetMessage(ctx context.Context, messageID string) (*models.Message, error) {
	query := `
		SELECT id, workspace_id, room_id, author_id, body, created_at, changed_at, deleted
		FROM messages
		WHERE id = ? AND deleted = 0
	`

	message := &models.Message{}
	var deleted int
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, messageID).Scan(
		&message.ID,
		&message.WorkspaceID,
		&message.RoomID,
		&message.AuthorID,
		&message.Body,
		&createdAt,
		&message.ChangedAt,
		&deleted,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	message.Deleted = intToBool(deleted)
	message.CreatedAt = microToTime(createdAt)
	return message, nil
}

// UpdateMessage replaces the body of a live message and restamps
// its change timestamp
func (s *Storage) UpdateMessage(ctx context.Context, messageID, body string, changedAt int64) error {
	query := `
		UPDATE messages
		SET body = ?, changed_at = ?
		WHERE id = ? AND deleted = 0
	`

	result, err := s.db.ExecContext(ctx, query, body, changedAt, messageID)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrMessageNotFound
	}
	return nil
}

// DeleteMessage soft-deletes a message. The tombstone keeps no body
// and sorts in the change feed at deletion time
func (s *Storage) DeleteMessage(ctx context.Context, messageID string, changedAt int64) error {
	query := `
		UPDATE messages
		SET deleted = 1, body = '', changed_at = ?
		WHERE id = ? AND deleted = 0
	`

	result, err := s.db.ExecContext(ctx, query, changedAt, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrMessageNotFound
	}
	return nil
}

// GetRoomMessages retrieves live messages of a room after the given
// position in (created_at, id) keyset order
func (s *Storage) GetRoomMessages(ctx context.Context, roomID string, after *syncfeed.Position, limit int) ([]*models.Message, error) {
	query := `
		SELECT id, workspace_id, room_id, author_id, body, created_at, changed_at, deleted
		FROM messages
		WHERE room_id = ? AND deleted = 0
		  AND (created_at > ? OR (created_at = ? AND id > ?))
		ORDER BY created_at ASC, id ASC
		LIMIT ?
	`

	pos := positionOrZero(after)
	rows, err := s.db.QueryContext(ctx, query, roomID, pos.ChangedAt, pos.ChangedAt, pos.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query room messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanMessages(rows)
}

// GetMessagesSince retrieves workspace messages (including deleted)
// with change position strictly greater than after, ascending by
// (changed_at, id). Pure read used by the sync engine
func (s *Storage) GetMessagesSince(ctx context.Context, workspaceID string, after *syncfeed.Position, limit int) ([]*models.Message, error) {
	query := `
		SELECT id, workspace_id, room_id, author_id, body, created_at, changed_at, deleted
		FROM messages
		WHERE workspace_id = ?
		  AND (changed_at > ? OR (changed_at = ? AND id > ?))
		ORDER BY changed_at ASC, id ASC
		LIMIT ?
	`

	pos := positionOrZero(after)
	rows, err := s.db.QueryContext(ctx, query, workspaceID, pos.ChangedAt, pos.ChangedAt, pos.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages since position: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanMessages(rows)
}

// scanMessages is a helper function to scan multiple messages from rows
func (s *Storage) scanMessages(rows *sql.Rows) ([]*models.Message, error) {
	var messages []*models.Message

	for rows.Next() {
		message := &models.Message{}
		var deleted int
		var createdAt int64

		err := rows.Scan(
			&message.ID,
			&message.WorkspaceID,
			&message.RoomID,
			&message.AuthorID,
			&message.Body,
			&createdAt,
			&message.ChangedAt,
			&deleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}

		message.Deleted = intToBool(deleted)
		message.CreatedAt = microToTime(createdAt)
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return messages, nil
}

// positionOrZero разворачивает опциональную позицию: nil означает
// "с начала", что эквивалентно нулевой позиции, так как все
// реальные (changed_at, id) строго больше нее
func positionOrZero(after *syncfeed.Position) syncfeed.Position {
	if after == nil {
		return syncfeed.Position{}
	}
	return *after
}
