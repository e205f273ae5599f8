package storage

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

// MessageStorage defines interface for message persistence.
// GetMessagesSince makes the implementation a change-source feed
// for the workspace sync engine.
type MessageStorage interface {
	// CreateMessage stores a new message
	CreateMessage(ctx context.Context, message *models.Message) error

	// GetMessage retrieves a live (non-deleted) message by ID
	// Returns ErrMessageNotFound if message doesn't exist or is deleted
	GetMessage(ctx context.Context, messageID string) (*models.Message, error)

	// UpdateMessage replaces the body of a live message and restamps
	// its change timestamp
	// Returns ErrMessageNotFound if message doesn't exist or is deleted
	UpdateMessage(ctx context.Context, messageID, body string, changedAt int64) error

	// DeleteMessage soft-deletes a message: clears the body, sets the
	// deleted flag and restamps the change timestamp so the tombstone
	// sorts at deletion time
	// Returns ErrMessageNotFound if message doesn't exist or is deleted
	DeleteMessage(ctx context.Context, messageID string, changedAt int64) error

	// GetRoomMessages retrieves live messages of a room after the given
	// position in (created_at, id) keyset order, at most limit
	GetRoomMessages(ctx context.Context, roomID string, after *syncfeed.Position, limit int) ([]*models.Message, error)

	// GetMessagesSince retrieves workspace messages (including deleted)
	// with change position strictly greater than after, ascending by
	// (changed_at, id), at most limit. Pure read
	GetMessagesSince(ctx context.Context, workspaceID string, after *syncfeed.Position, limit int) ([]*models.Message, error)
}
