package storage

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
)

// RoomStorage defines interface for room persistence
type RoomStorage interface {
	// CreateRoom creates a new room in a workspace
	CreateRoom(ctx context.Context, room *models.Room) error

	// GetRoom retrieves room by ID
	// Returns ErrRoomNotFound if room doesn't exist
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)

	// GetWorkspaceRooms retrieves all rooms of a workspace ordered by
	// creation time. Returns empty slice if none
	GetWorkspaceRooms(ctx context.Context, workspaceID string) ([]*models.Room, error)
}
