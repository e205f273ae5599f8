package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
)

// CreateRoom creates a new room in a workspace
func (s *Storage) CreateRoom(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (id, workspace_id, name, topic, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		room.ID,
		room.WorkspaceID,
		room.Name,
		room.Topic,
		room.CreatedBy,
		room.CreatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}

	return nil
}

// GetRoom retrieves room by ID
func (s *Storage) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	query := `
		SELECT id, workspace_id, name, topic, created_by, created_at
		FROM rooms
		WHERE id = ?
	`

	room := &models.Room{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, roomID).Scan(
		&room.ID,
		&room.WorkspaceID,
		&room.Name,
		&room.Topic,
		&room.CreatedBy,
		&createdAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	room.CreatedAt = unixToTime(createdAt)
	return room, nil
}

// GetWorkspaceRooms retrieves all rooms of a workspace ordered by creation time
func (s *Storage) GetWorkspaceRooms(ctx context.Context, workspaceID string) ([]*models.Room, error) {
	query := `
		SELECT id, workspace_id, name, topic, created_by, created_at
		FROM rooms
		WHERE workspace_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer func() { _ = rows.Close() }()

	rooms := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		var createdAt int64

		err := rows.Scan(
			&room.ID,
			&room.WorkspaceID,
			&room.Name,
			&room.Topic,
			&room.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}

		room.CreatedAt = unixToTime(createdAt)
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return rooms, nil
}
