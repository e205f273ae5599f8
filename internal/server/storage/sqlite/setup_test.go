package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/internal/models"
)

// Helper functions shared by the storage tests

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	userID := uuid.New().String()
	user := &models.User{
		ID:           userID,
		Username:     "testuser_" + userID[:8],
		PasswordHash: "hash_" + userID[:8],
		PasswordSalt: "salt_" + userID[:8],
		CreatedAt:    time.Now(),
	}
	err := s.CreateUser(ctx, user)
	require.NoError(t, err)
	return userID
}

func createTestWorkspace(t *testing.T, ctx context.Context, s *Storage, ownerID string) string {
	workspaceID := uuid.New().String()
	workspace := &models.Workspace{
		ID:        workspaceID,
		Name:      "workspace_" + workspaceID[:8],
		CreatedBy: ownerID,
		CreatedAt: time.Now(),
	}
	err := s.CreateWorkspace(ctx, workspace)
	require.NoError(t, err)
	return workspaceID
}

func createTestRoom(t *testing.T, ctx context.Context, s *Storage, workspaceID, creatorID string) string {
	roomID := uuid.New().String()
	room := &models.Room{
		ID:          roomID,
		WorkspaceID: workspaceID,
		Name:        "room_" + roomID[:8],
		CreatedBy:   creatorID,
		CreatedAt:   time.Now(),
	}
	err := s.CreateRoom(ctx, room)
	require.NoError(t, err)
	return roomID
}
