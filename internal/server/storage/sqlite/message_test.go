package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

func TestMessageStorage_CreateMessage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)

	message := &models.Message{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		RoomID:      roomID,
		AuthorID:    userID,
		Body:        "hello team",
		CreatedAt:   time.UnixMicro(1700000000000100),
		ChangedAt:   1700000000000100,
	}

	err := s.CreateMessage(ctx, message)
	require.NoError(t, err)

	// Verify message was created
	retrieved, err := s.GetMessage(ctx, message.ID)
	require.NoError(t, err)
	assert.Equal(t, message.ID, retrieved.ID)
	assert.Equal(t, message.WorkspaceID, retrieved.WorkspaceID)
	assert.Equal(t, message.RoomID, retrieved.RoomID)
	assert.Equal(t, message.AuthorID, retrieved.AuthorID)
	assert.Equal(t, message.Body, retrieved.Body)
	assert.Equal(t, message.ChangedAt, retrieved.ChangedAt)
	assert.Equal(t, message.CreatedAt.UnixMicro(), retrieved.CreatedAt.UnixMicro())
	assert.False(t, retrieved.Deleted)
}

func TestMessageStorage_GetMessage_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	message, err := s.GetMessage(ctx, "nonexistent-id")
	assert.ErrorIs(t, err, storage.ErrMessageNotFound)
	assert.Nil(t, message)
}

func TestMessageStorage_UpdateMessage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)

	message := &models.Message{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		RoomID:      roomID,
		AuthorID:    userID,
		Body:        "original",
		CreatedAt:   time.UnixMicro(100),
		ChangedAt:   100,
	}
	require.NoError(t, s.CreateMessage(ctx, message))

	// Правка перештамповывает changed_at, created_at не меняется
	err := s.UpdateMessage(ctx, message.ID, "edited", 200)
	require.NoError(t, err)

	retrieved, err := s.GetMessage(ctx, message.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", retrieved.Body)
	assert.Equal(t, int64(200), retrieved.ChangedAt)
	assert.Equal(t, int64(100), retrieved.CreatedAt.UnixMicro())
}

func TestMessageStorage_UpdateMessage_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.UpdateMessage(ctx, "nonexistent-id", "body", 100)
	assert.ErrorIs(t, err, storage.ErrMessageNotFound)
}

func TestMessageStorage_DeleteMessage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)

	message := &models.Message{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		RoomID:      roomID,
		AuthorID:    userID,
		Body:        "to be deleted",
		CreatedAt:   time.UnixMicro(100),
		ChangedAt:   100,
	}
	require.NoError(t, s.CreateMessage(ctx, message))

	err := s.DeleteMessage(ctx, message.ID, 300)
	require.NoError(t, err)

	// Удаленное сообщение не возвращается через GetMessage
	retrieved, err := s.GetMessage(ctx, message.ID)
	assert.ErrorIs(t, err, storage.ErrMessageNotFound)
	assert.Nil(t, retrieved)

	// Но tombstone виден в ленте изменений: без тела,
	// со временем удаления
	changes, err := s.GetMessagesSince(ctx, workspaceID, nil, 10)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Deleted)
	assert.Empty(t, changes[0].Body)
	assert.Equal(t, int64(300), changes[0].ChangedAt)

	// Повторное удаление - уже not found
	err = s.DeleteMessage(ctx, message.ID, 400)
	assert.ErrorIs(t, err, storage.ErrMessageNotFound)
}

func TestMessageStorage_GetRoomMessages(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)
	otherRoomID := createTestRoom(t, ctx, s, workspaceID, userID)

	// Сообщения с возрастающим created_at
	messages := []*models.Message{
		{ID: "msg-a", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "first", CreatedAt: time.UnixMicro(100), ChangedAt: 100},
		{ID: "msg-b", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "second", CreatedAt: time.UnixMicro(200), ChangedAt: 200},
		{ID: "msg-c", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "third", CreatedAt: time.UnixMicro(300), ChangedAt: 300},
		{ID: "msg-d", WorkspaceID: workspaceID, RoomID: otherRoomID, AuthorID: userID, Body: "other room", CreatedAt: time.UnixMicro(150), ChangedAt: 150},
	}
	for _, m := range messages {
		require.NoError(t, s.CreateMessage(ctx, m))
	}

	// First page
	page1, err := s.GetRoomMessages(ctx, roomID, nil, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "msg-a", page1[0].ID)
	assert.Equal(t, "msg-b", page1[1].ID)

	// Next page continues after the last returned message
	after := &syncfeed.Position{ChangedAt: page1[1].CreatedAt.UnixMicro(), ID: page1[1].ID}
	page2, err := s.GetRoomMessages(ctx, roomID, after, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "msg-c", page2[0].ID)
}

func TestMessageStorage_GetRoomMessages_ExcludesDeleted(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)

	messages := []*models.Message{
		{ID: "msg-a", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "keep", CreatedAt: time.UnixMicro(100), ChangedAt: 100},
		{ID: "msg-b", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "drop", CreatedAt: time.UnixMicro(200), ChangedAt: 200},
	}
	for _, m := range messages {
		require.NoError(t, s.CreateMessage(ctx, m))
	}
	require.NoError(t, s.DeleteMessage(ctx, "msg-b", 300))

	history, err := s.GetRoomMessages(ctx, roomID, nil, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "msg-a", history[0].ID)
}

func TestMessageStorage_GetMessagesSince(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	otherWorkspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)
	otherRoomID := createTestRoom(t, ctx, s, otherWorkspaceID, userID)

	// Лента покрывает весь workspace, независимо от комнаты
	messages := []*models.Message{
		{ID: "msg-a", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "a", CreatedAt: time.UnixMicro(100), ChangedAt: 100},
		{ID: "msg-b", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "b", CreatedAt: time.UnixMicro(200), ChangedAt: 200},
		{ID: "msg-c", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "c", CreatedAt: time.UnixMicro(300), ChangedAt: 300},
		{ID: "msg-x", WorkspaceID: otherWorkspaceID, RoomID: otherRoomID, AuthorID: userID, Body: "x", CreatedAt: time.UnixMicro(150), ChangedAt: 150},
	}
	for _, m := range messages {
		require.NoError(t, s.CreateMessage(ctx, m))
	}

	tests := []struct {
		after       *syncfeed.Position
		name        string
		expectedIDs []string
		limit       int
	}{
		{
			name:        "nil position returns everything in order",
			after:       nil,
			limit:       10,
			expectedIDs: []string{"msg-a", "msg-b", "msg-c"},
		},
		{
			name:        "strictly greater than given position",
			after:       &syncfeed.Position{ChangedAt: 100, ID: "msg-a"},
			limit:       10,
			expectedIDs: []string{"msg-b", "msg-c"},
		},
		{
			name:        "position past the end returns nothing",
			after:       &syncfeed.Position{ChangedAt: 300, ID: "msg-c"},
			limit:       10,
			expectedIDs: []string{},
		},
		{
			name:        "limit truncates the page",
			after:       nil,
			limit:       2,
			expectedIDs: []string{"msg-a", "msg-b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := s.GetMessagesSince(ctx, workspaceID, tt.after, tt.limit)
			require.NoError(t, err)
			require.Len(t, retrieved, len(tt.expectedIDs))

			for i, m := range retrieved {
				assert.Equal(t, tt.expectedIDs[i], m.ID)
				assert.Equal(t, workspaceID, m.WorkspaceID)
			}
		})
	}
}

func TestMessageStorage_GetMessagesSince_TieBreakByID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)

	// Одинаковый changed_at, порядок решает id
	messages := []*models.Message{
		{ID: "msg-b", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "b", CreatedAt: time.UnixMicro(100), ChangedAt: 500},
		{ID: "msg-a", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "a", CreatedAt: time.UnixMicro(200), ChangedAt: 500},
		{ID: "msg-c", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "c", CreatedAt: time.UnixMicro(300), ChangedAt: 500},
	}
	for _, m := range messages {
		require.NoError(t, s.CreateMessage(ctx, m))
	}

	all, err := s.GetMessagesSince(ctx, workspaceID, nil, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "msg-a", all[0].ID)
	assert.Equal(t, "msg-b", all[1].ID)
	assert.Equal(t, "msg-c", all[2].ID)

	// Позиция (500, msg-b) отсекает msg-a и msg-b, но не msg-c
	rest, err := s.GetMessagesSince(ctx, workspaceID, &syncfeed.Position{ChangedAt: 500, ID: "msg-b"}, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "msg-c", rest[0].ID)
}

func TestMessageStorage_GetMessagesSince_EditMovesMessage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	workspaceID := createTestWorkspace(t, ctx, s, userID)
	roomID := createTestRoom(t, ctx, s, workspaceID, userID)

	messages := []*models.Message{
		{ID: "msg-a", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "a", CreatedAt: time.UnixMicro(100), ChangedAt: 100},
		{ID: "msg-b", WorkspaceID: workspaceID, RoomID: roomID, AuthorID: userID, Body: "b", CreatedAt: time.UnixMicro(200), ChangedAt: 200},
	}
	for _, m := range messages {
		require.NoError(t, s.CreateMessage(ctx, m))
	}

	// После правки msg-a перемещается в конец ленты
	require.NoError(t, s.UpdateMessage(ctx, "msg-a", "a edited", 300))

	all, err := s.GetMessagesSince(ctx, workspaceID, nil, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "msg-b", all[0].ID)
	assert.Equal(t, "msg-a", all[1].ID)
	assert.Equal(t, "a edited", all[1].Body)

	// Клиент, стоящий на (200, msg-b), увидит только правку
	rest, err := s.GetMessagesSince(ctx, workspaceID, &syncfeed.Position{ChangedAt: 200, ID: "msg-b"}, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "msg-a", rest[0].ID)
}
