package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/pkg/api"
)

func testMessage(id, roomID string, changedAt int64, createdAt time.Time) *api.Message {
	return &api.Message{
		ID:          id,
		WorkspaceID: "ws-1",
		RoomID:      roomID,
		AuthorID:    "user-1",
		Body:        "body of " + id,
		CreatedAt:   createdAt,
		ChangedAt:   changedAt,
	}
}

func testTask(id, workspaceID string, changedAt int64, createdAt time.Time) *api.Task {
	return &api.Task{
		ID:          id,
		WorkspaceID: workspaceID,
		Title:       "title of " + id,
		Status:      "todo",
		CreatedBy:   "user-1",
		CreatedAt:   createdAt,
		ChangedAt:   changedAt,
	}
}

func TestUpsertMessage_New(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	written, err := store.UpsertMessage(ctx, testMessage("msg-1", "room-1", 100, time.Now()))
	require.NoError(t, err)
	assert.True(t, written)

	messages, err := store.GetRoomMessages(ctx, "room-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-1", messages[0].ID)
}

func TestUpsertMessage_NewerWins(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	createdAt := time.Now()

	_, err := store.UpsertMessage(ctx, testMessage("msg-1", "room-1", 100, createdAt))
	require.NoError(t, err)

	edited := testMessage("msg-1", "room-1", 200, createdAt)
	edited.Body = "edited body"

	written, err := store.UpsertMessage(ctx, edited)
	require.NoError(t, err)
	assert.True(t, written)

	messages, err := store.GetRoomMessages(ctx, "room-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "edited body", messages[0].Body)
	assert.Equal(t, int64(200), messages[0].ChangedAt)
}

func TestUpsertMessage_StaleSkipped(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	createdAt := time.Now()

	_, err := store.UpsertMessage(ctx, testMessage("msg-1", "room-1", 200, createdAt))
	require.NoError(t, err)

	// Re-applying an older (or equal) version must not roll back
	stale := testMessage("msg-1", "room-1", 100, createdAt)
	stale.Body = "stale body"

	written, err := store.UpsertMessage(ctx, stale)
	require.NoError(t, err)
	assert.False(t, written)

	same := testMessage("msg-1", "room-1", 200, createdAt)
	same.Body = "same clock body"

	written, err = store.UpsertMessage(ctx, same)
	require.NoError(t, err)
	assert.False(t, written)

	messages, err := store.GetRoomMessages(ctx, "room-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "body of msg-1", messages[0].Body)
}

func TestDeleteMessage(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.UpsertMessage(ctx, testMessage("msg-1", "room-1", 100, time.Now()))
	require.NoError(t, err)

	removed, err := store.DeleteMessage(ctx, "msg-1")
	require.NoError(t, err)
	assert.True(t, removed)

	messages, err := store.GetRoomMessages(ctx, "room-1")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestDeleteMessage_MissingIsNotError(t *testing.T) {
	store := newTestStorage(t)

	removed, err := store.DeleteMessage(context.Background(), "msg-unknown")

	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetRoomMessages_FiltersAndSorts(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	// Insert out of order, with a created_at collision on msg-b/msg-a
	_, err := store.UpsertMessage(ctx, testMessage("msg-c", "room-1", 3, base.Add(2*time.Second)))
	require.NoError(t, err)
	_, err = store.UpsertMessage(ctx, testMessage("msg-b", "room-1", 2, base))
	require.NoError(t, err)
	_, err = store.UpsertMessage(ctx, testMessage("msg-a", "room-1", 1, base))
	require.NoError(t, err)
	_, err = store.UpsertMessage(ctx, testMessage("msg-x", "room-2", 4, base))
	require.NoError(t, err)

	messages, err := store.GetRoomMessages(ctx, "room-1")
	require.NoError(t, err)

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"msg-a", "msg-b", "msg-c"}, ids)
}

func TestGetRoomMessages_Empty(t *testing.T) {
	store := newTestStorage(t)

	messages, err := store.GetRoomMessages(context.Background(), "room-1")

	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestUpsertTask_LWW(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	createdAt := time.Now()

	written, err := store.UpsertTask(ctx, testTask("task-1", "ws-1", 100, createdAt))
	require.NoError(t, err)
	assert.True(t, written)

	updated := testTask("task-1", "ws-1", 200, createdAt)
	updated.Status = "done"

	written, err = store.UpsertTask(ctx, updated)
	require.NoError(t, err)
	assert.True(t, written)

	stale := testTask("task-1", "ws-1", 150, createdAt)
	stale.Status = "in_progress"

	written, err = store.UpsertTask(ctx, stale)
	require.NoError(t, err)
	assert.False(t, written)

	tasks, err := store.GetWorkspaceTasks(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "done", tasks[0].Status)
}

func TestDeleteTask(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.UpsertTask(ctx, testTask("task-1", "ws-1", 100, time.Now()))
	require.NoError(t, err)

	removed, err := store.DeleteTask(ctx, "task-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.DeleteTask(ctx, "task-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetWorkspaceTasks_FiltersAndSorts(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	_, err := store.UpsertTask(ctx, testTask("task-b", "ws-1", 2, base.Add(time.Second)))
	require.NoError(t, err)
	_, err = store.UpsertTask(ctx, testTask("task-a", "ws-1", 1, base))
	require.NoError(t, err)
	_, err = store.UpsertTask(ctx, testTask("task-x", "ws-2", 3, base))
	require.NoError(t, err)

	tasks, err := store.GetWorkspaceTasks(ctx, "ws-1")
	require.NoError(t, err)

	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"task-a", "task-b"}, ids)
}
