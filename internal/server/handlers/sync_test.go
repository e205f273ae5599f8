package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/syncfeed"
	"github.com/iudanet/teamsync/pkg/api"
)

type syncFixture struct {
	handler    *SyncHandler
	messages   *mockMessageStorage
	tasks      *mockTaskStorage
	workspaces *mockWorkspaceStorage
}

// setupSyncHandler wires the real merge engine over in-memory feeds,
// message source registered before task source as in production
func setupSyncHandler(defaultLimit, maxLimit int) *syncFixture {
	f := &syncFixture{
		messages:   newMockMessageStorage(),
		tasks:      newMockTaskStorage(),
		workspaces: newMockWorkspaceStorage(),
	}
	engine := syncfeed.NewEngine(
		syncfeed.NewMessageSource(f.messages),
		syncfeed.NewTaskSource(f.tasks),
	)
	f.handler = NewSyncHandler(setupTestLogger(), engine, f.workspaces, defaultLimit, maxLimit)
	f.workspaces.seedWorkspace("ws-1", "backend team", "user-1")
	return f
}

// seedFeedMessage puts a message into the ws-1 change feed at the
// given position, optionally as a tombstone
func seedFeedMessage(m *mockMessageStorage, id string, changedAt int64, deleted bool) {
	m.messages[id] = &models.Message{
		ID:          id,
		WorkspaceID: "ws-1",
		RoomID:      "room-1",
		AuthorID:    "user-1",
		Body:        "body of " + id,
		CreatedAt:   time.Now(),
		ChangedAt:   changedAt,
		Deleted:     deleted,
	}
}

func seedFeedTask(m *mockTaskStorage, id string, changedAt int64, deleted bool) {
	m.tasks[id] = &models.Task{
		ID:          id,
		WorkspaceID: "ws-1",
		Title:       "title of " + id,
		Status:      models.TaskStatusTodo,
		CreatedBy:   "user-1",
		CreatedAt:   time.Now(),
		ChangedAt:   changedAt,
		Deleted:     deleted,
	}
}

func (f *syncFixture) sync(t *testing.T, query string) api.SyncResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/ws-1/sync"+query, nil)
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.Sync(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSyncHandler_KindSplit(t *testing.T) {
	f := setupSyncHandler(50, 200)
	seedFeedMessage(f.messages, "msg-1", 10, false)
	seedFeedTask(f.tasks, "task-1", 20, false)
	seedFeedMessage(f.messages, "msg-2", 30, true)
	seedFeedTask(f.tasks, "task-2", 40, true)

	resp := f.sync(t, "")

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "msg-1", resp.Messages[0].ID)
	assert.Equal(t, []string{"msg-2"}, resp.MessageTombstones)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "task-1", resp.Tasks[0].ID)
	assert.Equal(t, []string{"task-2"}, resp.TaskTombstones)
	assert.Nil(t, resp.NextCursor)
}

func TestSyncHandler_EmptyWorkspace(t *testing.T) {
	f := setupSyncHandler(50, 200)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/ws-1/sync", nil)
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.Sync(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Arrays serialize as [], never null
	assert.JSONEq(t, `{
		"next_cursor": null,
		"messages": [],
		"message_tombstones": [],
		"tasks": [],
		"task_tombstones": []
	}`, rec.Body.String())
}

// Drain the feed one record per page: every change shows up exactly
// once regardless of page size
func TestSyncHandler_Limit1_DrainsWithoutDupsOrLoss(t *testing.T) {
	f := setupSyncHandler(50, 200)
	seedFeedMessage(f.messages, "msg-1", 10, false)
	seedFeedTask(f.tasks, "task-1", 15, false)
	seedFeedMessage(f.messages, "msg-2", 20, false)
	seedFeedTask(f.tasks, "task-2", 25, true)
	seedFeedMessage(f.messages, "msg-3", 30, true)

	seen := map[string]int{}
	cursor := ""
	pages := 0
	for {
		query := "?limit=1"
		if cursor != "" {
			query += "&cursor=" + cursor
		}
		resp := f.sync(t, query)
		pages++

		for _, m := range resp.Messages {
			seen[m.ID]++
		}
		for _, id := range resp.MessageTombstones {
			seen[id]++
		}
		for _, tk := range resp.Tasks {
			seen[tk.ID]++
		}
		for _, id := range resp.TaskTombstones {
			seen[id]++
		}

		if resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
		require.Less(t, pages, 20, "cursor did not converge")
	}

	assert.Equal(t, map[string]int{
		"msg-1": 1, "msg-2": 1, "msg-3": 1,
		"task-1": 1, "task-2": 1,
	}, seen)
	assert.Equal(t, 5, pages)
}

func TestSyncHandler_MergedOrderAcrossSources(t *testing.T) {
	f := setupSyncHandler(50, 200)
	// Interleaved timestamps: merge follows (changed_at, id), not source
	seedFeedTask(f.tasks, "task-1", 10, false)
	seedFeedMessage(f.messages, "msg-1", 20, false)
	seedFeedTask(f.tasks, "task-2", 30, false)

	resp := f.sync(t, "?limit=2")

	// First page covers positions 10 and 20
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "task-1", resp.Tasks[0].ID)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "msg-1", resp.Messages[0].ID)
	require.NotNil(t, resp.NextCursor)

	resp = f.sync(t, "?limit=2&cursor="+*resp.NextCursor)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "task-2", resp.Tasks[0].ID)
	assert.Empty(t, resp.Messages)
	assert.Nil(t, resp.NextCursor)
}

func TestSyncHandler_EditReentersFeed(t *testing.T) {
	f := setupSyncHandler(50, 200)
	seedFeedMessage(f.messages, "msg-1", 10, false)
	seedFeedTask(f.tasks, "task-1", 20, false)

	// Client fully synced up to the task
	cursor := syncfeed.EncodeCursor(syncfeed.Position{ChangedAt: 20, ID: "task-1"})
	resp := f.sync(t, "?cursor="+cursor)
	assert.Empty(t, resp.Messages)
	assert.Empty(t, resp.Tasks)

	// Edit restamps the message past the client's cursor
	f.messages.messages["msg-1"].Body = "edited"
	f.messages.messages["msg-1"].ChangedAt = 30

	resp = f.sync(t, "?cursor="+cursor)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "msg-1", resp.Messages[0].ID)
	assert.Equal(t, "edited", resp.Messages[0].Body)
	assert.EqualValues(t, 30, resp.Messages[0].ChangedAt)
}

func TestSyncHandler_MalformedCursor_FullReplay(t *testing.T) {
	f := setupSyncHandler(50, 200)
	seedFeedMessage(f.messages, "msg-1", 10, false)

	resp := f.sync(t, "?cursor=%25%25garbage")

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "msg-1", resp.Messages[0].ID)
}

func TestSyncHandler_BadLimit(t *testing.T) {
	f := setupSyncHandler(50, 200)

	for _, limit := range []string{"0", "-1", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/ws-1/sync?limit="+limit, nil)
		req.SetPathValue("id", "ws-1")
		req = asUser(req, "user-1", "alice")
		rec := httptest.NewRecorder()

		f.handler.Sync(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestSyncHandler_NotMember(t *testing.T) {
	f := setupSyncHandler(50, 200)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/ws-1/sync", nil)
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-9", "mallory")
	rec := httptest.NewRecorder()

	f.handler.Sync(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSyncHandler_WorkspaceNotFound(t *testing.T) {
	f := setupSyncHandler(50, 200)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/missing/sync", nil)
	req.SetPathValue("id", "missing")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.Sync(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncHandler_OtherWorkspaceInvisible(t *testing.T) {
	f := setupSyncHandler(50, 200)
	seedFeedMessage(f.messages, "msg-1", 10, false)
	// Message in an unrelated workspace never leaks into ws-1 feed
	f.messages.messages["msg-other"] = &models.Message{
		ID:          "msg-other",
		WorkspaceID: "ws-2",
		RoomID:      "room-9",
		AuthorID:    "user-9",
		Body:        "other",
		CreatedAt:   time.Now(),
		ChangedAt:   5,
	}

	resp := f.sync(t, "")

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "msg-1", resp.Messages[0].ID)
}
