package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/pkg/api"
)

func setupRoomHandler() (*RoomHandler, *mockRoomStorage, *mockWorkspaceStorage) {
	rooms := newMockRoomStorage()
	workspaces := newMockWorkspaceStorage()
	h := NewRoomHandler(setupTestLogger(), rooms, workspaces)
	return h, rooms, workspaces
}

func TestRoomHandler_Create(t *testing.T) {
	h, rooms, workspaces := setupRoomHandler()
	workspaces.seedWorkspace("ws-1", "backend team", "user-1")

	body := `{"name": "general", "topic": "water cooler"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces/ws-1/rooms", strings.NewReader(body))
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ws-1", resp.WorkspaceID)
	assert.Equal(t, "general", resp.Name)
	assert.Equal(t, "water cooler", resp.Topic)
	assert.Equal(t, "user-1", resp.CreatedBy)

	assert.Len(t, rooms.rooms, 1)
}

func TestRoomHandler_Create_EmptyName(t *testing.T) {
	h, _, workspaces := setupRoomHandler()
	workspaces.seedWorkspace("ws-1", "backend team", "user-1")

	body := `{"name": ""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces/ws-1/rooms", strings.NewReader(body))
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoomHandler_Create_NotMember(t *testing.T) {
	h, _, workspaces := setupRoomHandler()
	workspaces.seedWorkspace("ws-1", "backend team", "user-1")

	body := `{"name": "general"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces/ws-1/rooms", strings.NewReader(body))
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-2", "bob")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoomHandler_Create_WorkspaceNotFound(t *testing.T) {
	h, _, _ := setupRoomHandler()

	body := `{"name": "general"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces/missing/rooms", strings.NewReader(body))
	req.SetPathValue("id", "missing")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoomHandler_List(t *testing.T) {
	h, rooms, workspaces := setupRoomHandler()
	workspaces.seedWorkspace("ws-1", "backend team", "user-1")
	rooms.rooms["room-1"] = &models.Room{ID: "room-1", WorkspaceID: "ws-1", Name: "general"}
	rooms.rooms["room-2"] = &models.Room{ID: "room-2", WorkspaceID: "ws-1", Name: "random"}
	rooms.rooms["room-3"] = &models.Room{ID: "room-3", WorkspaceID: "ws-other", Name: "foreign"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/ws-1/rooms", nil)
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestRoomHandler_List_Empty(t *testing.T) {
	h, _, workspaces := setupRoomHandler()
	workspaces.seedWorkspace("ws-1", "backend team", "user-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/ws-1/rooms", nil)
	req.SetPathValue("id", "ws-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Empty list, not null
	assert.JSONEq(t, `[]`, rec.Body.String())
}
