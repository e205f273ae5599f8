package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/pkg/api"
)

type notificationFixture struct {
	handler       *NotificationHandler
	notifications *mockNotificationStorage
}

func setupNotificationHandler() *notificationFixture {
	f := &notificationFixture{notifications: newMockNotificationStorage()}
	f.handler = NewNotificationHandler(setupTestLogger(), f.notifications, 50, 200)
	return f
}

func (f *notificationFixture) seedNotification(id, userID string, read bool, age time.Duration) {
	f.notifications.notifications = append(f.notifications.notifications, &models.Notification{
		ID:          id,
		WorkspaceID: "ws-1",
		UserID:      userID,
		Kind:        models.NotificationKindMessage,
		RefID:       "msg-1",
		Body:        "snippet for " + id,
		Read:        read,
		CreatedAt:   time.Now().Add(-age),
	})
}

func TestNotificationHandler_List(t *testing.T) {
	f := setupNotificationHandler()
	f.seedNotification("n-old", "user-1", false, 2*time.Hour)
	f.seedNotification("n-new", "user-1", false, time.Minute)
	f.seedNotification("n-foreign", "user-2", false, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Own notifications only, newest first
	require.Len(t, resp, 2)
	assert.Equal(t, "n-new", resp[0].ID)
	assert.Equal(t, "n-old", resp[1].ID)
}

func TestNotificationHandler_List_UnreadOnly(t *testing.T) {
	f := setupNotificationHandler()
	f.seedNotification("n-read", "user-1", true, time.Hour)
	f.seedNotification("n-unread", "user-1", false, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?unread=true", nil)
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "n-unread", resp[0].ID)
}

func TestNotificationHandler_List_Limit(t *testing.T) {
	f := setupNotificationHandler()
	for i := 0; i < 5; i++ {
		f.seedNotification(fmt.Sprintf("n-%d", i), "user-1", false, time.Duration(i)*time.Minute)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=3", nil)
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 3)
}

func TestNotificationHandler_List_BadLimit(t *testing.T) {
	f := setupNotificationHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=nope", nil)
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_List_Empty(t *testing.T) {
	f := setupNotificationHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	f := setupNotificationHandler()
	f.seedNotification("n-1", "user-1", false, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/n-1/read", nil)
	req.SetPathValue("id", "n-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.MarkRead(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, f.notifications.notifications[0].Read)
}

func TestNotificationHandler_MarkRead_Foreign(t *testing.T) {
	f := setupNotificationHandler()
	f.seedNotification("n-1", "user-2", false, time.Minute)

	// Someone else's notification looks like a missing one
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/n-1/read", nil)
	req.SetPathValue("id", "n-1")
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.MarkRead(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, f.notifications.notifications[0].Read)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	f := setupNotificationHandler()
	f.seedNotification("n-1", "user-1", false, time.Hour)
	f.seedNotification("n-2", "user-1", false, time.Minute)
	f.seedNotification("n-3", "user-1", true, time.Second)
	f.seedNotification("n-foreign", "user-2", false, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", nil)
	req = asUser(req, "user-1", "alice")
	rec := httptest.NewRecorder()

	f.handler.MarkAllRead(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated": 2}`, rec.Body.String())

	// Other users untouched
	for _, n := range f.notifications.notifications {
		if n.UserID == "user-2" {
			assert.False(t, n.Read)
		}
	}

	// Second pass finds nothing left to mark
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", nil)
	req = asUser(req, "user-1", "alice")
	f.handler.MarkAllRead(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated": 0}`, rec.Body.String())
}
