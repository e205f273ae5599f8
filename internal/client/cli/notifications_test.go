package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/pkg/api"
)

func TestNotifications_List(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.ListNotificationsFunc = func(ctx context.Context, unreadOnly bool, limit int) ([]api.Notification, error) {
		assert.False(t, unreadOnly)
		assert.Equal(t, notificationsLimit, limit)
		return []api.Notification{
			{ID: "ntf-1", Kind: "message", Body: "alice: deploy is done", Read: false, CreatedAt: time.Now()},
			{ID: "ntf-2", Kind: "task", Body: "ship release", Read: true, CreatedAt: time.Now()},
		}, nil
	}

	err := tc.cli.Run(context.Background(), "notifications", []string{"list"})

	require.NoError(t, err)
	out := tc.out.String()
	assert.Contains(t, out, "ntf-1")
	assert.Contains(t, out, "(message) alice: deploy is done")
	assert.Contains(t, out, "(task) ship release")
	assert.Contains(t, out, "Total: 2")
}

func TestNotifications_ListUnread(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.ListNotificationsFunc = func(ctx context.Context, unreadOnly bool, limit int) ([]api.Notification, error) {
		assert.True(t, unreadOnly)
		return nil, nil
	}

	err := tc.cli.Run(context.Background(), "notifications", []string{"list", "unread"})

	require.NoError(t, err)
	assert.Contains(t, tc.out.String(), "No notifications")
}

func TestNotifications_DefaultsToList(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.ListNotificationsFunc = func(ctx context.Context, unreadOnly bool, limit int) ([]api.Notification, error) {
		assert.False(t, unreadOnly)
		return nil, nil
	}

	err := tc.cli.Run(context.Background(), "notifications", nil)

	require.NoError(t, err)
	assert.Len(t, tc.api.ListNotificationsCalls(), 1)
}

func TestNotifications_Read(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.MarkNotificationReadFunc = func(ctx context.Context, notificationID string) error {
		assert.Equal(t, "ntf-1", notificationID)
		return nil
	}

	err := tc.cli.Run(context.Background(), "notifications", []string{"read", "ntf-1"})

	require.NoError(t, err)
	assert.Contains(t, tc.out.String(), "✓ Notification marked as read")
}

func TestNotifications_ReadAll(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.MarkAllNotificationsReadFunc = func(ctx context.Context) (*api.MarkAllReadResponse, error) {
		return &api.MarkAllReadResponse{Updated: 5}, nil
	}

	err := tc.cli.Run(context.Background(), "notifications", []string{"read-all"})

	require.NoError(t, err)
	assert.Contains(t, tc.out.String(), "✓ Marked 5 notifications as read")
}
