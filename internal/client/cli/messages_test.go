package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/pkg/api"
)

func TestPost_JoinsTextArgs(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.PostMessageFunc = func(ctx context.Context, roomID string, req api.PostMessageRequest) (*api.Message, error) {
		assert.Equal(t, "room-1", roomID)
		assert.Equal(t, "deploy is done", req.Body)
		return &api.Message{ID: "msg-1", RoomID: roomID, Body: req.Body}, nil
	}

	err := tc.cli.Run(context.Background(), "post", []string{"room-1", "deploy", "is", "done"})

	require.NoError(t, err)
	assert.Contains(t, tc.out.String(), "✓ Message posted")
	assert.Contains(t, tc.out.String(), "msg-1")
}

func TestPost_MissingArgs(t *testing.T) {
	tc := newTestCli()

	err := tc.cli.Run(context.Background(), "post", []string{"room-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Usage: teamsync post")
	assert.Empty(t, tc.api.PostMessageCalls())
}

// Listing messages reads the local replica and must work offline,
// without a saved session and without touching the API.
func TestMessages_ListReadsReplicaOffline(t *testing.T) {
	tc := newTestCli()
	tc.replica.GetRoomMessagesFunc = func(ctx context.Context, roomID string) ([]*api.Message, error) {
		assert.Equal(t, "room-1", roomID)
		return []*api.Message{
			{ID: "msg-1", RoomID: roomID, AuthorID: "user-1", Body: "first", CreatedAt: time.Now()},
			{ID: "msg-2", RoomID: roomID, AuthorID: "user-2", Body: "second", CreatedAt: time.Now()},
		}, nil
	}

	err := tc.cli.Run(context.Background(), "messages", []string{"list", "room-1"})

	require.NoError(t, err)
	out := tc.out.String()
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "Total: 2")
	assert.Empty(t, tc.sessions.GetSessionCalls())
	assert.Empty(t, tc.api.SetTokenCalls())
}

func TestMessages_ListEmptyReplicaHintsSync(t *testing.T) {
	tc := newTestCli()
	tc.replica.GetRoomMessagesFunc = func(ctx context.Context, roomID string) ([]*api.Message, error) {
		return nil, nil
	}

	err := tc.cli.Run(context.Background(), "messages", []string{"list", "room-1"})

	require.NoError(t, err)
	assert.Contains(t, tc.out.String(), "No messages in local replica")
	assert.Contains(t, tc.out.String(), "teamsync sync")
}

func TestMessages_Edit(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.EditMessageFunc = func(ctx context.Context, messageID string, req api.EditMessageRequest) (*api.Message, error) {
		assert.Equal(t, "msg-1", messageID)
		assert.Equal(t, "fixed text", req.Body)
		return &api.Message{ID: messageID, Body: req.Body}, nil
	}

	err := tc.cli.Run(context.Background(), "messages", []string{"edit", "msg-1", "fixed", "text"})

	require.NoError(t, err)
	assert.Contains(t, tc.out.String(), "✓ Message updated")
}

func TestMessages_Delete(t *testing.T) {
	tc := newTestCli()
	tc.withSession()
	tc.api.DeleteMessageFunc = func(ctx context.Context, messageID string) error {
		assert.Equal(t, "msg-1", messageID)
		return nil
	}

	err := tc.cli.Run(context.Background(), "messages", []string{"delete", "msg-1"})

	require.NoError(t, err)
	assert.Contains(t, tc.out.String(), "✓ Message deleted")
}

func TestMessages_UnknownSubcommand(t *testing.T) {
	tc := newTestCli()

	err := tc.cli.Run(context.Background(), "messages", []string{"purge"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown messages subcommand: purge")
}
