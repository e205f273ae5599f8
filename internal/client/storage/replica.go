package storage

import (
	"context"

	"github.com/iudanet/teamsync/pkg/api"
)

//go:generate moq -out replica_mock.go . ReplicaStorage

// ReplicaStorage defines interface for the local replica of server
// state: messages and tasks pulled through the sync feed. Writes are
// last-write-wins by changed_at, so re-applying an old page is a
// harmless no-op.
type ReplicaStorage interface {
	// UpsertMessage stores the message unless the replica already
	// holds a newer version. Returns true if the message was written.
	UpsertMessage(ctx context.Context, message *api.Message) (bool, error)

	// DeleteMessage removes a message by ID (tombstone from the
	// feed). Returns true if a message was actually removed.
	DeleteMessage(ctx context.Context, messageID string) (bool, error)

	// GetRoomMessages returns replica messages of a room sorted by
	// (created_at, id) ascending
	GetRoomMessages(ctx context.Context, roomID string) ([]*api.Message, error)

	// UpsertTask stores the task unless the replica already holds a
	// newer version. Returns true if the task was written.
	UpsertTask(ctx context.Context, task *api.Task) (bool, error)

	// DeleteTask removes a task by ID (tombstone from the feed).
	// Returns true if a task was actually removed.
	DeleteTask(ctx context.Context, taskID string) (bool, error)

	// GetWorkspaceTasks returns replica tasks of a workspace sorted
	// by (created_at, id) ascending
	GetWorkspaceTasks(ctx context.Context, workspaceID string) ([]*api.Task, error)
}
