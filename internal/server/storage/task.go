package storage

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

// TaskStorage defines interface for task persistence.
// GetTasksSince makes the implementation a change-source feed
// for the workspace sync engine.
type TaskStorage interface {
	// CreateTask stores a new task
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a live (non-deleted) task by ID
	// Returns ErrTaskNotFound if task doesn't exist or is deleted
	GetTask(ctx context.Context, taskID string) (*models.Task, error)

	// UpdateTask replaces the mutable fields of a live task
	// (title, description, status, assignee) and its change timestamp
	// Returns ErrTaskNotFound if task doesn't exist or is deleted
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask soft-deletes a task, restamping the change timestamp
	// so the tombstone sorts at deletion time
	// Returns ErrTaskNotFound if task doesn't exist or is deleted
	DeleteTask(ctx context.Context, taskID string, changedAt int64) error

	// GetWorkspaceTasks retrieves live tasks of a workspace ordered by
	// creation time, optionally filtered by status ("" = all)
	GetWorkspaceTasks(ctx context.Context, workspaceID, status string) ([]*models.Task, error)

	// GetTasksSince retrieves workspace tasks (including deleted) with
	// change position strictly greater than after, ascending by
	// (changed_at, id), at most limit. Pure read
	GetTasksSince(ctx context.Context, workspaceID string, after *syncfeed.Position, limit int) ([]*models.Task, error)
}
