package storage

import "context"

//go:generate moq -out cursor_mock.go . CursorStorage

// CursorStorage defines interface for persisting sync cursors.
// One cursor per workspace: the opaque continuation token of the
// last fully applied change-feed page.
type CursorStorage interface {
	// SaveCursor stores the cursor for a workspace
	SaveCursor(ctx context.Context, workspaceID, cursor string) error

	// GetCursor retrieves the stored cursor for a workspace.
	// Returns ErrCursorNotFound if the workspace was never synced.
	GetCursor(ctx context.Context, workspaceID string) (string, error)

	// DeleteCursor removes the cursor for a workspace, forcing the
	// next sync to replay the feed from the beginning
	DeleteCursor(ctx context.Context, workspaceID string) error
}
