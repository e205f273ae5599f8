package storage

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
)

// WorkspaceStorage defines interface for workspace and membership persistence
type WorkspaceStorage interface {
	// CreateWorkspace creates a workspace and its owner membership atomically
	CreateWorkspace(ctx context.Context, workspace *models.Workspace) error

	// GetWorkspace retrieves workspace by ID
	// Returns ErrWorkspaceNotFound if workspace doesn't exist
	GetWorkspace(ctx context.Context, workspaceID string) (*models.Workspace, error)

	// GetUserWorkspaces retrieves all workspaces the user is a member of,
	// ordered by join time. Returns empty slice if none
	GetUserWorkspaces(ctx context.Context, userID string) ([]*models.Workspace, error)

	// AddMember adds a user to a workspace
	// Returns ErrWorkspaceNotFound if workspace doesn't exist,
	// ErrAlreadyMember if the user is already a member
	AddMember(ctx context.Context, membership *models.Membership) error

	// GetMembership retrieves the membership of a user in a workspace
	// Returns ErrNotMember if the user is not a member
	GetMembership(ctx context.Context, workspaceID, userID string) (*models.Membership, error)

	// GetMembers retrieves all memberships of a workspace with usernames,
	// ordered by join time
	GetMembers(ctx context.Context, workspaceID string) ([]*models.Membership, error)
}
