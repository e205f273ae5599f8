package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
)

// CreateWorkspace creates a workspace and its owner membership atomically
func (s *Storage) CreateWorkspace(ctx context.Context, workspace *models.Workspace) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, created_by, created_at) VALUES (?, ?, ?, ?)`,
		workspace.ID,
		workspace.Name,
		workspace.CreatedBy,
		workspace.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert workspace: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workspace_members (workspace_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`,
		workspace.ID,
		workspace.CreatedBy,
		models.RoleOwner,
		workspace.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetWorkspace retrieves workspace by ID
func (s *Storage) GetWorkspace(ctx context.Context, workspaceID string) (*models.Workspace, error) {
	query := `
		SELECT id, name, created_by, created_at
		FROM workspaces
		WHERE id = ?
	`

	workspace := &models.Workspace{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, workspaceID).Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.CreatedBy,
		&createdAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	workspace.CreatedAt = unixToTime(createdAt)
	return workspace, nil
}

// GetUserWorkspaces retrieves all workspaces the user is a member of
func (s *Storage) GetUserWorkspaces(ctx context.Context, userID string) ([]*models.Workspace, error) {
	query := `
		SELECT w.id, w.name, w.created_by, w.created_at
		FROM workspaces w
		JOIN workspace_members m ON m.workspace_id = w.id
		WHERE m.user_id = ?
		ORDER BY m.joined_at ASC, w.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user workspaces: %w", err)
	}
	defer func() { _ = rows.Close() }()

	workspaces := []*models.Workspace{}
	for rows.Next() {
		workspace := &models.Workspace{}
		var createdAt int64

		if err := rows.Scan(&workspace.ID, &workspace.Name, &workspace.CreatedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}

		workspace.CreatedAt = unixToTime(createdAt)
		workspaces = append(workspaces, workspace)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return workspaces, nil
}

// AddMember adds a user to a workspace
func (s *Storage) AddMember(ctx context.Context, membership *models.Membership) error {
	// Сначала убеждаемся, что workspace существует: FK на user_id
	// сработает сам, а составной PK не отличает "нет workspace"
	// от "уже участник"
	if _, err := s.GetWorkspace(ctx, membership.WorkspaceID); err != nil {
		return err
	}

	query := `
		INSERT INTO workspace_members (workspace_id, user_id, role, joined_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		membership.WorkspaceID,
		membership.UserID,
		membership.Role,
		membership.JoinedAt.Unix(),
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrAlreadyMember
		}
		return fmt.Errorf("failed to insert membership: %w", err)
	}

	return nil
}

// GetMembership retrieves the membership of a user in a workspace
func (s *Storage) GetMembership(ctx context.Context, workspaceID, userID string) (*models.Membership, error) {
	query := `
		SELECT m.workspace_id, m.user_id, u.username, m.role, m.joined_at
		FROM workspace_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.workspace_id = ? AND m.user_id = ?
	`

	membership := &models.Membership{}
	var joinedAt int64

	err := s.db.QueryRowContext(ctx, query, workspaceID, userID).Scan(
		&membership.WorkspaceID,
		&membership.UserID,
		&membership.Username,
		&membership.Role,
		&joinedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotMember
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	membership.JoinedAt = unixToTime(joinedAt)
	return membership, nil
}

// GetMembers retrieves all memberships of a workspace with usernames
func (s *Storage) GetMembers(ctx context.Context, workspaceID string) ([]*models.Membership, error) {
	query := `
		SELECT m.workspace_id, m.user_id, u.username, m.role, m.joined_at
		FROM workspace_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.workspace_id = ?
		ORDER BY m.joined_at ASC, m.user_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	members := []*models.Membership{}
	for rows.Next() {
		membership := &models.Membership{}
		var joinedAt int64

		err := rows.Scan(
			&membership.WorkspaceID,
			&membership.UserID,
			&membership.Username,
			&membership.Role,
			&joinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}

		membership.JoinedAt = unixToTime(joinedAt)
		members = append(members, membership)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return members, nil
}
