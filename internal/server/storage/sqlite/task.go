package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

// CreateTask stores a new task
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, workspace_id, title, description, status, assignee_id, created_by, created_at, changed_at, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.WorkspaceID,
		task.Title,
		task.Description,
		task.Status,
		task.AssigneeID,
		task.CreatedBy,
		task.CreatedAt.UnixMicro(),
		task.ChangedAt,
		boolToInt(task.Deleted),
	)

	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// GetTask retrieves a live (non-deleted) task by ID
func (s *Storage) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	query := `
		SELECT id, workspace_id, title, description, status, assignee_id, created_by, created_at, changed_at, deleted
		FROM tasks
		WHERE id = ? AND deleted = 0
	`

	task := &models.Task{}
	var deleted int
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, taskID).Scan(
		&task.ID,
		&task.WorkspaceID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.AssigneeID,
		&task.CreatedBy,
		&createdAt,
		&task.ChangedAt,
		&deleted,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	task.Deleted = intToBool(deleted)
	task.CreatedAt = microToTime(createdAt)
	return task, nil
}

// UpdateTask replaces the mutable fields of a live task and its
// change timestamp
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, assignee_id = ?, changed_at = ?
		WHERE id = ? AND deleted = 0
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.AssigneeID,
		task.ChangedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}
	return nil
}

// DeleteTask soft-deletes a task. The tombstone sorts in the change
// feed at deletion time
func (s *Storage) DeleteTask(ctx context.Context, taskID string, changedAt int64) error {
	query := `
		UPDATE tasks
		SET deleted = 1, changed_at = ?
		WHERE id = ? AND deleted = 0
	`

	result, err := s.db.ExecContext(ctx, query, changedAt, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}
	return nil
}

// GetWorkspaceTasks retrieves live tasks of a workspace ordered by
// creation time, optionally filtered by status
func (s *Storage) GetWorkspaceTasks(ctx context.Context, workspaceID, status string) ([]*models.Task, error) {
	query := `
		SELECT id, workspace_id, title, description, status, assignee_id, created_by, created_at, changed_at, deleted
		FROM tasks
		WHERE workspace_id = ? AND deleted = 0
		  AND (? = '' OR status = ?)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, workspaceID, status, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspace tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanTasks(rows)
}

// GetTasksSince retrieves workspace tasks (including deleted) with
// change position strictly greater than after, ascending by
// (changed_at, id). Pure read used by the sync engine
func (s *Storage) GetTasksSince(ctx context.Context, workspaceID string, after *syncfeed.Position, limit int) ([]*models.Task, error) {
	query := `
		SELECT id, workspace_id, title, description, status, assignee_id, created_by, created_at, changed_at, deleted
		FROM tasks
		WHERE workspace_id = ?
		  AND (changed_at > ? OR (changed_at = ? AND id > ?))
		ORDER BY changed_at ASC, id ASC
		LIMIT ?
	`

	pos := positionOrZero(after)
	rows, err := s.db.QueryContext(ctx, query, workspaceID, pos.ChangedAt, pos.ChangedAt, pos.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks since position: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanTasks(rows)
}

// scanTasks is a helper function to scan multiple tasks from rows
func (s *Storage) scanTasks(rows *sql.Rows) ([]*models.Task, error) {
	var tasks []*models.Task

	for rows.Next() {
		task := &models.Task{}
		var deleted int
		var createdAt int64

		err := rows.Scan(
			&task.ID,
			&task.WorkspaceID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.AssigneeID,
			&task.CreatedBy,
			&createdAt,
			&task.ChangedAt,
			&deleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		task.Deleted = intToBool(deleted)
		task.CreatedAt = microToTime(createdAt)
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return tasks, nil
}
