package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
)

// CreateRun stores a pipeline run and its steps in one transaction
func (s *Storage) CreateRun(ctx context.Context, run *models.PipelineRun) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runQuery := `
		INSERT INTO pipeline_runs (id, workspace_id, goal, status, current_step, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, runQuery,
		run.ID,
		run.WorkspaceID,
		run.Goal,
		run.Status,
		run.CurrentStep,
		run.CreatedBy,
		run.CreatedAt.Unix(),
		run.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stepQuery := `
		INSERT INTO pipeline_steps (run_id, idx, name, status, output, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for _, step := range run.Steps {
		_, err = tx.ExecContext(ctx, stepQuery,
			run.ID,
			step.Index,
			step.Name,
			step.Status,
			step.Output,
			step.UpdatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert step %d: %w", step.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRun retrieves a pipeline run with its steps ordered by index
func (s *Storage) GetRun(ctx context.Context, runID string) (*models.PipelineRun, error) {
	query := `
		SELECT id, workspace_id, goal, status, current_step, created_by, created_at, updated_at
		FROM pipeline_runs
		WHERE id = ?
	`

	run, err := scanRun(s.db.QueryRowContext(ctx, query, runID))
	if err != nil {
		return nil, err
	}

	run.Steps, err = s.getRunSteps(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// GetWorkspaceRuns retrieves all pipeline runs of a workspace with steps,
// newest first
func (s *Storage) GetWorkspaceRuns(ctx context.Context, workspaceID string) ([]*models.PipelineRun, error) {
	query := `
		SELECT id, workspace_id, goal, status, current_step, created_by, created_at, updated_at
		FROM pipeline_runs
		WHERE workspace_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	runs := []*models.PipelineRun{}
	for rows.Next() {
		run := &models.PipelineRun{}
		var createdAt, updatedAt int64

		err := rows.Scan(
			&run.ID,
			&run.WorkspaceID,
			&run.Goal,
			&run.Status,
			&run.CurrentStep,
			&run.CreatedBy,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.CreatedAt = unixToTime(createdAt)
		run.UpdatedAt = unixToTime(updatedAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	for _, run := range runs {
		run.Steps, err = s.getRunSteps(ctx, run.ID)
		if err != nil {
			return nil, err
		}
	}

	return runs, nil
}

// UpdateRun persists run status, current step index and all step rows
// in one transaction
func (s *Storage) UpdateRun(ctx context.Context, run *models.PipelineRun) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runQuery := `
		UPDATE pipeline_runs
		SET status = ?, current_step = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := tx.ExecContext(ctx, runQuery,
		run.Status,
		run.CurrentStep,
		run.UpdatedAt.Unix(),
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrRunNotFound
	}

	stepQuery := `
		UPDATE pipeline_steps
		SET status = ?, output = ?, updated_at = ?
		WHERE run_id = ? AND idx = ?
	`

	for _, step := range run.Steps {
		_, err = tx.ExecContext(ctx, stepQuery,
			step.Status,
			step.Output,
			step.UpdatedAt.Unix(),
			run.ID,
			step.Index,
		)
		if err != nil {
			return fmt.Errorf("failed to update step %d: %w", step.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// getRunSteps загружает шаги запуска в порядке индекса
func (s *Storage) getRunSteps(ctx context.Context, runID string) ([]*models.PipelineStep, error) {
	query := `
		SELECT run_id, idx, name, status, output, updated_at
		FROM pipeline_steps
		WHERE run_id = ?
		ORDER BY idx ASC
	`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	steps := []*models.PipelineStep{}
	for rows.Next() {
		step := &models.PipelineStep{}
		var updatedAt int64

		err := rows.Scan(
			&step.RunID,
			&step.Index,
			&step.Name,
			&step.Status,
			&step.Output,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}

		step.UpdatedAt = unixToTime(updatedAt)
		steps = append(steps, step)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return steps, nil
}

// scanRun сканирует одну строку pipeline_runs
func scanRun(row *sql.Row) (*models.PipelineRun, error) {
	run := &models.PipelineRun{}
	var createdAt, updatedAt int64

	err := row.Scan(
		&run.ID,
		&run.WorkspaceID,
		&run.Goal,
		&run.Status,
		&run.CurrentStep,
		&run.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	run.CreatedAt = unixToTime(createdAt)
	run.UpdatedAt = unixToTime(updatedAt)
	return run, nil
}
