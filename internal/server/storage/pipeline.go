package storage

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
)

// PipelineStorage defines interface for pipeline run persistence
type PipelineStorage interface {
	// CreateRun stores a run and its steps in one transaction
	CreateRun(ctx context.Context, run *models.PipelineRun) error

	// GetRun retrieves a run with its steps ordered by index
	// Returns ErrRunNotFound if run doesn't exist
	GetRun(ctx context.Context, runID string) (*models.PipelineRun, error)

	// GetWorkspaceRuns retrieves all runs of a workspace with steps,
	// newest first
	GetWorkspaceRuns(ctx context.Context, workspaceID string) ([]*models.PipelineRun, error)

	// UpdateRun persists run status, current step index and all step
	// rows in one transaction
	// Returns ErrRunNotFound if run doesn't exist
	UpdateRun(ctx context.Context, run *models.PipelineRun) error
}
