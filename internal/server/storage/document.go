package storage

import (
	"context"

	"github.com/iudanet/teamsync/internal/models"
)

// DocumentStorage defines interface for context document persistence
type DocumentStorage interface {
	// CreateDocument stores a new context document with its embedding
	CreateDocument(ctx context.Context, document *models.ContextDocument) error

	// GetDocument retrieves a context document by ID
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, documentID string) (*models.ContextDocument, error)

	// GetWorkspaceDocuments retrieves all context documents of a
	// workspace with embeddings, ordered by creation time
	GetWorkspaceDocuments(ctx context.Context, workspaceID string) ([]*models.ContextDocument, error)
}
