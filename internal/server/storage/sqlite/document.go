package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
)

// CreateDocument stores a new context document with its embedding
func (s *Storage) CreateDocument(ctx context.Context, document *models.ContextDocument) error {
	query := `
		INSERT INTO context_documents (id, workspace_id, title, content, embedding, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		document.ID,
		document.WorkspaceID,
		document.Title,
		document.Content,
		encodeEmbedding(document.Embedding),
		document.CreatedBy,
		document.CreatedAt.Unix(),
		document.UpdatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

// GetDocument retrieves a context document by ID
func (s *Storage) GetDocument(ctx context.Context, documentID string) (*models.ContextDocument, error) {
	query := `
		SELECT id, workspace_id, title, content, embedding, created_by, created_at, updated_at
		FROM context_documents
		WHERE id = ?
	`

	document := &models.ContextDocument{}
	var embedding []byte
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, query, documentID).Scan(
		&document.ID,
		&document.WorkspaceID,
		&document.Title,
		&document.Content,
		&embedding,
		&document.CreatedBy,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	document.Embedding = decodeEmbedding(embedding)
	document.CreatedAt = unixToTime(createdAt)
	document.UpdatedAt = unixToTime(updatedAt)
	return document, nil
}

// GetWorkspaceDocuments retrieves all context documents of a workspace
// with embeddings, ordered by creation time
func (s *Storage) GetWorkspaceDocuments(ctx context.Context, workspaceID string) ([]*models.ContextDocument, error) {
	query := `
		SELECT id, workspace_id, title, content, embedding, created_by, created_at, updated_at
		FROM context_documents
		WHERE workspace_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	documents := []*models.ContextDocument{}
	for rows.Next() {
		document := &models.ContextDocument{}
		var embedding []byte
		var createdAt, updatedAt int64

		err := rows.Scan(
			&document.ID,
			&document.WorkspaceID,
			&document.Title,
			&document.Content,
			&embedding,
			&document.CreatedBy,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		document.Embedding = decodeEmbedding(embedding)
		document.CreatedAt = unixToTime(createdAt)
		document.UpdatedAt = unixToTime(updatedAt)
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return documents, nil
}

// encodeEmbedding сериализует вектор в little-endian float32 blob
func encodeEmbedding(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// decodeEmbedding разбирает little-endian float32 blob обратно в вектор
func decodeEmbedding(buf []byte) []float32 {
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return vec
}
