package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/teamsync/internal/client/storage"
)

// SaveCursor stores the sync cursor for a workspace
func (s *Storage) SaveCursor(ctx context.Context, workspaceID, cursor string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCursors)
		if bucket == nil {
			return fmt.Errorf("cursors bucket not found")
		}

		if err := bucket.Put([]byte(workspaceID), []byte(cursor)); err != nil {
			return fmt.Errorf("failed to save cursor: %w", err)
		}

		return nil
	})
}

// GetCursor retrieves the stored sync cursor for a workspace
func (s *Storage) GetCursor(ctx context.Context, workspaceID string) (string, error) {
	var cursor string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCursors)
		if bucket == nil {
			return fmt.Errorf("cursors bucket not found")
		}

		data := bucket.Get([]byte(workspaceID))
		if data == nil {
			return storage.ErrCursorNotFound
		}

		cursor = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return cursor, nil
}

// DeleteCursor removes the stored cursor for a workspace
func (s *Storage) DeleteCursor(ctx context.Context, workspaceID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCursors)
		if bucket == nil {
			return fmt.Errorf("cursors bucket not found")
		}

		if bucket.Get([]byte(workspaceID)) == nil {
			return storage.ErrCursorNotFound
		}

		if err := bucket.Delete([]byte(workspaceID)); err != nil {
			return fmt.Errorf("failed to delete cursor: %w", err)
		}

		return nil
	})
}
