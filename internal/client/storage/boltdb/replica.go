package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/teamsync/pkg/api"
)

// UpsertMessage stores the message unless the replica already holds
// a newer version (LWW by changed_at, id as tie-break)
func (s *Storage) UpsertMessage(ctx context.Context, message *api.Message) (bool, error) {
	written := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMessages)
		if bucket == nil {
			return fmt.Errorf("messages bucket not found")
		}

		key := []byte(message.ID)

		// Повторное применение страницы не должно откатывать
		// более свежую версию
		if data := bucket.Get(key); data != nil {
			var existing api.Message
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal existing message: %w", err)
			}
			if existing.ChangedAt >= message.ChangedAt {
				return nil
			}
		}

		data, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save message: %w", err)
		}

		written = true
		return nil
	})

	return written, err
}

// DeleteMessage removes a message by ID
func (s *Storage) DeleteMessage(ctx context.Context, messageID string) (bool, error) {
	removed := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMessages)
		if bucket == nil {
			return fmt.Errorf("messages bucket not found")
		}

		key := []byte(messageID)
		if bucket.Get(key) == nil {
			// Tombstone для записи, которой у нас нет - не ошибка
			return nil
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete message: %w", err)
		}

		removed = true
		return nil
	})

	return removed, err
}

// GetRoomMessages returns replica messages of a room sorted by
// (created_at, id) ascending
func (s *Storage) GetRoomMessages(ctx context.Context, roomID string) ([]*api.Message, error) {
	var messages []*api.Message

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMessages)
		if bucket == nil {
			return fmt.Errorf("messages bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			message := &api.Message{}
			if err := json.Unmarshal(v, message); err != nil {
				return fmt.Errorf("failed to unmarshal message: %w", err)
			}

			if message.RoomID == roomID {
				messages = append(messages, message)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].CreatedAt.Before(messages[j].CreatedAt)
		}
		return messages[i].ID < messages[j].ID
	})

	return messages, nil
}

// UpsertTask stores the task unless the replica already holds a
// newer version (LWW by changed_at)
func (s *Storage) UpsertTask(ctx context.Context, task *api.Task) (bool, error) {
	written := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return fmt.Errorf("tasks bucket not found")
		}

		key := []byte(task.ID)

		if data := bucket.Get(key); data != nil {
			var existing api.Task
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal existing task: %w", err)
			}
			if existing.ChangedAt >= task.ChangedAt {
				return nil
			}
		}

		data, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to marshal task: %w", err)
		}
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}

		written = true
		return nil
	})

	return written, err
}

// DeleteTask removes a task by ID
func (s *Storage) DeleteTask(ctx context.Context, taskID string) (bool, error) {
	removed := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return fmt.Errorf("tasks bucket not found")
		}

		key := []byte(taskID)
		if bucket.Get(key) == nil {
			return nil
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		removed = true
		return nil
	})

	return removed, err
}

// GetWorkspaceTasks returns replica tasks of a workspace sorted by
// (created_at, id) ascending
func (s *Storage) GetWorkspaceTasks(ctx context.Context, workspaceID string) ([]*api.Task, error) {
	var tasks []*api.Task

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return fmt.Errorf("tasks bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			task := &api.Task{}
			if err := json.Unmarshal(v, task); err != nil {
				return fmt.Errorf("failed to unmarshal task: %w", err)
			}

			if task.WorkspaceID == workspaceID {
				tasks = append(tasks, task)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})

	return tasks, nil
}
