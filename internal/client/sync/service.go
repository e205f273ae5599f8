// Package sync реализует клиентскую сторону протокола инкрементальной
// синхронизации: постраничное вытягивание ленты изменений workspace
// в локальную реплику.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/teamsync/internal/client/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
	"github.com/iudanet/teamsync/pkg/api"
)

//go:generate moq -out apiclient_mock.go . APIClient
//go:generate moq -out service_mock.go . Service

// pageLimit - размер страницы, запрашиваемый у сервера
const pageLimit = 200

// APIClient описывает часть HTTP клиента, нужную синхронизации
type APIClient interface {
	// Sync запрашивает страницу ленты изменений workspace
	Sync(ctx context.Context, workspaceID, cursor string, limit int) (*api.SyncResponse, error)
}

// Service определяет интерфейс сервиса синхронизации
type Service interface {
	// Run выполняет инкрементальную синхронизацию workspace:
	// тянет страницы ленты до null-курсора и применяет их к реплике
	Run(ctx context.Context, workspaceID string) (*Result, error)
}

// Result contains sync operation counters
type Result struct {
	Pages   int // сколько страниц ленты запрошено
	Pulled  int // сколько записей получено (живые + tombstone)
	Applied int // сколько живых записей записано в реплику
	Deleted int // сколько записей удалено по tombstone
}

// service pulls the workspace change feed into the local replica
type service struct {
	apiClient APIClient
	cursors   storage.CursorStorage
	replica   storage.ReplicaStorage
	logger    *slog.Logger
}

// NewService creates a new sync service
func NewService(apiClient APIClient, cursors storage.CursorStorage, replica storage.ReplicaStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		cursors:   cursors,
		replica:   replica,
		logger:    logger,
	}
}

// Run pulls feed pages until the server returns a null cursor.
// Применение идемпотентно: реплика пишется по правилу LWW, поэтому
// повторное применение страницы после сбоя безопасно.
func (s *service) Run(ctx context.Context, workspaceID string) (*Result, error) {
	cursor, err := s.loadCursor(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Starting synchronization",
		"workspace_id", workspaceID,
		"has_cursor", cursor != "")

	result := &Result{}

	for {
		resp, err := s.apiClient.Sync(ctx, workspaceID, cursor, pageLimit)
		if err != nil {
			// Курсор последней полностью применённой страницы уже
			// сохранён, следующий запуск продолжит с него
			return nil, fmt.Errorf("sync request failed: %w", err)
		}
		result.Pages++

		tail, tailSeen, err := s.applyPage(ctx, resp, result)
		if err != nil {
			return nil, err
		}

		if resp.NextCursor != nil {
			cursor = *resp.NextCursor
			if err := s.cursors.SaveCursor(ctx, workspaceID, cursor); err != nil {
				return nil, fmt.Errorf("failed to save cursor: %w", err)
			}
			continue
		}

		// Финальная страница. Сервер не вернул курсор, поэтому
		// запоминаем позицию последней живой записи: следующий
		// запуск продолжит с хвоста ленты вместо полного replay.
		if tailSeen {
			if err := s.cursors.SaveCursor(ctx, workspaceID, syncfeed.EncodeCursor(tail)); err != nil {
				return nil, fmt.Errorf("failed to save cursor: %w", err)
			}
		}
		break
	}

	s.logger.Info("Synchronization completed",
		"workspace_id", workspaceID,
		"pages", result.Pages,
		"pulled", result.Pulled,
		"applied", result.Applied,
		"deleted", result.Deleted)

	return result, nil
}

// loadCursor возвращает сохранённый курсор workspace.
// Отсутствие курсора - не ошибка, а полный replay ленты.
func (s *service) loadCursor(ctx context.Context, workspaceID string) (string, error) {
	cursor, err := s.cursors.GetCursor(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, storage.ErrCursorNotFound) {
			s.logger.Debug("No stored cursor, replaying feed from the beginning",
				"workspace_id", workspaceID)
			return "", nil
		}
		return "", fmt.Errorf("failed to load cursor: %w", err)
	}
	return cursor, nil
}

// applyPage применяет одну страницу ленты к реплике и возвращает
// позицию последней живой записи страницы (если такая была)
func (s *service) applyPage(ctx context.Context, resp *api.SyncResponse, result *Result) (syncfeed.Position, bool, error) {
	var tail syncfeed.Position
	tailSeen := false

	for i := range resp.Messages {
		msg := &resp.Messages[i]
		written, err := s.replica.UpsertMessage(ctx, msg)
		if err != nil {
			return tail, tailSeen, fmt.Errorf("failed to apply message %s: %w", msg.ID, err)
		}
		if written {
			result.Applied++
		}
		if pos := (syncfeed.Position{ID: msg.ID, ChangedAt: msg.ChangedAt}); tail.Less(pos) {
			tail = pos
			tailSeen = true
		}
	}

	for _, id := range resp.MessageTombstones {
		removed, err := s.replica.DeleteMessage(ctx, id)
		if err != nil {
			return tail, tailSeen, fmt.Errorf("failed to apply message tombstone %s: %w", id, err)
		}
		if removed {
			result.Deleted++
		}
	}

	for i := range resp.Tasks {
		task := &resp.Tasks[i]
		written, err := s.replica.UpsertTask(ctx, task)
		if err != nil {
			return tail, tailSeen, fmt.Errorf("failed to apply task %s: %w", task.ID, err)
		}
		if written {
			result.Applied++
		}
		if pos := (syncfeed.Position{ID: task.ID, ChangedAt: task.ChangedAt}); tail.Less(pos) {
			tail = pos
			tailSeen = true
		}
	}

	for _, id := range resp.TaskTombstones {
		removed, err := s.replica.DeleteTask(ctx, id)
		if err != nil {
			return tail, tailSeen, fmt.Errorf("failed to apply task tombstone %s: %w", id, err)
		}
		if removed {
			result.Deleted++
		}
	}

	pulled := len(resp.Messages) + len(resp.MessageTombstones) + len(resp.Tasks) + len(resp.TaskTombstones)
	result.Pulled += pulled

	s.logger.Debug("Applied feed page",
		"page", result.Pages,
		"records", pulled)

	return tail, tailSeen, nil
}
