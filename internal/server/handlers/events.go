package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
	"github.com/iudanet/teamsync/pkg/api"
)

// EventsHandler стримит ленту изменений workspace как Server-Sent
// Events: polling поверх того же движка, что и /sync. Каждая запись
// ленты - одно событие; id события равен курсору этой записи, так что
// Last-Event-ID при переподключении продолжает ленту без потерь.
type EventsHandler struct {
	logger       *slog.Logger
	engine       *syncfeed.Engine
	workspaces   storage.WorkspaceStorage
	pollInterval time.Duration
	batchLimit   int
}

// NewEventsHandler создает новый SSE handler
func NewEventsHandler(logger *slog.Logger, engine *syncfeed.Engine, workspaces storage.WorkspaceStorage, pollInterval time.Duration, batchLimit int) *EventsHandler {
	return &EventsHandler{
		logger:       logger,
		engine:       engine,
		workspaces:   workspaces,
		pollInterval: pollInterval,
		batchLimit:   batchLimit,
	}
}

// Stream обрабатывает GET /api/v1/workspaces/{id}/events?cursor=
// Держит соединение открытым до отключения клиента. Типы событий:
// message, task, message_deleted, task_deleted. Между опросами без
// изменений шлется heartbeat-комментарий.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.ErrorContext(ctx, "response writer does not support streaming")
		sendError(h.logger, w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Last-Event-ID при переподключении важнее query параметра
	cursor := r.URL.Query().Get("cursor")
	if lastID := r.Header.Get("Last-Event-ID"); lastID != "" {
		cursor = lastID
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.InfoContext(ctx, "event stream opened",
		slog.String("workspace_id", workspaceID),
		slog.String("user_id", userID))

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for {
		sent, err := h.push(ctx, w, flusher, workspaceID, &cursor)
		if err != nil {
			// Обрыв соединения или ошибка источника: клиент
			// переподключится с Last-Event-ID
			h.logger.WarnContext(ctx, "event stream closed",
				slog.String("workspace_id", workspaceID),
				slog.Any("error", err))
			return
		}

		if sent == 0 {
			// Комментарий держит соединение живым через прокси
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}

		select {
		case <-ctx.Done():
			h.logger.InfoContext(ctx, "event stream disconnected",
				slog.String("workspace_id", workspaceID))
			return
		case <-ticker.C:
		}
	}
}

// push выдает все накопившиеся изменения после cursor и сдвигает его
// на позицию последней отправленной записи
func (h *EventsHandler) push(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, workspaceID string, cursor *string) (int, error) {
	sent := 0
	for {
		records, next, err := h.engine.Changes(ctx, workspaceID, *cursor, h.batchLimit)
		if err != nil {
			return sent, err
		}

		for _, rec := range records {
			id := syncfeed.EncodeCursor(rec.Position)
			if err := writeRecord(w, rec, id); err != nil {
				return sent, err
			}
			*cursor = id
			sent++
		}
		if len(records) > 0 {
			flusher.Flush()
		}

		if next == "" {
			return sent, nil
		}
	}
}

// writeRecord пишет одну запись ленты как SSE событие
func writeRecord(w io.Writer, rec syncfeed.Record, id string) error {
	switch rec.Kind {
	case syncfeed.KindMessage:
		if rec.Deleted {
			return writeEvent(w, "message_deleted", id, api.TombstoneEvent{ID: rec.Position.ID})
		}
		return writeEvent(w, "message", id, toAPIMessage(rec.Message))
	case syncfeed.KindTask:
		if rec.Deleted {
			return writeEvent(w, "task_deleted", id, api.TombstoneEvent{ID: rec.Position.ID})
		}
		return writeEvent(w, "task", id, toAPITask(rec.Task))
	}
	return nil
}

// writeEvent пишет одно SSE событие c именем, id и JSON payload
func writeEvent(w io.Writer, event, id string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	_, err = fmt.Fprintf(w, "event: %s\nid: %s\ndata: %s\n\n", event, id, payload)
	return err
}
