package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
	"github.com/iudanet/teamsync/pkg/api"
)

// SyncHandler обрабатывает инкрементальную синхронизацию workspace
type SyncHandler struct {
	logger       *slog.Logger
	engine       *syncfeed.Engine
	workspaces   storage.WorkspaceStorage
	defaultLimit int
	maxLimit     int
}

// NewSyncHandler создает новый handler синхронизации
func NewSyncHandler(logger *slog.Logger, engine *syncfeed.Engine, workspaces storage.WorkspaceStorage, defaultLimit, maxLimit int) *SyncHandler {
	return &SyncHandler{
		logger:       logger,
		engine:       engine,
		workspaces:   workspaces,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Sync обрабатывает GET /api/v1/workspaces/{id}/sync?cursor=&limit=
// Одна страница слитой ленты изменений workspace: живые сообщения и
// задачи вперемешку с tombstone'ами, в детерминированном порядке
// (changed_at, id). Членство проверяется здесь; движок доверяет scope.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Битый курсор эквивалентен отсутствующему: полный replay
	cursor := r.URL.Query().Get("cursor")

	page, err := h.engine.Sync(ctx, workspaceID, cursor, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync failed",
			slog.String("workspace_id", workspaceID),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.SyncResponse{
		NextCursor:        optionalCursor(page.NextCursor),
		Messages:          make([]api.Message, 0, len(page.Messages)),
		MessageTombstones: page.MessageTombstones,
		Tasks:             make([]api.Task, 0, len(page.Tasks)),
		TaskTombstones:    page.TaskTombstones,
	}
	for _, m := range page.Messages {
		resp.Messages = append(resp.Messages, toAPIMessage(m))
	}
	for _, t := range page.Tasks {
		resp.Tasks = append(resp.Tasks, toAPITask(t))
	}

	h.logger.DebugContext(ctx, "sync page served",
		slog.String("workspace_id", workspaceID),
		slog.Int("messages", len(resp.Messages)),
		slog.Int("message_tombstones", len(resp.MessageTombstones)),
		slog.Int("tasks", len(resp.Tasks)),
		slog.Int("task_tombstones", len(resp.TaskTombstones)),
		slog.Bool("has_more", page.NextCursor != ""))

	sendJSON(h.logger, w, resp, http.StatusOK)
}
