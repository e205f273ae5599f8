package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/teamsync/internal/hlc"
	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
	"github.com/iudanet/teamsync/internal/validation"
	"github.com/iudanet/teamsync/pkg/api"
)

// MessageHandler обрабатывает запросы сообщений
type MessageHandler struct {
	logger       *slog.Logger
	messages     storage.MessageStorage
	rooms        storage.RoomStorage
	workspaces   storage.WorkspaceStorage
	clock        *hlc.Clock
	notifier     *Notifier
	defaultLimit int
	maxLimit     int
}

// NewMessageHandler создает новый handler для сообщений
func NewMessageHandler(logger *slog.Logger, messages storage.MessageStorage, rooms storage.RoomStorage, workspaces storage.WorkspaceStorage, clock *hlc.Clock, notifier *Notifier, defaultLimit, maxLimit int) *MessageHandler {
	return &MessageHandler{
		logger:       logger,
		messages:     messages,
		rooms:        rooms,
		workspaces:   workspaces,
		clock:        clock,
		notifier:     notifier,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Post обрабатывает POST /api/v1/rooms/{id}/messages
// После сохранения рассылает уведомления участникам workspace
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	room, ok := h.memberRoom(w, r, userID)
	if !ok {
		return
	}

	var req api.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode message request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateMessageBody(req.Body); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	message := &models.Message{
		ID:          uuid.New().String(),
		WorkspaceID: room.WorkspaceID,
		RoomID:      room.ID,
		AuthorID:    userID,
		Body:        req.Body,
		CreatedAt:   time.Now(),
		ChangedAt:   h.clock.Tick(),
	}

	if err := h.messages.CreateMessage(ctx, message); err != nil {
		h.logger.ErrorContext(ctx, "failed to create message", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Рассылка best-effort: ошибки внутри только логируются
	h.notifier.MessagePosted(ctx, message)

	h.logger.InfoContext(ctx, "message posted",
		slog.String("message_id", message.ID),
		slog.String("room_id", room.ID))

	sendJSON(h.logger, w, toAPIMessage(message), http.StatusCreated)
}

// History обрабатывает GET /api/v1/rooms/{id}/messages?cursor=&limit=
// Живые сообщения комнаты keyset-страницами по возрастанию
// (created_at, id); курсор тот же, что у ленты изменений.
func (h *MessageHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	room, ok := h.memberRoom(w, r, userID)
	if !ok {
		return
	}

	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Битый курсор эквивалентен отсутствующему
	var after *syncfeed.Position
	if p, ok := syncfeed.DecodeCursor(r.URL.Query().Get("cursor")); ok {
		after = &p
	}

	// limit+1 для определения наличия следующей страницы
	messages, err := h.messages.GetRoomMessages(ctx, room.ID, after, limit+1)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get room messages", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	next := ""
	if len(messages) > limit {
		messages = messages[:limit]
		last := messages[limit-1]
		next = syncfeed.EncodeCursor(syncfeed.Position{
			ChangedAt: last.CreatedAt.UnixMicro(),
			ID:        last.ID,
		})
	}

	resp := api.MessagePage{
		NextCursor: optionalCursor(next),
		Messages:   make([]api.Message, 0, len(messages)),
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, toAPIMessage(m))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Edit обрабатывает PATCH /api/v1/messages/{id}
// Правит только собственное сообщение; changed_at переставляется,
// и правка уезжает в конец ленты изменений
func (h *MessageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	message, ok := h.ownMessage(w, r, userID)
	if !ok {
		return
	}

	var req api.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode edit request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateMessageBody(req.Body); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	changedAt := h.clock.Tick()
	if err := h.messages.UpdateMessage(ctx, message.ID, req.Body, changedAt); err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			sendError(h.logger, w, "message not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update message", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	message.Body = req.Body
	message.ChangedAt = changedAt

	h.logger.InfoContext(ctx, "message edited", slog.String("message_id", message.ID))

	sendJSON(h.logger, w, toAPIMessage(message), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/messages/{id}
// Мягкое удаление: тело очищается, в ленте изменений остается
// tombstone на момент удаления
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	message, ok := h.ownMessage(w, r, userID)
	if !ok {
		return
	}

	if err := h.messages.DeleteMessage(ctx, message.ID, h.clock.Tick()); err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			sendError(h.logger, w, "message not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete message", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "message deleted", slog.String("message_id", message.ID))

	w.WriteHeader(http.StatusNoContent)
}

// memberRoom достает комнату из path параметра и проверяет членство
// пользователя в ее workspace
func (h *MessageHandler) memberRoom(w http.ResponseWriter, r *http.Request, userID string) (*models.Room, bool) {
	ctx := r.Context()

	room, err := h.rooms.GetRoom(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			sendError(h.logger, w, "room not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get room", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if _, err := h.workspaces.GetMembership(ctx, room.WorkspaceID, userID); err != nil {
		if errors.Is(err, storage.ErrNotMember) {
			sendError(h.logger, w, "not a workspace member", http.StatusForbidden)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get membership", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return room, true
}

// ownMessage достает живое сообщение из path параметра и проверяет,
// что оно принадлежит пользователю
func (h *MessageHandler) ownMessage(w http.ResponseWriter, r *http.Request, userID string) (*models.Message, bool) {
	ctx := r.Context()

	message, err := h.messages.GetMessage(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			sendError(h.logger, w, "message not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get message", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if message.AuthorID != userID {
		sendError(h.logger, w, "not the message author", http.StatusForbidden)
		return nil, false
	}

	return message, true
}
