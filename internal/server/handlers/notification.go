package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/pkg/api"
)

// NotificationHandler обрабатывает запросы уведомлений пользователя
type NotificationHandler struct {
	logger        *slog.Logger
	notifications storage.NotificationStorage
	defaultLimit  int
	maxLimit      int
}

// NewNotificationHandler создает новый handler уведомлений
func NewNotificationHandler(logger *slog.Logger, notifications storage.NotificationStorage, defaultLimit, maxLimit int) *NotificationHandler {
	return &NotificationHandler{
		logger:        logger,
		notifications: notifications,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
	}
}

// List обрабатывает GET /api/v1/notifications?unread=&limit=
// Уведомления пользователя, новые первыми
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.notifications.GetUserNotifications(ctx, userID, unreadOnly, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notifications", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Notification, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, toAPINotification(n))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// MarkRead обрабатывает POST /api/v1/notifications/{id}/read
// Чужое уведомление неотличимо от несуществующего
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	notificationID := r.PathValue("id")

	if err := h.notifications.MarkNotificationRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, storage.ErrNotificationNotFound) {
			sendError(h.logger, w, "notification not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to mark notification read", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead обрабатывает POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	updated, err := h.notifications.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to mark notifications read", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID),
		slog.Int("updated", updated))

	sendJSON(h.logger, w, api.MarkAllReadResponse{Updated: updated}, http.StatusOK)
}
