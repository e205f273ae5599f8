package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// authedUser возвращает user_id из контекста (установлен AuthMiddleware).
// Пишет 401, если ключа нет - такое возможно только при ошибке сборки
// цепочки middleware.
func authedUser(logger *slog.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		logger.ErrorContext(r.Context(), "user_id not found in request context")
		sendError(logger, w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// requireMember проверяет членство пользователя в workspace.
// Несуществующий workspace дает 404, отсутствие членства - 403;
// в обоих случаях ответ уже записан и вызывающий должен выйти.
func requireMember(logger *slog.Logger, w http.ResponseWriter, r *http.Request, workspaces storage.WorkspaceStorage, workspaceID, userID string) bool {
	ctx := r.Context()

	if _, err := workspaces.GetWorkspace(ctx, workspaceID); err != nil {
		if errors.Is(err, storage.ErrWorkspaceNotFound) {
			sendError(logger, w, "workspace not found", http.StatusNotFound)
			return false
		}
		logger.ErrorContext(ctx, "failed to get workspace", slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
		return false
	}

	if _, err := workspaces.GetMembership(ctx, workspaceID, userID); err != nil {
		if errors.Is(err, storage.ErrNotMember) {
			sendError(logger, w, "not a workspace member", http.StatusForbidden)
			return false
		}
		logger.ErrorContext(ctx, "failed to get membership", slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
		return false
	}

	return true
}

// parseLimit разбирает query параметр limit: дефолт при отсутствии,
// ошибка при нечисловом или неположительном значении, потолок maxLimit.
func parseLimit(r *http.Request, def, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, nil
}
