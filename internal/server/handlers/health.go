package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/teamsync/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга, без авторизации
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.HealthResponse{Status: "ok"}, http.StatusOK)
}
