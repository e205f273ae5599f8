package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/pipeline"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/pkg/api"
)

// PipelineHandler обрабатывает запуски агентного pipeline.
// Сам handler ничего не исполняет: шаги продвигаются внешними
// вызовами advance/cancel/fail (оператор или внешний агент).
type PipelineHandler struct {
	logger     *slog.Logger
	pipelines  storage.PipelineStorage
	workspaces storage.WorkspaceStorage
}

// NewPipelineHandler создает новый handler pipeline запусков
func NewPipelineHandler(logger *slog.Logger, pipelines storage.PipelineStorage, workspaces storage.WorkspaceStorage) *PipelineHandler {
	return &PipelineHandler{
		logger:     logger,
		pipelines:  pipelines,
		workspaces: workspaces,
	}
}

// Create обрабатывает POST /api/v1/workspaces/{id}/pipelines
// Пустой список шагов заменяется дефолтной последовательностью
func (h *PipelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	var req api.CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode pipeline request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Goal) == "" {
		sendError(h.logger, w, "goal cannot be empty", http.StatusBadRequest)
		return
	}
	for _, name := range req.Steps {
		if strings.TrimSpace(name) == "" {
			sendError(h.logger, w, "step name cannot be empty", http.StatusBadRequest)
			return
		}
	}

	run := pipeline.NewRun(workspaceID, req.Goal, userID, req.Steps, time.Now())

	if err := h.pipelines.CreateRun(ctx, run); err != nil {
		h.logger.ErrorContext(ctx, "failed to create pipeline run", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "pipeline run created",
		slog.String("run_id", run.ID),
		slog.String("workspace_id", workspaceID),
		slog.Int("steps", len(run.Steps)))

	sendJSON(h.logger, w, toAPIRun(run), http.StatusCreated)
}

// List обрабатывает GET /api/v1/workspaces/{id}/pipelines
func (h *PipelineHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	runs, err := h.pipelines.GetWorkspaceRuns(ctx, workspaceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list pipeline runs", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.PipelineRun, 0, len(runs))
	for _, run := range runs {
		resp = append(resp, toAPIRun(run))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/pipelines/{id}
func (h *PipelineHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	run, ok := h.memberRun(w, r, userID)
	if !ok {
		return
	}

	sendJSON(h.logger, w, toAPIRun(run), http.StatusOK)
}

// Advance обрабатывает POST /api/v1/pipelines/{id}/advance
// Записывает output текущего шага и двигает конечный автомат
func (h *PipelineHandler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	run, ok := h.memberRun(w, r, userID)
	if !ok {
		return
	}

	var req api.AdvanceRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode advance request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.transition(w, r, run, "advance", func() error {
		return pipeline.Advance(run, req.Output, time.Now())
	})
}

// Cancel обрабатывает POST /api/v1/pipelines/{id}/cancel
// Оставшиеся шаги помечаются skipped
func (h *PipelineHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	run, ok := h.memberRun(w, r, userID)
	if !ok {
		return
	}

	h.transition(w, r, run, "cancel", func() error {
		return pipeline.Cancel(run, time.Now())
	})
}

// Fail обрабатывает POST /api/v1/pipelines/{id}/fail
// Записывает причину ошибки в output текущего шага
func (h *PipelineHandler) Fail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	run, ok := h.memberRun(w, r, userID)
	if !ok {
		return
	}

	var req api.FailRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode fail request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.transition(w, r, run, "fail", func() error {
		return pipeline.Fail(run, req.Reason, time.Now())
	})
}

// transition применяет переход конечного автомата и сохраняет запуск.
// Недопустимый переход дает 409
func (h *PipelineHandler) transition(w http.ResponseWriter, r *http.Request, run *models.PipelineRun, op string, apply func() error) {
	ctx := r.Context()

	if err := apply(); err != nil {
		if errors.Is(err, pipeline.ErrInvalidTransition) {
			sendError(h.logger, w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "pipeline transition failed",
			slog.String("run_id", run.ID),
			slog.String("op", op),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.pipelines.UpdateRun(ctx, run); err != nil {
		h.logger.ErrorContext(ctx, "failed to persist pipeline run",
			slog.String("run_id", run.ID),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "pipeline run transitioned",
		slog.String("run_id", run.ID),
		slog.String("op", op),
		slog.String("status", run.Status))

	sendJSON(h.logger, w, toAPIRun(run), http.StatusOK)
}

// memberRun достает запуск из path параметра и проверяет членство
// пользователя в его workspace
func (h *PipelineHandler) memberRun(w http.ResponseWriter, r *http.Request, userID string) (*models.PipelineRun, bool) {
	ctx := r.Context()

	run, err := h.pipelines.GetRun(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			sendError(h.logger, w, "pipeline run not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get pipeline run", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if _, err := h.workspaces.GetMembership(ctx, run.WorkspaceID, userID); err != nil {
		if errors.Is(err, storage.ErrNotMember) {
			sendError(h.logger, w, "not a workspace member", http.StatusForbidden)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get membership", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return run, true
}
