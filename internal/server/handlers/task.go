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
	"github.com/iudanet/teamsync/internal/validation"
	"github.com/iudanet/teamsync/pkg/api"
)

// TaskHandler обрабатывает запросы задач workspace
type TaskHandler struct {
	logger     *slog.Logger
	tasks      storage.TaskStorage
	workspaces storage.WorkspaceStorage
	clock      *hlc.Clock
	notifier   *Notifier
}

// NewTaskHandler создает новый handler для задач
func NewTaskHandler(logger *slog.Logger, tasks storage.TaskStorage, workspaces storage.WorkspaceStorage, clock *hlc.Clock, notifier *Notifier) *TaskHandler {
	return &TaskHandler{
		logger:     logger,
		tasks:      tasks,
		workspaces: workspaces,
		clock:      clock,
		notifier:   notifier,
	}
}

// Create обрабатывает POST /api/v1/workspaces/{id}/tasks
// Назначение исполнителя при создании рассылает ему уведомление
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	var req api.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode task request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateTaskTitle(req.Title); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	task := &models.Task{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		AssigneeID:  req.AssigneeID,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
		ChangedAt:   h.clock.Tick(),
	}

	if err := h.tasks.CreateTask(ctx, task); err != nil {
		h.logger.ErrorContext(ctx, "failed to create task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.notifier.TaskAssigned(ctx, task, userID)

	h.logger.InfoContext(ctx, "task created",
		slog.String("task_id", task.ID),
		slog.String("workspace_id", workspaceID))

	sendJSON(h.logger, w, toAPITask(task), http.StatusCreated)
}

// List обрабатывает GET /api/v1/workspaces/{id}/tasks?status=
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" {
		if err := validation.ValidateTaskStatus(status); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	tasks, err := h.tasks.GetWorkspaceTasks(ctx, workspaceID, status)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tasks", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toAPITask(t))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Update обрабатывает PATCH /api/v1/tasks/{id}
// nil-поля запроса не меняются; смена исполнителя уведомляет нового
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	task, ok := h.memberTask(w, r, userID)
	if !ok {
		return
	}

	var req api.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode task update", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	prevAssignee := task.AssigneeID

	if req.Title != nil {
		if err := validation.ValidateTaskTitle(*req.Title); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if err := validation.ValidateTaskStatus(*req.Status); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		task.Status = *req.Status
	}
	if req.AssigneeID != nil {
		task.AssigneeID = *req.AssigneeID
	}

	task.ChangedAt = h.clock.Tick()

	if err := h.tasks.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			sendError(h.logger, w, "task not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Уведомляем только при смене исполнителя
	if task.AssigneeID != prevAssignee {
		h.notifier.TaskAssigned(ctx, task, userID)
	}

	h.logger.InfoContext(ctx, "task updated", slog.String("task_id", task.ID))

	sendJSON(h.logger, w, toAPITask(task), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/tasks/{id}
// Мягкое удаление: в ленте изменений остается tombstone
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	task, ok := h.memberTask(w, r, userID)
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(ctx, task.ID, h.clock.Tick()); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			sendError(h.logger, w, "task not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "task deleted", slog.String("task_id", task.ID))

	w.WriteHeader(http.StatusNoContent)
}

// memberTask достает живую задачу из path параметра и проверяет
// членство пользователя в ее workspace. Задачи правит любой участник,
// ограничения "только своя" здесь нет
func (h *TaskHandler) memberTask(w http.ResponseWriter, r *http.Request, userID string) (*models.Task, bool) {
	ctx := r.Context()

	task, err := h.tasks.GetTask(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			sendError(h.logger, w, "task not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if _, err := h.workspaces.GetMembership(ctx, task.WorkspaceID, userID); err != nil {
		if errors.Is(err, storage.ErrNotMember) {
			sendError(h.logger, w, "not a workspace member", http.StatusForbidden)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get membership", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return task, true
}
