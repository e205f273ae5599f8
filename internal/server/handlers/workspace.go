package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/validation"
	"github.com/iudanet/teamsync/pkg/api"
)

// WorkspaceHandler обрабатывает запросы workspace'ов и участников
type WorkspaceHandler struct {
	logger     *slog.Logger
	workspaces storage.WorkspaceStorage
	users      storage.UserStorage
}

// NewWorkspaceHandler создает новый handler для workspace'ов
func NewWorkspaceHandler(logger *slog.Logger, workspaces storage.WorkspaceStorage, users storage.UserStorage) *WorkspaceHandler {
	return &WorkspaceHandler{
		logger:     logger,
		workspaces: workspaces,
		users:      users,
	}
}

// Create обрабатывает POST /api/v1/workspaces
// Создатель автоматически становится участником с ролью owner
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	var req api.CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode workspace request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateWorkspaceName(req.Name); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	workspace := &models.Workspace{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}

	if err := h.workspaces.CreateWorkspace(ctx, workspace); err != nil {
		h.logger.ErrorContext(ctx, "failed to create workspace", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "workspace created",
		slog.String("workspace_id", workspace.ID),
		slog.String("user_id", userID))

	sendJSON(h.logger, w, toAPIWorkspace(workspace), http.StatusCreated)
}

// List обрабатывает GET /api/v1/workspaces
// Возвращает workspace'ы, в которых состоит пользователь
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}

	workspaces, err := h.workspaces.GetUserWorkspaces(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list workspaces", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		resp = append(resp, toAPIWorkspace(ws))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/workspaces/{id} (только для участников)
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	workspace, err := h.workspaces.GetWorkspace(ctx, workspaceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get workspace", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, toAPIWorkspace(workspace), http.StatusOK)
}

// AddMember обрабатывает POST /api/v1/workspaces/{id}/members
// Участник добавляется по username. Доступно только owner'у
func (h *WorkspaceHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	membership, err := h.workspaces.GetMembership(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotMember) {
			sendError(h.logger, w, "not a workspace member", http.StatusForbidden)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get membership", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if membership.Role != models.RoleOwner {
		sendError(h.logger, w, "only the workspace owner can add members", http.StatusForbidden)
		return
	}

	var req api.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode member request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	if role != models.RoleOwner && role != models.RoleMember {
		sendError(h.logger, w, "invalid role", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	newMember := &models.Membership{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
		JoinedAt:    time.Now(),
	}
	if err := h.workspaces.AddMember(ctx, newMember); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyMember):
			sendError(h.logger, w, "already a workspace member", http.StatusConflict)
		case errors.Is(err, storage.ErrWorkspaceNotFound):
			sendError(h.logger, w, "workspace not found", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "failed to add member", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "member added",
		slog.String("workspace_id", workspaceID),
		slog.String("member_id", user.ID),
		slog.String("role", role))

	newMember.Username = user.Username
	sendJSON(h.logger, w, toAPIMember(newMember), http.StatusCreated)
}

// ListMembers обрабатывает GET /api/v1/workspaces/{id}/members
func (h *WorkspaceHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	members, err := h.workspaces.GetMembers(ctx, workspaceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list members", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Member, 0, len(members))
	for _, m := range members {
		resp = append(resp, toAPIMember(m))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
