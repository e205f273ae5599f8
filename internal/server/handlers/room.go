package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/validation"
	"github.com/iudanet/teamsync/pkg/api"
)

// RoomHandler обрабатывает запросы комнат workspace
type RoomHandler struct {
	logger     *slog.Logger
	rooms      storage.RoomStorage
	workspaces storage.WorkspaceStorage
}

// NewRoomHandler создает новый handler для комнат
func NewRoomHandler(logger *slog.Logger, rooms storage.RoomStorage, workspaces storage.WorkspaceStorage) *RoomHandler {
	return &RoomHandler{
		logger:     logger,
		rooms:      rooms,
		workspaces: workspaces,
	}
}

// Create обрабатывает POST /api/v1/workspaces/{id}/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	var req api.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode room request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateRoomName(req.Name); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateRoomTopic(req.Topic); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	room := &models.Room{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Topic:       req.Topic,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}

	if err := h.rooms.CreateRoom(ctx, room); err != nil {
		h.logger.ErrorContext(ctx, "failed to create room", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "room created",
		slog.String("room_id", room.ID),
		slog.String("workspace_id", workspaceID))

	sendJSON(h.logger, w, toAPIRoom(room), http.StatusCreated)
}

// List обрабатывает GET /api/v1/workspaces/{id}/rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	rooms, err := h.rooms.GetWorkspaceRooms(ctx, workspaceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list rooms", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Room, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toAPIRoom(room))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
