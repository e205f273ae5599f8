package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/retrieval"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/validation"
	"github.com/iudanet/teamsync/pkg/api"
)

// Ограничения top_k поискового запроса
const (
	defaultTopK = 5
	maxTopK     = 50
)

// DocumentHandler обрабатывает документы базы знаний workspace
// и поиск по ним
type DocumentHandler struct {
	logger     *slog.Logger
	documents  storage.DocumentStorage
	workspaces storage.WorkspaceStorage
	retriever  *retrieval.Retriever
}

// NewDocumentHandler создает новый handler документов
func NewDocumentHandler(logger *slog.Logger, documents storage.DocumentStorage, workspaces storage.WorkspaceStorage, retriever *retrieval.Retriever) *DocumentHandler {
	return &DocumentHandler{
		logger:     logger,
		documents:  documents,
		workspaces: workspaces,
		retriever:  retriever,
	}
}

// Create обрабатывает POST /api/v1/workspaces/{id}/context
// Эмбеддинг считается из content при сохранении
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	var req api.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode document request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateDocumentTitle(req.Title); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		sendError(h.logger, w, "document content cannot be empty", http.StatusBadRequest)
		return
	}

	embedding, err := h.retriever.Embedder().Embed(ctx, req.Content)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to embed document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	document := &models.ContextDocument{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Content:     req.Content,
		Embedding:   embedding,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.documents.CreateDocument(ctx, document); err != nil {
		h.logger.ErrorContext(ctx, "failed to create document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "context document created",
		slog.String("document_id", document.ID),
		slog.String("workspace_id", workspaceID))

	sendJSON(h.logger, w, toAPIDocument(document), http.StatusCreated)
}

// List обрабатывает GET /api/v1/workspaces/{id}/context
// Эмбеддинги на провод не попадают
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	documents, err := h.documents.GetWorkspaceDocuments(ctx, workspaceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list documents", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Document, 0, len(documents))
	for _, d := range documents {
		resp = append(resp, toAPIDocument(d))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Query обрабатывает POST /api/v1/workspaces/{id}/context/query
// Brute-force косинусный поиск по документам workspace
func (h *DocumentHandler) Query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authedUser(h.logger, w, r)
	if !ok {
		return
	}
	workspaceID := r.PathValue("id")

	if !requireMember(h.logger, w, r, h.workspaces, workspaceID, userID) {
		return
	}

	var req api.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode query request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		sendError(h.logger, w, "query cannot be empty", http.StatusBadRequest)
		return
	}
	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	if topK > maxTopK {
		topK = maxTopK
	}

	documents, err := h.documents.GetWorkspaceDocuments(ctx, workspaceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get documents", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	results, err := h.retriever.Rank(ctx, documents, req.Query, topK)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to rank documents", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.QueryResponse{Hits: make([]api.QueryHit, 0, len(results))}
	for _, res := range results {
		resp.Hits = append(resp.Hits, api.QueryHit{
			Document: toAPIDocument(res.Document),
			Score:    res.Score,
		})
	}

	h.logger.DebugContext(ctx, "context query served",
		slog.String("workspace_id", workspaceID),
		slog.Int("hits", len(resp.Hits)))

	sendJSON(h.logger, w, resp, http.StatusOK)
}
