// Package server собирает HTTP сервер TeamSync: маршруты,
// цепочку middleware и жизненный цикл.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/teamsync/internal/hlc"
	"github.com/iudanet/teamsync/internal/retrieval"
	"github.com/iudanet/teamsync/internal/server/config"
	"github.com/iudanet/teamsync/internal/server/handlers"
	"github.com/iudanet/teamsync/internal/server/middleware"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

const (
	healthPath = "/api/v1/health"

	// период удаления протухших refresh token
	tokenCleanupInterval = 1 * time.Hour
)

// publicPaths - маршруты, доступные без JWT
var publicPaths = []string{
	"/api/v1/auth/register",
	"/api/v1/auth/login",
	"/api/v1/auth/refresh",
	healthPath,
}

// Server - HTTP сервер со всеми зависимостями
type Server struct {
	logger  *slog.Logger
	cfg     *config.Config
	store   storage.Storage
	httpSrv *http.Server
	limiter *middleware.RateLimiter

	// ctx отменяется при Shutdown: через BaseContext он доходит до
	// r.Context() каждого запроса и закрывает висящие SSE стримы
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New создает сервер поверх готового хранилища.
// clock и engine передаются снаружи: их construction порядок
// (seed часов, порядок источников ленты) контролирует main.
func New(cfg *config.Config, logger *slog.Logger, store storage.Storage, clock *hlc.Clock, engine *syncfeed.Engine) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		logger:  logger,
		cfg:     cfg,
		store:   store,
		limiter: middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logger),
		ctx:     ctx,
		cancel:  cancel,
	}

	s.httpSrv = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: s.routes(clock, engine),
		// WriteTimeout не ставим: он бы обрывал долгоживущие SSE ответы
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	return s
}

// routes собирает все обработчики и оборачивает их в цепочку
// middleware: recovery -> logging -> ratelimit -> auth
func (s *Server) routes(clock *hlc.Clock, engine *syncfeed.Engine) http.Handler {
	jwtCfg := handlers.JWTConfig{
		Secret:          []byte(s.cfg.Auth.JWTSecret),
		AccessTokenTTL:  s.cfg.Auth.AccessTTL,
		RefreshTokenTTL: s.cfg.Auth.RefreshTTL,
	}

	notifier := handlers.NewNotifier(s.logger, s.store, s.store)
	retriever := retrieval.NewRetriever(retrieval.NewHashingEmbedder(retrieval.DefaultDims))

	authH := handlers.NewAuthHandler(s.logger, s.store, s.store, jwtCfg)
	healthH := handlers.NewHealthHandler(s.logger)
	workspaceH := handlers.NewWorkspaceHandler(s.logger, s.store, s.store)
	roomH := handlers.NewRoomHandler(s.logger, s.store, s.store)
	messageH := handlers.NewMessageHandler(s.logger, s.store, s.store, s.store, clock, notifier,
		s.cfg.Sync.DefaultLimit, s.cfg.Sync.MaxLimit)
	taskH := handlers.NewTaskHandler(s.logger, s.store, s.store, clock, notifier)
	syncH := handlers.NewSyncHandler(s.logger, engine, s.store,
		s.cfg.Sync.DefaultLimit, s.cfg.Sync.MaxLimit)
	eventsH := handlers.NewEventsHandler(s.logger, engine, s.store,
		s.cfg.Events.PollInterval, s.cfg.Sync.MaxLimit)
	notificationH := handlers.NewNotificationHandler(s.logger, s.store,
		s.cfg.Sync.DefaultLimit, s.cfg.Sync.MaxLimit)
	documentH := handlers.NewDocumentHandler(s.logger, s.store, s.store, retriever)
	pipelineH := handlers.NewPipelineHandler(s.logger, s.store, s.store)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/register", authH.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authH.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authH.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authH.Logout)
	mux.HandleFunc("GET "+healthPath, healthH.Health)

	mux.HandleFunc("POST /api/v1/workspaces", workspaceH.Create)
	mux.HandleFunc("GET /api/v1/workspaces", workspaceH.List)
	mux.HandleFunc("GET /api/v1/workspaces/{id}", workspaceH.Get)
	mux.HandleFunc("POST /api/v1/workspaces/{id}/members", workspaceH.AddMember)
	mux.HandleFunc("GET /api/v1/workspaces/{id}/members", workspaceH.ListMembers)

	mux.HandleFunc("POST /api/v1/workspaces/{id}/rooms", roomH.Create)
	mux.HandleFunc("GET /api/v1/workspaces/{id}/rooms", roomH.List)
	mux.HandleFunc("POST /api/v1/rooms/{id}/messages", messageH.Post)
	mux.HandleFunc("GET /api/v1/rooms/{id}/messages", messageH.History)
	mux.HandleFunc("PATCH /api/v1/messages/{id}", messageH.Edit)
	mux.HandleFunc("DELETE /api/v1/messages/{id}", messageH.Delete)

	mux.HandleFunc("POST /api/v1/workspaces/{id}/tasks", taskH.Create)
	mux.HandleFunc("GET /api/v1/workspaces/{id}/tasks", taskH.List)
	mux.HandleFunc("PATCH /api/v1/tasks/{id}", taskH.Update)
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", taskH.Delete)

	mux.HandleFunc("GET /api/v1/workspaces/{id}/sync", syncH.Sync)
	mux.HandleFunc("GET /api/v1/workspaces/{id}/events", eventsH.Stream)

	mux.HandleFunc("GET /api/v1/notifications", notificationH.List)
	mux.HandleFunc("POST /api/v1/notifications/{id}/read", notificationH.MarkRead)
	mux.HandleFunc("POST /api/v1/notifications/read-all", notificationH.MarkAllRead)

	mux.HandleFunc("POST /api/v1/workspaces/{id}/context", documentH.Create)
	mux.HandleFunc("GET /api/v1/workspaces/{id}/context", documentH.List)
	mux.HandleFunc("POST /api/v1/workspaces/{id}/context/query", documentH.Query)

	mux.HandleFunc("POST /api/v1/workspaces/{id}/pipelines", pipelineH.Create)
	mux.HandleFunc("GET /api/v1/workspaces/{id}/pipelines", pipelineH.List)
	mux.HandleFunc("GET /api/v1/pipelines/{id}", pipelineH.Get)
	mux.HandleFunc("POST /api/v1/pipelines/{id}/advance", pipelineH.Advance)
	mux.HandleFunc("POST /api/v1/pipelines/{id}/cancel", pipelineH.Cancel)
	mux.HandleFunc("POST /api/v1/pipelines/{id}/fail", pipelineH.Fail)

	var handler http.Handler = mux
	handler = middleware.AuthWithSkip(s.logger, jwtCfg, publicPaths)(handler)
	handler = s.limiter.Middleware()(handler)
	handler = middleware.LoggingWithSkip(s.logger, []string{healthPath})(handler)
	handler = middleware.RecoveryMiddleware(s.logger)(handler)

	return handler
}

// Start запускает фоновую уборку токенов и блокируется на
// ListenAndServe до Shutdown
func (s *Server) Start() error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.tokenCleanupLoop()
	}()

	s.logger.Info("http server listening", slog.String("addr", s.httpSrv.Addr))

	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}

// Shutdown останавливает сервер: сначала отменяет контексты
// запросов (SSE стримы завершаются сами), затем ждет остальных
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	s.cancel()
	s.limiter.Stop()

	err := s.httpSrv.Shutdown(ctx)
	if err != nil {
		// Не дождались: закрываем соединения жестко
		_ = s.httpSrv.Close()
	}

	s.wg.Wait()

	if err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}

func (s *Server) tokenCleanupLoop() {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.store.DeleteExpiredTokens(s.ctx)
			if err != nil {
				s.logger.Error("failed to delete expired tokens", slog.Any("error", err))
				continue
			}
			if deleted > 0 {
				s.logger.Info("expired refresh tokens deleted", slog.Int("deleted", deleted))
			}
		}
	}
}
