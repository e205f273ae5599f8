package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/teamsync/internal/hlc"
	"github.com/iudanet/teamsync/internal/server"
	"github.com/iudanet/teamsync/internal/server/config"
	"github.com/iudanet/teamsync/internal/server/logging"
	"github.com/iudanet/teamsync/internal/server/storage/sqlite"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file (default: teamsync.yaml in current dir)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "teamsync-server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	// Часы мутаций продолжают с максимального выданного timestamp,
	// иначе после рестарта новые изменения могут встать раньше
	// старых в ленте синхронизации
	clock := hlc.New()
	maxChanged, err := store.MaxChangedAt(ctx)
	if err != nil {
		return fmt.Errorf("failed to read max changed_at: %w", err)
	}
	clock.Observe(maxChanged)

	// Порядок источников фиксирует приоритет при равных позициях:
	// сообщения идут раньше задач
	engine := syncfeed.NewEngine(
		syncfeed.NewMessageSource(store),
		syncfeed.NewTaskSource(store),
	)

	srv := server.New(cfg, logger, store, clock, engine)

	errC := make(chan error, 1)
	go func() {
		errC <- srv.Start()
	}()

	logger.Info("teamsync server started",
		slog.String("version", Version),
		slog.String("addr", cfg.Server.Addr),
	)

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("TeamSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
