//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Outfitter_Go/internal/auth"
	"github.com/osse101/Outfitter_Go/internal/bootstrap"
	"github.com/osse101/Outfitter_Go/internal/catalog"
	"github.com/osse101/Outfitter_Go/internal/character"
	"github.com/osse101/Outfitter_Go/internal/concurrency"
	"github.com/osse101/Outfitter_Go/internal/config"
	"github.com/osse101/Outfitter_Go/internal/database"
	"github.com/osse101/Outfitter_Go/internal/economy"
	"github.com/osse101/Outfitter_Go/internal/handler"
	"github.com/osse101/Outfitter_Go/internal/scheduler"
	"github.com/osse101/Outfitter_Go/internal/server"
	"github.com/osse101/Outfitter_Go/internal/worker"
)

// @title Outfitter API
// @version 1.0
// @description Accounts, characters, item catalog and the character economy (buy, sell, equip, unequip, reward).
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Outfitter exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	if cfg.Version != "" {
		handler.Version = cfg.Version
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		return err
	}

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	loader := catalog.NewLoader(cfg.CatalogSchema)
	syncCatalog := func(ctx context.Context) (*catalog.SyncResult, error) {
		return bootstrap.SyncCatalog(ctx, loader, repos.Items, cfg.CatalogPath)
	}
	if _, err := syncCatalog(ctx); err != nil {
		dbPool.Close()
		return err
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		dbPool.Close()
		return err
	}

	// Character deletion and economy operations serialize on the same per-character locks
	locks := concurrency.NewLockManager()

	catalogService := catalog.NewService(repos.Items, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	economyService := economy.NewService(repos.Economy, catalogService, locks)

	workerPool := worker.NewPool(1, 1)
	workerPool.Start()
	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.CatalogSyncInterval, worker.NewCatalogSyncJob(syncCatalog, catalogService))

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
	}, dbPool, server.Services{
		Auth:       auth.NewService(repos.Accounts, tokens),
		Characters: character.NewService(repos.Characters, locks),
		Economy:    economyService,
		Catalog:    catalogService,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		Scheduler:      sched,
		WorkerPool:     workerPool,
		EconomyService: economyService,
		DBPool:         dbPool,
	})

	return runErr
}
