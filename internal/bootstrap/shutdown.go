package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Outfitter_Go/internal/database"
)

// Stopper is the HTTP server as seen by shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// Stoppable covers background components with a blocking Stop
type Stoppable interface {
	Stop()
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server         Stopper
	Scheduler      Stoppable
	WorkerPool     Stoppable
	EconomyService shutdownableService
	DBPool         database.Pool
}

// GracefulShutdown stops components in dependency order:
// the HTTP server stops accepting requests, background jobs stop,
// the economy engine drains in-flight transactions, then the pool closes.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.EconomyService != nil {
		shutdownService(ctx, ServiceNameEconomy, components.EconomyService)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
		slog.Info(LogMsgDatabaseClosed)
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
