package worker

import (
	"context"

	"github.com/osse101/Outfitter_Go/internal/catalog"
	"github.com/osse101/Outfitter_Go/internal/logger"
)

// SyncFunc re-reads the catalog file into the database
type SyncFunc func(ctx context.Context) (*catalog.SyncResult, error)

type cacheInvalidator interface {
	InvalidateCache()
}

// CatalogSyncJob picks up edits to the catalog file while the server runs.
// The lookup cache is only dropped when the sync actually changed rows.
type CatalogSyncJob struct {
	sync  SyncFunc
	cache cacheInvalidator
}

// NewCatalogSyncJob creates the job
func NewCatalogSyncJob(sync SyncFunc, cache cacheInvalidator) *CatalogSyncJob {
	return &CatalogSyncJob{sync: sync, cache: cache}
}

// Process implements Job
func (j *CatalogSyncJob) Process(ctx context.Context) error {
	result, err := j.sync(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCatalogResyncFailed, "error", err)
		return err
	}

	if result.ItemsInserted > 0 || result.ItemsUpdated > 0 {
		j.cache.InvalidateCache()
		logger.FromContext(ctx).Info(LogMsgCatalogReloaded,
			"inserted", result.ItemsInserted,
			"updated", result.ItemsUpdated)
	}
	return nil
}
