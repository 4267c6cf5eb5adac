package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Outfitter_Go/internal/catalog"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// SyncCatalog loads, validates, and syncs the item catalog file to the database.
// Unchanged files are detected from sync metadata and skipped.
func SyncCatalog(ctx context.Context, loader catalog.Loader, repo repository.Item, catalogPath string) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingItems, "path", catalogPath)

	cfg, err := loader.Load(catalogPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedLoadItems, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidItems, err)
	}

	result, err := loader.SyncToDatabase(ctx, cfg, repo, catalogPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedSyncItems, err)
	}

	if result.ItemsInserted > 0 || result.ItemsUpdated > 0 {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.ItemsInserted,
			"updated", result.ItemsUpdated,
			"skipped", result.ItemsSkipped)
	} else {
		slog.Info(LogMsgItemsUnchanged)
	}

	return result, nil
}
