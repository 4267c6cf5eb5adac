package repository

import (
	"context"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItemByCode(ctx context.Context, itemCode int) (*domain.Item, error)
	GetItemsByCodes(ctx context.Context, itemCodes []int) ([]domain.Item, error)
	UpsertItems(ctx context.Context, items []domain.Item) error

	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
