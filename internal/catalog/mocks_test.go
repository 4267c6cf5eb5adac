package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// MockItemRepository implements repository.Item for testing
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemByCode(ctx context.Context, itemCode int) (*domain.Item, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemsByCodes(ctx context.Context, itemCodes []int) ([]domain.Item, error) {
	args := m.Called(ctx, itemCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) UpsertItems(ctx context.Context, items []domain.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockItemRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	args := m.Called(ctx, configName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncMetadata), args.Error(1)
}

func (m *MockItemRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}
