package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// MockRepository implements repository.Economy for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryLine, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryLine), args.Error(1)
}

func (m *MockRepository) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquippedItem, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedItem), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// MockTx implements repository.EconomyTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockTx) AdjustMoney(ctx context.Context, characterID int64, delta int) (int, error) {
	args := m.Called(ctx, characterID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) AdjustStats(ctx context.Context, characterID int64, stats domain.Stats) error {
	return m.Called(ctx, characterID, stats).Error(0)
}

func (m *MockTx) GetInventoryLine(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryLine, error) {
	args := m.Called(ctx, characterID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryLine), args.Error(1)
}

func (m *MockTx) AddInventory(ctx context.Context, characterID int64, itemCode, count int) (int, error) {
	args := m.Called(ctx, characterID, itemCode, count)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) RemoveInventory(ctx context.Context, characterID int64, itemCode, count int) (int, error) {
	args := m.Called(ctx, characterID, itemCode, count)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) GetEquippedItem(ctx context.Context, characterID int64, itemCode int) (*domain.EquippedItem, error) {
	args := m.Called(ctx, characterID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquippedItem), args.Error(1)
}

func (m *MockTx) InsertEquippedItem(ctx context.Context, characterID int64, itemCode int, stats domain.Stats) (*domain.EquippedItem, error) {
	args := m.Called(ctx, characterID, itemCode, stats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquippedItem), args.Error(1)
}

func (m *MockTx) DeleteEquippedItem(ctx context.Context, characterID int64, itemCode int) (*domain.EquippedItem, error) {
	args := m.Called(ctx, characterID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquippedItem), args.Error(1)
}

// MockCatalog implements ItemCatalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Lookup(ctx context.Context, itemCode int) (*domain.Item, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalog) LookupMany(ctx context.Context, itemCodes []int) (map[int]domain.Item, error) {
	args := m.Called(ctx, itemCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]domain.Item), args.Error(1)
}
