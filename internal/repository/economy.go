package repository

import (
	"context"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// Economy defines the interface for economy persistence.
// Reads outside a transaction only observe committed state.
type Economy interface {
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryLine, error)
	ListEquipment(ctx context.Context, characterID int64) ([]domain.EquippedItem, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx is one unit of work over a character's money, stats,
// inventory lines and equipped items
type EconomyTx interface {
	Tx

	// GetCharacterForUpdate locks the character row until the transaction ends
	GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error)
	// AdjustMoney applies delta and returns the new balance.
	// Returns domain.ErrInsufficientFunds if the balance would go negative.
	AdjustMoney(ctx context.Context, characterID int64, delta int) (int, error)
	AdjustStats(ctx context.Context, characterID int64, stats domain.Stats) error

	// GetInventoryLine returns nil when the character holds none of the item
	GetInventoryLine(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryLine, error)
	// AddInventory increments (or creates) a line and returns its new count
	AddInventory(ctx context.Context, characterID int64, itemCode, count int) (int, error)
	// RemoveInventory decrements a line, deleting it at zero, and returns the remaining count
	RemoveInventory(ctx context.Context, characterID int64, itemCode, count int) (int, error)

	// GetEquippedItem returns nil when the item is not equipped
	GetEquippedItem(ctx context.Context, characterID int64, itemCode int) (*domain.EquippedItem, error)
	InsertEquippedItem(ctx context.Context, characterID int64, itemCode int, stats domain.Stats) (*domain.EquippedItem, error)
	DeleteEquippedItem(ctx context.Context, characterID int64, itemCode int) (*domain.EquippedItem, error)
}
