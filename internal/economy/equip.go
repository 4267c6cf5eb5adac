package economy

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/metrics"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// Equip moves one unit of an item from the inventory onto the character
// and adds the item's stat delta to the character's stats.
func (s *service) Equip(ctx context.Context, characterID, callerAccountID int64, itemCode int) (*EquipResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "character_id", characterID, "item_code", itemCode)

	result, err := s.equip(ctx, characterID, callerAccountID, itemCode)
	if err != nil {
		recordFailure(ctx, metrics.OperationEquip, err)
		return nil, err
	}

	metrics.ItemsEquipped.WithLabelValues(result.ItemName).Inc()
	log.Info(LogMsgItemEquipped, "character_id", characterID, "item_code", itemCode, "stats", result.Stats)
	return result, nil
}

func (s *service) equip(ctx context.Context, characterID, callerAccountID int64, itemCode int) (*EquipResult, error) {
	if err := validateItemCode(itemCode); err != nil {
		return nil, err
	}

	if _, err := s.loadOwnedCharacter(ctx, characterID, callerAccountID); err != nil {
		return nil, err
	}

	item, err := s.catalog.Lookup(ctx, itemCode)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgResolveItemsFailed, err)
	}

	var stats domain.Stats
	err = s.withCharacterTx(ctx, characterID, callerAccountID, func(tx repository.EconomyTx, character *domain.Character) error {
		line, err := tx.GetInventoryLine(ctx, characterID, itemCode)
		if err != nil {
			return fmt.Errorf(ErrMsgGetInventoryFailed, err)
		}
		if line == nil {
			return fmt.Errorf(ErrMsgItemNotInInventoryFmt, itemCode, domain.ErrItemNotOwned)
		}

		equipped, err := tx.GetEquippedItem(ctx, characterID, itemCode)
		if err != nil {
			return fmt.Errorf(ErrMsgEquipItemFailedFmt, itemCode, err)
		}
		if equipped != nil {
			return fmt.Errorf(ErrMsgEquipItemFailedFmt, itemCode, domain.ErrAlreadyEquipped)
		}

		if _, err := tx.RemoveInventory(ctx, characterID, itemCode, 1); err != nil {
			return fmt.Errorf(ErrMsgEquipItemFailedFmt, itemCode, err)
		}
		if _, err := tx.InsertEquippedItem(ctx, characterID, itemCode, item.Stats.Clone()); err != nil {
			return fmt.Errorf(ErrMsgEquipItemFailedFmt, itemCode, err)
		}

		stats = character.Stats.Add(item.Stats)
		if err := tx.AdjustStats(ctx, characterID, stats); err != nil {
			return fmt.Errorf(ErrMsgAdjustStatsFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newEquipResult(itemCode, item.Name, stats, MsgItemEquippedFmt), nil
}

// Unequip returns an equipped item to the inventory and subtracts the stat
// delta that was applied when it was equipped.
func (s *service) Unequip(ctx context.Context, characterID, callerAccountID int64, itemCode int) (*EquipResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "character_id", characterID, "item_code", itemCode)

	result, err := s.unequip(ctx, characterID, callerAccountID, itemCode)
	if err != nil {
		recordFailure(ctx, metrics.OperationUnequip, err)
		return nil, err
	}

	metrics.ItemsUnequipped.WithLabelValues(result.ItemName).Inc()
	log.Info(LogMsgItemUnequipped, "character_id", characterID, "item_code", itemCode, "stats", result.Stats)
	return result, nil
}

func (s *service) unequip(ctx context.Context, characterID, callerAccountID int64, itemCode int) (*EquipResult, error) {
	if err := validateItemCode(itemCode); err != nil {
		return nil, err
	}

	if _, err := s.loadOwnedCharacter(ctx, characterID, callerAccountID); err != nil {
		return nil, err
	}

	var (
		stats domain.Stats
		name  string
	)
	err := s.withCharacterTx(ctx, characterID, callerAccountID, func(tx repository.EconomyTx, character *domain.Character) error {
		removed, err := tx.DeleteEquippedItem(ctx, characterID, itemCode)
		if err != nil {
			return fmt.Errorf(ErrMsgUnequipItemFailedFmt, itemCode, err)
		}

		if _, err := tx.AddInventory(ctx, characterID, itemCode, 1); err != nil {
			return fmt.Errorf(ErrMsgUnequipItemFailedFmt, itemCode, err)
		}

		// Subtract the snapshot taken at equip time, not the current catalog row
		stats = character.Stats.Sub(removed.Stats)
		if err := tx.AdjustStats(ctx, characterID, stats); err != nil {
			return fmt.Errorf(ErrMsgAdjustStatsFailed, err)
		}
		name = removed.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newEquipResult(itemCode, name, stats, MsgItemUnequippedFmt), nil
}

func newEquipResult(itemCode int, name string, stats domain.Stats, format string) *EquipResult {
	// A Caser keeps state between calls, so each result gets its own
	title := cases.Title(language.English).String(name)
	return &EquipResult{
		ItemCode: itemCode,
		ItemName: name,
		Stats:    stats,
		Message:  fmt.Sprintf(format, title),
	}
}
