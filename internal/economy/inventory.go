package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// GetInventory lists the character's inventory lines. Only the owner may read them.
func (s *service) GetInventory(ctx context.Context, characterID, callerAccountID int64) ([]domain.InventoryLine, error) {
	if _, err := s.loadOwnedCharacter(ctx, characterID, callerAccountID); err != nil {
		return nil, err
	}

	lines, err := s.repo.ListInventory(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return lines, nil
}

// GetEquipment lists what the character is wearing. Anyone may read it.
func (s *service) GetEquipment(ctx context.Context, characterID int64) ([]domain.EquippedItem, error) {
	if characterID < 1 {
		return nil, fmt.Errorf(ErrMsgInvalidCharacterFmt, characterID, domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}

	items, err := s.repo.ListEquipment(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListEquipmentFailed, err)
	}
	return items, nil
}
