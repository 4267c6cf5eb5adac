package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/metrics"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// Buy purchases every line item in request order and returns the final balance.
// Each item is charged against the balance left by the items before it; if any
// item cannot be paid for, nothing in the request is applied.
func (s *service) Buy(ctx context.Context, characterID, callerAccountID int64, items []domain.LineItem) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "character_id", characterID, "line_items", len(items))

	balance, spent, catalog, err := s.buy(ctx, characterID, callerAccountID, items)
	if err != nil {
		recordFailure(ctx, metrics.OperationBuy, err)
		return 0, err
	}

	for _, line := range items {
		metrics.ItemsBought.WithLabelValues(catalog[line.ItemCode].Name).Add(float64(line.Count))
	}
	metrics.MoneySpent.Add(float64(spent))

	log.Info(LogMsgItemsPurchased, "character_id", characterID, "spent", spent, "balance", balance)
	return balance, nil
}

func (s *service) buy(ctx context.Context, characterID, callerAccountID int64, items []domain.LineItem) (int, int, map[int]domain.Item, error) {
	// 1. Validate request
	if err := validateLineItems(items); err != nil {
		return 0, 0, nil, err
	}

	// 2. Check character and ownership
	if _, err := s.loadOwnedCharacter(ctx, characterID, callerAccountID); err != nil {
		return 0, 0, nil, err
	}

	// 3. Price every item before anything is written
	catalog, err := s.resolveItems(ctx, items)
	if err != nil {
		return 0, 0, nil, err
	}

	// 4. Charge and stock each item in one unit of work
	var balance, spent int
	err = s.withCharacterTx(ctx, characterID, callerAccountID, func(tx repository.EconomyTx, character *domain.Character) error {
		balance = character.Money
		for _, line := range items {
			cost := catalog[line.ItemCode].Price * line.Count
			if cost > balance {
				return fmt.Errorf(ErrMsgBuyItemFailedFmt, line.ItemCode, domain.ErrInsufficientFunds)
			}
			newBalance, err := tx.AdjustMoney(ctx, characterID, -cost)
			if err != nil {
				return fmt.Errorf(ErrMsgBuyItemFailedFmt, line.ItemCode, err)
			}
			if _, err := tx.AddInventory(ctx, characterID, line.ItemCode, line.Count); err != nil {
				return fmt.Errorf(ErrMsgBuyItemFailedFmt, line.ItemCode, err)
			}
			balance = newBalance
			spent += cost
		}
		return nil
	})
	if err != nil {
		return 0, 0, nil, err
	}
	return balance, spent, catalog, nil
}

// resolveItems looks up every code of a payload, failing on the first unknown one
func (s *service) resolveItems(ctx context.Context, items []domain.LineItem) (map[int]domain.Item, error) {
	catalog, err := s.catalog.LookupMany(ctx, itemCodes(items))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgResolveItemsFailed, err)
	}
	return catalog, nil
}
