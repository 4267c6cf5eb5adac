package economy

import (
	"context"
	"fmt"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/metrics"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// Sell removes every line item from the character's inventory in request order
// and credits the buy-back income. The first missing or short line aborts the
// whole request.
func (s *service) Sell(ctx context.Context, characterID, callerAccountID int64, items []domain.LineItem) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "character_id", characterID, "line_items", len(items))

	balance, earned, catalog, err := s.sell(ctx, characterID, callerAccountID, items)
	if err != nil {
		recordFailure(ctx, metrics.OperationSell, err)
		return 0, err
	}

	for _, line := range items {
		metrics.ItemsSold.WithLabelValues(catalog[line.ItemCode].Name).Add(float64(line.Count))
	}
	metrics.MoneyEarned.Add(float64(earned))

	log.Info(LogMsgItemsSold, "character_id", characterID, "earned", earned, "balance", balance)
	return balance, nil
}

func (s *service) sell(ctx context.Context, characterID, callerAccountID int64, items []domain.LineItem) (int, int, map[int]domain.Item, error) {
	if err := validateLineItems(items); err != nil {
		return 0, 0, nil, err
	}

	if _, err := s.loadOwnedCharacter(ctx, characterID, callerAccountID); err != nil {
		return 0, 0, nil, err
	}

	catalog, err := s.resolveItems(ctx, items)
	if err != nil {
		return 0, 0, nil, err
	}

	var balance, earned int
	err = s.withCharacterTx(ctx, characterID, callerAccountID, func(tx repository.EconomyTx, character *domain.Character) error {
		balance = character.Money
		for _, line := range items {
			if _, err := tx.RemoveInventory(ctx, characterID, line.ItemCode, line.Count); err != nil {
				return fmt.Errorf(ErrMsgSellItemFailedFmt, line.ItemCode, err)
			}
			income := SellIncome(catalog[line.ItemCode].Price, line.Count)
			newBalance, err := tx.AdjustMoney(ctx, characterID, income)
			if err != nil {
				return fmt.Errorf(ErrMsgSellItemFailedFmt, line.ItemCode, err)
			}
			balance = newBalance
			earned += income
		}
		return nil
	})
	if err != nil {
		return 0, 0, nil, err
	}
	return balance, earned, catalog, nil
}

// SellIncome is floor(price * count * sell rate)
func SellIncome(price, count int) int {
	return price * count * SellRateNumerator / SellRateDenominator
}
