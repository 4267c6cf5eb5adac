package economy

import (
	"context"
	"fmt"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/metrics"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// Reward credits RewardAmount to the character and returns the new balance.
// Each call is one increment; callers that retry must dedupe themselves.
func (s *service) Reward(ctx context.Context, characterID, callerAccountID int64) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRewardCalled, "character_id", characterID)

	balance, err := s.reward(ctx, characterID, callerAccountID)
	if err != nil {
		recordFailure(ctx, metrics.OperationReward, err)
		return 0, err
	}

	metrics.RewardsGranted.Inc()
	metrics.MoneyEarned.Add(RewardAmount)

	log.Info(LogMsgRewardGranted, "character_id", characterID, "balance", balance)
	return balance, nil
}

func (s *service) reward(ctx context.Context, characterID, callerAccountID int64) (int, error) {
	if _, err := s.loadOwnedCharacter(ctx, characterID, callerAccountID); err != nil {
		return 0, err
	}

	var balance int
	err := s.withCharacterTx(ctx, characterID, callerAccountID, func(tx repository.EconomyTx, _ *domain.Character) error {
		newBalance, err := tx.AdjustMoney(ctx, characterID, RewardAmount)
		if err != nil {
			return fmt.Errorf(ErrMsgAdjustMoneyFailed, err)
		}
		balance = newBalance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}
