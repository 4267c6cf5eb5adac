package economy

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/Outfitter_Go/internal/concurrency"
	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/metrics"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// EquipResult is the confirmation returned by Equip and Unequip
type EquipResult struct {
	ItemCode int          `json:"item_code"`
	ItemName string       `json:"item_name"`
	Stats    domain.Stats `json:"stats"`
	Message  string       `json:"message"`
}

// Service defines the interface for economy operations.
// Every mutating call is scoped to a character owned by callerAccountID.
type Service interface {
	Buy(ctx context.Context, characterID, callerAccountID int64, items []domain.LineItem) (int, error)
	Sell(ctx context.Context, characterID, callerAccountID int64, items []domain.LineItem) (int, error)
	Equip(ctx context.Context, characterID, callerAccountID int64, itemCode int) (*EquipResult, error)
	Unequip(ctx context.Context, characterID, callerAccountID int64, itemCode int) (*EquipResult, error)
	Reward(ctx context.Context, characterID, callerAccountID int64) (int, error)
	GetInventory(ctx context.Context, characterID, callerAccountID int64) ([]domain.InventoryLine, error)
	GetEquipment(ctx context.Context, characterID int64) ([]domain.EquippedItem, error)
	Shutdown(ctx context.Context) error
}

// ItemCatalog is the read-only item lookup the engine prices against
type ItemCatalog interface {
	Lookup(ctx context.Context, itemCode int) (*domain.Item, error)
	LookupMany(ctx context.Context, itemCodes []int) (map[int]domain.Item, error)
}

type service struct {
	repo    repository.Economy
	catalog ItemCatalog
	locks   *concurrency.LockManager

	// closed is set by Shutdown; guarded by mu so no wg.Add races the drain
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewService creates a new economy service
func NewService(repo repository.Economy, catalog ItemCatalog, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:    repo,
		catalog: catalog,
		locks:   locks,
	}
}

// authorize fails with ErrForbidden when the character belongs to another account
func authorize(character *domain.Character, callerAccountID int64) error {
	if !character.IsOwnedBy(callerAccountID) {
		return fmt.Errorf(ErrMsgNotOwnerFmt, character.ID, domain.ErrForbidden)
	}
	return nil
}

// loadOwnedCharacter reads the committed character row and checks ownership
func (s *service) loadOwnedCharacter(ctx context.Context, characterID, callerAccountID int64) (*domain.Character, error) {
	if characterID < 1 {
		return nil, fmt.Errorf(ErrMsgInvalidCharacterFmt, characterID, domain.ErrInvalidInput)
	}
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	if err := authorize(character, callerAccountID); err != nil {
		return nil, err
	}
	return character, nil
}

// withCharacterTx runs fn as one unit of work on a locked, owned character.
// The in-process lock serializes operations on the same character; the row lock
// taken by GetCharacterForUpdate does the same across processes sharing the database.
// fn's mutations are committed only if it returns nil.
func (s *service) withCharacterTx(ctx context.Context, characterID, callerAccountID int64, fn func(tx repository.EconomyTx, character *domain.Character) error) error {
	if !s.enter() {
		return fmt.Errorf(ErrMsgRejectedDuringShutdown, domain.ErrShuttingDown)
	}
	defer s.wg.Done()

	unlock := s.locks.LockCharacter(characterID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return err
		}
		return fmt.Errorf(ErrMsgLockCharacterFailed, err)
	}
	if err := authorize(character, callerAccountID); err != nil {
		return err
	}

	if err := fn(tx, character); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

// enter registers an in-flight operation, or reports false once Shutdown has begun
func (s *service) enter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// recordFailure counts a failed operation and logs it at a level matching its cause
func recordFailure(ctx context.Context, operation string, err error) {
	reason := failureReason(err)
	metrics.EconomyFailures.WithLabelValues(operation, reason).Inc()

	log := logger.FromContext(ctx)
	if reason == ReasonUnexpected {
		log.Error(LogMsgOperationFailed, "operation", operation, "error", err)
		return
	}
	log.Info(LogMsgOperationRejected, "operation", operation, "reason", reason, "error", err)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.Is(err, domain.ErrCharacterNotFound), errors.Is(err, domain.ErrItemNotFound):
		return ReasonNotFound
	case errors.Is(err, domain.ErrForbidden):
		return ReasonForbidden
	case errors.Is(err, domain.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	case errors.Is(err, domain.ErrInsufficientStock):
		return ReasonInsufficientStock
	case errors.Is(err, domain.ErrItemNotOwned):
		return ReasonItemNotOwned
	case errors.Is(err, domain.ErrAlreadyEquipped):
		return ReasonAlreadyEquipped
	case errors.Is(err, domain.ErrNotEquipped):
		return ReasonNotEquipped
	case errors.Is(err, domain.ErrShuttingDown):
		return ReasonShuttingDown
	default:
		return ReasonUnexpected
	}
}

// Shutdown stops accepting mutating operations and waits for in-flight ones to finish
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEconomyShutdown)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgEconomyShutdownEnd)
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgShutdownTimedOut, ctx.Err())
	}
}
