package character

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/Outfitter_Go/internal/concurrency"
	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// Service manages the character lifecycle
type Service interface {
	Create(ctx context.Context, accountID int64, name string) (*domain.Character, error)
	// Get returns the view of the character visible to the caller; money is owner-only
	Get(ctx context.Context, characterID, callerAccountID int64) (*domain.CharacterView, error)
	Delete(ctx context.Context, characterID, callerAccountID int64) error
}

type service struct {
	repo  repository.Character
	locks *concurrency.LockManager
}

// NewService creates a character service. locks must be the same manager the
// economy service uses so a delete cannot interleave with a transaction.
func NewService(repo repository.Character, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{repo: repo, locks: locks}
}

func (s *service) Create(ctx context.Context, accountID int64, name string) (*domain.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf(ErrMsgNameRequiredFmt, domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCharacterNameLength {
		return nil, fmt.Errorf(ErrMsgNameTooLongFmt, domain.MaxCharacterNameLength, domain.ErrInvalidInput)
	}

	character := &domain.Character{
		AccountID: accountID,
		Name:      name,
		Money:     domain.DefaultStartingMoney,
		Stats:     domain.BaseStats(),
	}
	if err := s.repo.CreateCharacter(ctx, character); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgCharacterCreated, "character_id", character.ID, "account_id", accountID)
	return character, nil
}

func (s *service) Get(ctx context.Context, characterID, callerAccountID int64) (*domain.CharacterView, error) {
	character, err := s.get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	view := character.ViewFor(callerAccountID)
	return &view, nil
}

func (s *service) Delete(ctx context.Context, characterID, callerAccountID int64) error {
	unlock := s.locks.LockCharacter(characterID)
	deleted := false
	defer func() {
		unlock()
		if deleted {
			s.locks.Forget(concurrency.CharacterKey(characterID))
		}
	}()

	character, err := s.get(ctx, characterID)
	if err != nil {
		return err
	}
	if !character.IsOwnedBy(callerAccountID) {
		return fmt.Errorf(ErrMsgNotOwnerFmt, characterID, domain.ErrForbidden)
	}

	if err := s.repo.DeleteCharacter(ctx, characterID); err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return err
		}
		return fmt.Errorf(ErrMsgDeleteFailed, err)
	}
	deleted = true

	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "character_id", characterID, "account_id", callerAccountID)
	return nil
}

func (s *service) get(ctx context.Context, characterID int64) (*domain.Character, error) {
	if characterID < 1 {
		return nil, fmt.Errorf(ErrMsgInvalidCharacterIDFmt, characterID, domain.ErrInvalidInput)
	}
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetFailed, err)
	}
	return character, nil
}
