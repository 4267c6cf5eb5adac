package repository

import (
	"context"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// Character defines the interface for character lifecycle persistence
type Character interface {
	CreateCharacter(ctx context.Context, character *domain.Character) error
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	DeleteCharacter(ctx context.Context, characterID int64) error
}
