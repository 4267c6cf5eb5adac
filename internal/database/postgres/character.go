package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CreateCharacter inserts the character and fills in its ID and CreatedAt
func (r *CharacterRepository) CreateCharacter(ctx context.Context, c *domain.Character) error {
	c.Stats = nonNilStats(c.Stats)
	err := r.db.QueryRow(ctx, `
		INSERT INTO characters (account_id, name, money, stats)
		VALUES ($1, $2, $3, $4)
		RETURNING character_id, created_at`,
		c.AccountID, c.Name, c.Money, c.Stats).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: character name %q is taken", domain.ErrConflict, c.Name)
		case isForeignKeyViolation(err):
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf(ErrMsgCreateCharacterFailed, err)
	}
	return nil
}

// GetCharacter returns domain.ErrCharacterNotFound when absent
func (r *CharacterRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	c, err := getCharacter(ctx, r.db, characterID, false)
	if err != nil && !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, characterID, err)
	}
	return c, err
}

// DeleteCharacter removes the character; inventory and equipment cascade
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, characterID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE character_id = $1`, characterID)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteCharacterFailed, characterID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}
