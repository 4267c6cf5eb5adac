package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Outfitter_Go/internal/database/postgres"
)

// Repositories holds the postgres-backed stores
type Repositories struct {
	Accounts   *postgres.AccountRepository
	Characters *postgres.CharacterRepository
	Economy    *postgres.EconomyRepository
	Items      *postgres.ItemRepository
}

// InitializeRepositories creates all repository instances over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Accounts:   postgres.NewAccountRepository(dbPool),
		Characters: postgres.NewCharacterRepository(dbPool),
		Economy:    postgres.NewEconomyRepository(dbPool),
		Items:      postgres.NewItemRepository(dbPool),
	}
}
