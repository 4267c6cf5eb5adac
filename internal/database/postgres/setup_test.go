package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Outfitter_Go/internal/database"
	"github.com/osse101/Outfitter_Go/internal/domain"
)

// setupTestDB starts a disposable Postgres, applies the embedded migrations
// and returns a pool that is closed when the test ends.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr, 25, 30*time.Minute, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	return pool
}

// seedCharacter creates an account and one character with the default starting state
func seedCharacter(t *testing.T, pool *pgxpool.Pool, loginID, name string) *domain.Character {
	t.Helper()
	ctx := context.Background()

	account := &domain.Account{LoginID: loginID, PasswordHash: "hash", Name: loginID}
	require.NoError(t, NewAccountRepository(pool).CreateAccount(ctx, account))

	character := &domain.Character{
		AccountID: account.ID,
		Name:      name,
		Money:     domain.DefaultStartingMoney,
		Stats:     domain.BaseStats(),
	}
	require.NoError(t, NewCharacterRepository(pool).CreateCharacter(ctx, character))
	return character
}

// seedItems upserts a small catalog
func seedItems(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	require.NoError(t, NewItemRepository(pool).UpsertItems(context.Background(), []domain.Item{
		{Code: 1, Name: "Wooden Sword", Price: 1000, Stats: domain.Stats{"pow": 10}},
		{Code: 2, Name: "Leather Armor", Price: 1500, Stats: domain.Stats{"hp": 50}},
		{Code: 3, Name: "Potion", Price: 99, Stats: domain.Stats{}},
	}))
}
