package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

func TestRepositories_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	t.Run("account login id is unique", func(t *testing.T) {
		repo := NewAccountRepository(pool)
		first := &domain.Account{LoginID: "alice", PasswordHash: "h", Name: "Alice"}
		require.NoError(t, repo.CreateAccount(ctx, first))
		assert.Positive(t, first.ID)

		err := repo.CreateAccount(ctx, &domain.Account{LoginID: "alice", PasswordHash: "h"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		found, err := repo.GetAccountByLoginID(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)

		_, err = repo.GetAccountByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("character lifecycle", func(t *testing.T) {
		c := seedCharacter(t, pool, "bob", "Bobby")
		repo := NewCharacterRepository(pool)

		got, err := repo.GetCharacter(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultStartingMoney, got.Money)
		assert.True(t, got.Stats.Equal(domain.BaseStats()))

		err = repo.CreateCharacter(ctx, &domain.Character{AccountID: c.AccountID, Name: "Bobby"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		err = repo.CreateCharacter(ctx, &domain.Character{AccountID: 999999, Name: "Ghost"})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)

		require.NoError(t, repo.DeleteCharacter(ctx, c.ID))
		_, err = repo.GetCharacter(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
		assert.ErrorIs(t, repo.DeleteCharacter(ctx, c.ID), domain.ErrCharacterNotFound)
	})

	t.Run("item upsert and lookup", func(t *testing.T) {
		seedItems(t, pool)
		repo := NewItemRepository(pool)

		require.NoError(t, repo.UpsertItems(ctx, []domain.Item{
			{Code: 3, Name: "Potion", Price: 120},
		}))

		item, err := repo.GetItemByCode(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 120, item.Price)
		assert.NotNil(t, item.Stats)

		_, err = repo.GetItemByCode(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		items, err := repo.GetItemsByCodes(ctx, []int{1, 2, 404})
		require.NoError(t, err)
		assert.Len(t, items, 2)

		all, err := repo.ListItems(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("sync metadata", func(t *testing.T) {
		repo := NewItemRepository(pool)

		meta, err := repo.GetSyncMetadata(ctx, "items.json")
		require.NoError(t, err)
		assert.Nil(t, meta)

		now := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
			ConfigName: "items.json", LastSyncTime: now, FileHash: "abc", FileModTime: now,
		}))

		meta, err = repo.GetSyncMetadata(ctx, "items.json")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "abc", meta.FileHash)
	})
}

func TestEconomyTx_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	seedItems(t, pool)
	c := seedCharacter(t, pool, "carol", "Carol")
	repo := NewEconomyRepository(pool)

	t.Run("money never goes negative", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		_, err = tx.AdjustMoney(ctx, c.ID, -(domain.DefaultStartingMoney + 1))
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		balance, err := tx.AdjustMoney(ctx, c.ID, -domain.DefaultStartingMoney)
		require.NoError(t, err)
		assert.Equal(t, 0, balance)

		_, err = tx.AdjustMoney(ctx, 999999, 10)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("inventory lines are removed at zero", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		count, err := tx.AddInventory(ctx, c.ID, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		count, err = tx.AddInventory(ctx, c.ID, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		_, err = tx.RemoveInventory(ctx, c.ID, 1, 6)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		remaining, err := tx.RemoveInventory(ctx, c.ID, 1, 5)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		line, err := tx.GetInventoryLine(ctx, c.ID, 1)
		require.NoError(t, err)
		assert.Nil(t, line)

		_, err = tx.RemoveInventory(ctx, c.ID, 1, 1)
		assert.ErrorIs(t, err, domain.ErrItemNotOwned)

		_, err = tx.AddInventory(ctx, c.ID, 404, 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("equipped items are unique per character", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		equipped, err := tx.InsertEquippedItem(ctx, c.ID, 2, domain.Stats{"hp": 50})
		require.NoError(t, err)
		assert.Equal(t, "Leather Armor", equipped.Name)

		_, err = tx.InsertEquippedItem(ctx, c.ID, 2, domain.Stats{"hp": 50})
		assert.ErrorIs(t, err, domain.ErrAlreadyEquipped)
	})

	t.Run("unequip returns stored snapshot", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		_, err = tx.InsertEquippedItem(ctx, c.ID, 1, domain.Stats{"pow": 10})
		require.NoError(t, err)

		removed, err := tx.DeleteEquippedItem(ctx, c.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 10, removed.Stats["pow"])

		_, err = tx.DeleteEquippedItem(ctx, c.ID, 1)
		assert.ErrorIs(t, err, domain.ErrNotEquipped)
	})

	t.Run("rolled back work is not visible", func(t *testing.T) {
		got, err := repo.GetCharacter(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultStartingMoney, got.Money)

		inv, err := repo.ListInventory(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, inv)

		eq, err := repo.ListEquipment(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, eq)
	})
}
