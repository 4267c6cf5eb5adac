package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `item_code, name, price, stats`

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.Code, &it.Name, &it.Price, &it.Stats); err != nil {
			return nil, err
		}
		it.Stats = nonNilStats(it.Stats)
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListItems returns the whole catalog ordered by code
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_code`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// GetItemByCode returns domain.ErrItemNotFound when absent
func (r *ItemRepository) GetItemByCode(ctx context.Context, itemCode int) (*domain.Item, error) {
	var it domain.Item
	err := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_code = $1`, itemCode).
		Scan(&it.Code, &it.Name, &it.Price, &it.Stats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemCode)
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailed, itemCode, err)
	}
	it.Stats = nonNilStats(it.Stats)
	return &it, nil
}

// GetItemsByCodes returns the rows that exist; missing codes are simply absent
func (r *ItemRepository) GetItemsByCodes(ctx context.Context, itemCodes []int) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE item_code = ANY($1) ORDER BY item_code`, itemCodes)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemsFailed, err)
	}
	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemsFailed, err)
	}
	return items, nil
}

// UpsertItems writes all definitions in one transaction
func (r *ItemRepository) UpsertItems(ctx context.Context, items []domain.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO items (item_code, name, price, stats, updated_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (item_code) DO UPDATE
			SET name = EXCLUDED.name, price = EXCLUDED.price, stats = EXCLUDED.stats, updated_at = NOW()`,
			it.Code, it.Name, it.Price, nonNilStats(it.Stats))
	}

	results := tx.SendBatch(ctx, batch)
	for _, it := range items {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf(ErrMsgUpsertItemFailed, it.Code, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf(ErrMsgUpsertItemFailed, 0, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgFailedToCommit, err)
	}
	return nil
}

// GetSyncMetadata returns nil when the config has never been synced
func (r *ItemRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var m domain.SyncMetadata
	err := r.db.QueryRow(ctx, `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata WHERE config_name = $1`, configName).
		Scan(&m.ConfigName, &m.LastSyncTime, &m.FileHash, &m.FileModTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetSyncMetaFailed, err)
	}
	return &m, nil
}

// UpsertSyncMetadata records the last successful sync of a config file
func (r *ItemRepository) UpsertSyncMetadata(ctx context.Context, m *domain.SyncMetadata) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time`,
		m.ConfigName, m.LastSyncTime, m.FileHash, m.FileModTime)
	if err != nil {
		return fmt.Errorf(ErrMsgUpsertSyncMetaFail, err)
	}
	return nil
}
