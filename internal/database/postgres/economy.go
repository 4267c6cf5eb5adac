package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// EconomyRepository implements repository.Economy for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// EconomyTx implements repository.EconomyTx
type EconomyTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToBeginTransaction, err)
	}
	return &EconomyTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *EconomyTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *EconomyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetCharacter reads committed character state
func (r *EconomyRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	c, err := getCharacter(ctx, r.db, characterID, false)
	if err != nil && !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, characterID, err)
	}
	return c, err
}

// ListInventory returns the character's inventory lines ordered by item code
func (r *EconomyRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT il.character_id, il.item_code, i.name, il.count
		FROM inventory_lines il
		JOIN items i ON i.item_code = il.item_code
		WHERE il.character_id = $1
		ORDER BY il.item_code`, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	defer rows.Close()

	lines := []domain.InventoryLine{}
	for rows.Next() {
		var l domain.InventoryLine
		if err := rows.Scan(&l.CharacterID, &l.ItemCode, &l.Name, &l.Count); err != nil {
			return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	return lines, nil
}

// ListEquipment returns the character's equipped items ordered by item code
func (r *EconomyRepository) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquippedItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.equip_id, e.character_id, e.item_code, i.name, e.stats
		FROM equipped_items e
		JOIN items i ON i.item_code = e.item_code
		WHERE e.character_id = $1
		ORDER BY e.item_code`, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListEquipmentFailed, err)
	}
	defer rows.Close()

	equipped := []domain.EquippedItem{}
	for rows.Next() {
		var e domain.EquippedItem
		if err := rows.Scan(&e.ID, &e.CharacterID, &e.ItemCode, &e.Name, &e.Stats); err != nil {
			return nil, fmt.Errorf(ErrMsgListEquipmentFailed, err)
		}
		e.Stats = nonNilStats(e.Stats)
		equipped = append(equipped, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListEquipmentFailed, err)
	}
	return equipped, nil
}

// GetCharacterForUpdate locks the character row for the rest of the transaction
func (t *EconomyTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	c, err := getCharacter(ctx, t.tx, characterID, true)
	if err != nil && !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, fmt.Errorf(ErrMsgLockCharacterFailed, characterID, err)
	}
	return c, err
}

// AdjustMoney applies delta in a single guarded statement so the balance never goes negative
func (t *EconomyTx) AdjustMoney(ctx context.Context, characterID int64, delta int) (int, error) {
	var balance int
	err := t.tx.QueryRow(ctx, `
		UPDATE characters
		SET money = money + $2
		WHERE character_id = $1 AND money + $2 >= 0
		RETURNING money`, characterID, delta).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf(ErrMsgAdjustMoneyFailed, characterID, err)
	}

	var exists bool
	if err := t.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM characters WHERE character_id = $1)`, characterID).Scan(&exists); err != nil {
		return 0, fmt.Errorf(ErrMsgAdjustMoneyFailed, characterID, err)
	}
	if !exists {
		return 0, domain.ErrCharacterNotFound
	}
	return 0, domain.ErrInsufficientFunds
}

// AdjustStats overwrites the character's stat block
func (t *EconomyTx) AdjustStats(ctx context.Context, characterID int64, stats domain.Stats) error {
	tag, err := t.tx.Exec(ctx, `UPDATE characters SET stats = $2 WHERE character_id = $1`, characterID, nonNilStats(stats))
	if err != nil {
		return fmt.Errorf(ErrMsgAdjustStatsFailed, characterID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// GetInventoryLine returns nil when the character holds none of the item
func (t *EconomyTx) GetInventoryLine(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryLine, error) {
	var l domain.InventoryLine
	err := t.tx.QueryRow(ctx, `
		SELECT il.character_id, il.item_code, i.name, il.count
		FROM inventory_lines il
		JOIN items i ON i.item_code = il.item_code
		WHERE il.character_id = $1 AND il.item_code = $2
		FOR UPDATE OF il`, characterID, itemCode).Scan(&l.CharacterID, &l.ItemCode, &l.Name, &l.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return &l, nil
}

// AddInventory upserts a line, incrementing an existing count
func (t *EconomyTx) AddInventory(ctx context.Context, characterID int64, itemCode, count int) (int, error) {
	var newCount int
	err := t.tx.QueryRow(ctx, `
		INSERT INTO inventory_lines (character_id, item_code, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, item_code)
		DO UPDATE SET count = inventory_lines.count + EXCLUDED.count
		RETURNING count`, characterID, itemCode, count).Scan(&newCount)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return 0, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemCode)
		case isCheckViolation(err):
			return 0, fmt.Errorf("%w: count %d", domain.ErrInvalidInput, count)
		}
		return 0, fmt.Errorf(ErrMsgAddInventoryFailed, err)
	}
	return newCount, nil
}

// RemoveInventory decrements a line and deletes it when it reaches zero
func (t *EconomyTx) RemoveInventory(ctx context.Context, characterID int64, itemCode, count int) (int, error) {
	var current int
	err := t.tx.QueryRow(ctx, `
		SELECT count FROM inventory_lines
		WHERE character_id = $1 AND item_code = $2
		FOR UPDATE`, characterID, itemCode).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotOwned
		}
		return 0, fmt.Errorf(ErrMsgRemoveInventoryFailed, err)
	}

	if current < count {
		return 0, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientStock, current, count)
	}

	if current == count {
		if _, err := t.tx.Exec(ctx, `DELETE FROM inventory_lines WHERE character_id = $1 AND item_code = $2`, characterID, itemCode); err != nil {
			return 0, fmt.Errorf(ErrMsgRemoveInventoryFailed, err)
		}
		return 0, nil
	}

	var remaining int
	err = t.tx.QueryRow(ctx, `
		UPDATE inventory_lines SET count = count - $3
		WHERE character_id = $1 AND item_code = $2
		RETURNING count`, characterID, itemCode, count).Scan(&remaining)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgRemoveInventoryFailed, err)
	}
	return remaining, nil
}

// GetEquippedItem returns nil when the item is not equipped
func (t *EconomyTx) GetEquippedItem(ctx context.Context, characterID int64, itemCode int) (*domain.EquippedItem, error) {
	var e domain.EquippedItem
	err := t.tx.QueryRow(ctx, `
		SELECT e.equip_id, e.character_id, e.item_code, i.name, e.stats
		FROM equipped_items e
		JOIN items i ON i.item_code = e.item_code
		WHERE e.character_id = $1 AND e.item_code = $2`, characterID, itemCode).
		Scan(&e.ID, &e.CharacterID, &e.ItemCode, &e.Name, &e.Stats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetEquippedFailed, err)
	}
	e.Stats = nonNilStats(e.Stats)
	return &e, nil
}

// InsertEquippedItem records a worn item with the stat delta that was applied
func (t *EconomyTx) InsertEquippedItem(ctx context.Context, characterID int64, itemCode int, stats domain.Stats) (*domain.EquippedItem, error) {
	e := domain.EquippedItem{CharacterID: characterID, ItemCode: itemCode, Stats: nonNilStats(stats)}
	err := t.tx.QueryRow(ctx, `
		WITH ins AS (
			INSERT INTO equipped_items (character_id, item_code, stats)
			VALUES ($1, $2, $3)
			RETURNING equip_id, item_code
		)
		SELECT ins.equip_id, i.name FROM ins JOIN items i ON i.item_code = ins.item_code`,
		characterID, itemCode, e.Stats).Scan(&e.ID, &e.Name)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrAlreadyEquipped
		case isForeignKeyViolation(err):
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemCode)
		}
		return nil, fmt.Errorf(ErrMsgInsertEquippedFailed, err)
	}
	return &e, nil
}

// DeleteEquippedItem removes a worn item and returns the stored snapshot
func (t *EconomyTx) DeleteEquippedItem(ctx context.Context, characterID int64, itemCode int) (*domain.EquippedItem, error) {
	e := domain.EquippedItem{CharacterID: characterID, ItemCode: itemCode}
	err := t.tx.QueryRow(ctx, `
		DELETE FROM equipped_items e
		USING items i
		WHERE e.character_id = $1 AND e.item_code = $2 AND i.item_code = e.item_code
		RETURNING e.equip_id, i.name, e.stats`, characterID, itemCode).Scan(&e.ID, &e.Name, &e.Stats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotEquipped
		}
		return nil, fmt.Errorf(ErrMsgDeleteEquippedFailed, err)
	}
	e.Stats = nonNilStats(e.Stats)
	return &e, nil
}
