package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.ForeignKeyViolation
}

func isCheckViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.CheckViolation
}

// nonNilStats keeps JSONB columns from being written as SQL NULL
func nonNilStats(s domain.Stats) domain.Stats {
	if s == nil {
		return domain.Stats{}
	}
	return s
}

const characterColumns = `character_id, account_id, name, money, stats, created_at`

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var c domain.Character
	if err := row.Scan(&c.ID, &c.AccountID, &c.Name, &c.Money, &c.Stats, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Stats = nonNilStats(c.Stats)
	return &c, nil
}

func getCharacter(ctx context.Context, q querier, characterID int64, forUpdate bool) (*domain.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE character_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	c, err := scanCharacter(q.QueryRow(ctx, query, characterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, err
	}
	return c, nil
}
