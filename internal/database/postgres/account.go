package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount inserts the account and fills in its ID and CreatedAt
func (r *AccountRepository) CreateAccount(ctx context.Context, a *domain.Account) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (login_id, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING account_id, created_at`,
		a.LoginID, a.PasswordHash, a.Name).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: login id %q is taken", domain.ErrConflict, a.LoginID)
		}
		return fmt.Errorf(ErrMsgCreateAccountFailed, err)
	}
	return nil
}

// GetAccountByLoginID returns domain.ErrAccountNotFound when absent
func (r *AccountRepository) GetAccountByLoginID(ctx context.Context, loginID string) (*domain.Account, error) {
	return r.getAccount(ctx, `login_id = $1`, loginID)
}

// GetAccountByID returns domain.ErrAccountNotFound when absent
func (r *AccountRepository) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return r.getAccount(ctx, `account_id = $1`, accountID)
}

func (r *AccountRepository) getAccount(ctx context.Context, where string, arg any) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRow(ctx, `
		SELECT account_id, login_id, password_hash, name, created_at
		FROM accounts WHERE `+where, arg).
		Scan(&a.ID, &a.LoginID, &a.PasswordHash, &a.Name, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	return &a, nil
}
