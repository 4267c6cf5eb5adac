package repository

import (
	"context"

	"github.com/osse101/Outfitter_Go/internal/domain"
)

// Account defines the interface for account persistence
type Account interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByLoginID(ctx context.Context, loginID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
}
