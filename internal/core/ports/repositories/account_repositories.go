package repositories

import (
	"context"

	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountsByUser retrieves every account owned by userID. Order is
	// insignificant.
	FindAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)

	// FindAccountByIDForUser retrieves an account only if it is owned by
	// userID; otherwise it returns apperrors.ErrNotFound. This is the
	// access-control boundary for per-account operations.
	FindAccountByIDForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account with its initial zero balance.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepository combines account read and write operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
