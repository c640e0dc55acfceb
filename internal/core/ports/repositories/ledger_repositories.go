package repositories

import (
	"context"

	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
)

// LedgerWriter applies balance-affecting operations atomically.
type LedgerWriter interface {
	// ApplyTransaction executes the single atomic unit of work of the ledger:
	// lock and read the account row for (txn.AccountID, userID), enforce the
	// non-negative-balance invariant for withdrawals, mutate the balance,
	// bump the account's updated_at, and append exactly one transaction row.
	//
	// It returns apperrors.ErrNotFound if the account does not exist or is
	// not owned by userID, apperrors.ErrInsufficientFunds if a withdrawal
	// would overdraw, and an error wrapping apperrors.ErrTransactionFailed
	// on any persistence failure. On every error path nothing is written:
	// no partial balance update, no orphan transaction row.
	ApplyTransaction(ctx context.Context, userID string, txn domain.Transaction) (*domain.Transaction, error)
}

// LedgerReader defines read operations over the transaction log.
type LedgerReader interface {
	// ListTransactionsForAccount returns the transactions of an account
	// ordered by creation time descending (most recent first).
	ListTransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// LedgerRepository combines the atomic writer with the log reader.
type LedgerRepository interface {
	LedgerWriter
	LedgerReader
}
