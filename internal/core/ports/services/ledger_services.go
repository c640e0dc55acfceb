package services

import (
	"context"

	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	"github.com/portalsuite/bank_ledger_app/internal/dto"
)

// LedgerSvcFacade applies monetary operations to accounts and reads the
// resulting transaction log.
type LedgerSvcFacade interface {
	// ApplyTransaction applies a deposit/withdrawal (or logs a pass-through
	// kind) to the account, atomically with the transaction append.
	ApplyTransaction(ctx context.Context, accountID string, userID string, req dto.ApplyTransactionRequest) (*domain.Transaction, error)

	// ListTransactionsForAccount returns the account's history, newest first,
	// only if the user owns the account; otherwise an empty slice.
	ListTransactionsForAccount(ctx context.Context, accountID string, userID string) ([]domain.Transaction, error)
}
