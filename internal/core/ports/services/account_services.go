package services

import (
	"context"

	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	"github.com/portalsuite/bank_ledger_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// ListAccountsForUser retrieves every account owned by the user. Read
	// failures degrade to an empty slice rather than propagating.
	ListAccountsForUser(ctx context.Context, userID string) ([]domain.Account, error)

	// GetAccountForUser retrieves a specific account only if owned by userID.
	GetAccountForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount persists a new account with balance 0.00 for the user.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
