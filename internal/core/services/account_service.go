package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/portalsuite/bank_ledger_app/internal/apperrors"
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/portalsuite/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/portalsuite/bank_ledger_app/internal/core/ports/services"
	"github.com/portalsuite/bank_ledger_app/internal/dto"
	"github.com/portalsuite/bank_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// AccountService manages bank account creation and retrieval. Balance
// mutations are out of its reach; those belong to LedgerService.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// CreateAccount persists a new account with balance 0.00 owned by userID.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		Balance:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// ListAccountsForUser retrieves every account owned by userID.
// Repository failures degrade to an empty slice: callers cannot distinguish
// "no data" from "query failed" on this read path.
func (s *AccountService) ListAccountsForUser(ctx context.Context, userID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return []domain.Account{}, nil
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	logger.Debug("Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// GetAccountForUser retrieves a specific account only if owned by userID.
// An account owned by someone else is reported as not found.
func (s *AccountService) GetAccountForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByIDForUser(ctx, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	logger.Debug("Account retrieved", slog.String("account_id", account.AccountID))
	return account, nil
}
