package services

import (
	"context"
	"errors"
	"fmt"
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

// LedgerService applies validated monetary operations to accounts. Each
// operation executes as one atomic unit against the store: balance read,
// invariant check, balance mutation and transaction append either all happen
// or none do.
type LedgerService struct {
	accountRepo portsrepo.AccountRepository
	ledgerRepo  portsrepo.LedgerRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepository, ledgerRepo portsrepo.LedgerRepository) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// validateAmount checks that an amount is positive with at most two
// fractional digits. Amounts are exact decimals; no float rounding is
// tolerated anywhere on this path.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount)
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount %s has more than two fractional digits", apperrors.ErrValidation, amount)
	}
	return nil
}

// ApplyTransaction applies a named monetary operation to the account owned by
// userID. Deposits and withdrawals mutate the balance; any other kind
// (including transfer) leaves the balance unmodified but still appends a
// transaction row.
//
// Ownership is enforced here as well as on the read path: an account that
// exists but belongs to another user is reported as apperrors.ErrNotFound.
func (s *LedgerService) ApplyTransaction(ctx context.Context, accountID string, userID string, req dto.ApplyTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Amount:        req.Amount,
		Type:          req.Type,
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
	}

	applied, err := s.ledgerRepo.ApplyTransaction(ctx, userID, txn)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for transaction", slog.String("account_id", accountID))
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Withdrawal rejected, insufficient funds", slog.String("account_id", accountID), slog.String("amount", req.Amount.String()))
		default:
			logger.Error("Failed to apply transaction", slog.String("error", err.Error()), slog.String("account_id", accountID))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrTransactionFailed, err)
		}
		return nil, err
	}

	logger.Info("Transaction applied",
		slog.String("transaction_id", applied.TransactionID),
		slog.String("account_id", accountID),
		slog.String("type", string(applied.Type)),
		slog.String("amount", applied.Amount.String()),
	)
	return applied, nil
}

// ListTransactionsForAccount returns the account's history, most recent
// first. The history is only returned if userID owns the account; otherwise
// an empty slice is returned, not an error. Read failures also degrade to an
// empty slice.
func (s *LedgerService) ListTransactionsForAccount(ctx context.Context, accountID string, userID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByIDForUser(ctx, accountID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed ownership check for transaction history", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return []domain.Transaction{}, nil
	}

	txns, err := s.ledgerRepo.ListTransactionsForAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return []domain.Transaction{}, nil
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}

	logger.Debug("Transactions listed", slog.String("account_id", accountID), slog.Int("count", len(txns)))
	return txns, nil
}
