package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portalsuite/bank_ledger_app/internal/apperrors"
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/portalsuite/bank_ledger_app/internal/core/ports/repositories"
	"github.com/portalsuite/bank_ledger_app/internal/models"
	"github.com/portalsuite/bank_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the transaction log and
// the atomic balance mutation unit.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// ApplyTransaction executes one atomic unit of work: it locks the account row,
// enforces the non-negative-balance invariant for withdrawals, mutates the
// balance, bumps updated_at and appends the transaction row. The row lock
// (SELECT ... FOR UPDATE) serializes concurrent operations on the same
// account so two withdrawals cannot both pass the funds check against a
// stale balance.
func (r *PgxLedgerRepository) ApplyTransaction(ctx context.Context, userID string, txn domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransactionFailed, err)
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT balance
		FROM bank_accounts
		WHERE account_id = $1 AND user_id = $2
		FOR UPDATE;
	`
	var balance decimal.Decimal
	err = tx.QueryRow(ctx, lockQuery, txn.AccountID, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to lock account %s: %v", apperrors.ErrTransactionFailed, txn.AccountID, err)
	}

	if txn.Type == domain.Withdrawal && txn.Amount.GreaterThan(balance) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, balance, txn.Amount)
	}

	delta := txn.BalanceDelta()
	updateQuery := `
		UPDATE bank_accounts
		SET balance = balance + $2, updated_at = $3
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, txn.AccountID, delta, txn.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update balance for account %s: %v", apperrors.ErrTransactionFailed, txn.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Cannot happen while the row lock is held.
		return nil, fmt.Errorf("%w: account %s vanished during update", apperrors.ErrTransactionFailed, txn.AccountID)
	}

	modelTxn := mapping.ToModelTransaction(txn)
	var description sql.NullString
	if modelTxn.Description != "" {
		description = sql.NullString{String: modelTxn.Description, Valid: true}
	}

	insertQuery := `
		INSERT INTO transactions (transaction_id, account_id, amount, transaction_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelTxn.TransactionID,
		modelTxn.AccountID,
		modelTxn.Amount,
		modelTxn.TransactionType,
		description,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert transaction %s: %v", apperrors.ErrTransactionFailed, modelTxn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransactionFailed, err)
	}

	return &txn, nil
}

// ListTransactionsForAccount returns the account's transactions ordered by
// creation time descending.
func (r *PgxLedgerRepository) ListTransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, amount, transaction_type, description, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		var description sql.NullString
		if err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.AccountID,
			&modelTxn.Amount,
			&modelTxn.TransactionType,
			&description,
			&modelTxn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		if description.Valid {
			modelTxn.Description = description.String
		}
		txns = append(txns, mapping.ToDomainTransaction(modelTxn))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, nil
}
