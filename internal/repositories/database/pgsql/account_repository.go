package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portalsuite/bank_ledger_app/internal/apperrors"
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/portalsuite/bank_ledger_app/internal/core/ports/repositories"
	"github.com/portalsuite/bank_ledger_app/internal/models"
	"github.com/portalsuite/bank_ledger_app/internal/utils/mapping"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account row.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO bank_accounts (account_id, user_id, name, account_number, bank_name, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.UserID,
		modelAcc.Name,
		modelAcc.AccountNumber,
		modelAcc.BankName,
		modelAcc.Balance,
		modelAcc.CreatedAt,
		modelAcc.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountsByUser retrieves every account owned by userID. No ordering is
// applied.
func (r *PgxAccountRepository) FindAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, user_id, name, account_number, bank_name, balance, created_at, updated_at
		FROM bank_accounts
		WHERE user_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		if err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.UserID,
			&modelAcc.Name,
			&modelAcc.AccountNumber,
			&modelAcc.BankName,
			&modelAcc.Balance,
			&modelAcc.CreatedAt,
			&modelAcc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(modelAcc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}

// FindAccountByIDForUser retrieves an account only if owned by userID.
// A missing row and a row owned by someone else both map to ErrNotFound.
func (r *PgxAccountRepository) FindAccountByIDForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, name, account_number, bank_name, balance, created_at, updated_at
		FROM bank_accounts
		WHERE account_id = $1 AND user_id = $2;
	`
	var modelAcc models.Account
	err := r.pool.QueryRow(ctx, query, accountID, userID).Scan(
		&modelAcc.AccountID,
		&modelAcc.UserID,
		&modelAcc.Name,
		&modelAcc.AccountNumber,
		&modelAcc.BankName,
		&modelAcc.Balance,
		&modelAcc.CreatedAt,
		&modelAcc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}
