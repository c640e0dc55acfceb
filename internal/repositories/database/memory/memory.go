// Package memory provides an in-memory storage backend used for local
// development and tests. It implements the same repository ports as the
// pgsql backend; a mutex stands in for the database row lock, so the
// read-check-write unit of ApplyTransaction is just as serialized.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/portalsuite/bank_ledger_app/internal/apperrors"
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/portalsuite/bank_ledger_app/internal/core/ports/repositories"
)

// Store holds accounts and their append-only transaction logs.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	// Per-account transaction log in append order.
	txnsByAccount map[string][]domain.Transaction
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]domain.Account),
		txnsByAccount: make(map[string][]domain.Transaction),
	}
}

// NewRepositoryProvider wires the store as a repository provider.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: s,
		LedgerRepo:  s,
	}
}

var (
	_ portsrepo.AccountRepository = (*Store)(nil)
	_ portsrepo.LedgerRepository  = (*Store)(nil)
)

// SaveAccount inserts a new account.
func (s *Store) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	s.accounts[account.AccountID] = account
	return nil
}

// FindAccountsByUser returns every account owned by userID.
func (s *Store) FindAccountsByUser(_ context.Context, userID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := []domain.Account{}
	for _, acc := range s.accounts {
		if acc.UserID == userID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

// FindAccountByIDForUser returns the account only if owned by userID.
func (s *Store) FindAccountByIDForUser(_ context.Context, accountID string, userID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountID]
	if !ok || acc.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	out := acc
	return &out, nil
}

// ApplyTransaction executes the atomic ledger unit under the store mutex:
// ownership check, funds check, balance mutation and transaction append
// either all happen or none do.
func (s *Store) ApplyTransaction(_ context.Context, userID string, txn domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[txn.AccountID]
	if !ok || acc.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	if txn.Type == domain.Withdrawal && !acc.CanWithdraw(txn.Amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, acc.Balance, txn.Amount)
	}

	acc.Balance = acc.Balance.Add(txn.BalanceDelta())
	acc.UpdatedAt = txn.CreatedAt
	s.accounts[txn.AccountID] = acc
	s.txnsByAccount[txn.AccountID] = append(s.txnsByAccount[txn.AccountID], txn)

	out := txn
	return &out, nil
}

// ListTransactionsForAccount returns the account's log ordered by creation
// time descending; among equal timestamps the later-appended entry comes
// first.
func (s *Store) ListTransactionsForAccount(_ context.Context, accountID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.txnsByAccount[accountID]
	out := make([]domain.Transaction, len(log))
	for i, txn := range log {
		out[len(log)-1-i] = txn
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
