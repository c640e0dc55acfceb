package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the persistence layer.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Transfer   TransactionType = "transfer"
)

// Transaction is the persistence-layer representation of a transaction row.
// The table is append-only: rows are never updated or deleted.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"` // FK -> bank_accounts.account_id
	Amount          decimal.Decimal `db:"amount"`     // NUMERIC(15,2), unsigned
	TransactionType TransactionType `db:"transaction_type"`
	Description     string          `db:"description"` // Nullable
	CreatedAt       time.Time       `db:"created_at"`
}
