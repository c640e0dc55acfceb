package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType names the kind of ledger event recorded against an account.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	// Transfer is a declared kind with no balance effect; transactions of this
	// kind are appended to the log but leave the account untouched.
	Transfer TransactionType = "transfer"
)

// Transaction is an append-only log entry recording a single event against an
// account. Rows are never updated or deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> Account.AccountID (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Unsigned, scale 2; effect comes from Type, not sign
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"` // Optional free text
	CreatedAt     time.Time       `json:"createdAt"`   // Immutable
}

// BalanceDelta returns the signed effect this transaction has on the owning
// account's balance. Kinds other than deposit/withdrawal are log-only and
// contribute zero.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	switch t.Type {
	case Deposit:
		return t.Amount
	case Withdrawal:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// MutatesBalance reports whether applying this transaction changes the account
// balance.
func (t *Transaction) MutatesBalance() bool {
	return t.Type == Deposit || t.Type == Withdrawal
}
