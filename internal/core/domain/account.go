package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account held by a portal user.
// This is the primary representation used by services.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owning user, managed by the external portal account service
	Name          string          `json:"name"`          // User-defined display name
	AccountNumber string          `json:"accountNumber"` // External account number, opaque string
	BankName      string          `json:"bankName"`      // Issuing institution name, opaque string
	Balance       decimal.Decimal `json:"balance"`       // Scale 2; mutated only through the ledger service
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"` // Bumped on every balance change
}

// CanWithdraw reports whether a withdrawal of amount would keep the balance
// non-negative. Comparisons are exact decimal comparisons.
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
