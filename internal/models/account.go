package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the persistence-layer representation of a bank account row.
type Account struct {
	AccountID     string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	AccountNumber string          `db:"account_number"`
	BankName      string          `db:"bank_name"`
	Balance       decimal.Decimal `db:"balance"` // NUMERIC(15,2)
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
