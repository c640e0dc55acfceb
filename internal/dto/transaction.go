package dto

import (
	"time"

	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyTransactionRequest defines the data needed to apply a ledger operation
// to an account. Amounts are decimal-precise; binary floats never cross this
// boundary. The dgt0 rule is registered in the handlers package.
type ApplyTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required,dgt0"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=deposit withdrawal transfer"`
	Description string                 `json:"description"`
}

// TransactionResponse defines the data returned for a transaction log entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Description   string                 `json:"description"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
	}
}

// ListTransactionsResponse wraps an account's transaction history,
// most recent first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res}
}
