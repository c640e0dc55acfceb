package mapping

import (
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	"github.com/portalsuite/bank_ledger_app/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its persistence representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.Type),
		Description:     d.Description,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a persistence row back to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.TransactionType),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of persistence rows to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
