package mapping

import (
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	"github.com/portalsuite/bank_ledger_app/internal/models"
)

// ToModelAccount converts a domain.Account to its persistence representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		Name:          d.Name,
		AccountNumber: d.AccountNumber,
		BankName:      d.BankName,
		Balance:       d.Balance,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainAccount converts a persistence row back to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		BankName:      m.BankName,
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDomainAccountSlice converts a slice of persistence rows to domain accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
