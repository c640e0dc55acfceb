package services

import (
	portsrepo "github.com/portalsuite/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/portalsuite/bank_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the service layer on top of a storage backend.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo),
		Ledger:  NewLedgerService(repos.AccountRepo, repos.LedgerRepo),
	}
}
