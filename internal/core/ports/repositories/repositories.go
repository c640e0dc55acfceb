package repositories

// RepositoryProvider bundles the repositories a storage backend must supply.
// Both the pgsql and the in-memory backends produce one of these.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	LedgerRepo  LedgerRepository
}
