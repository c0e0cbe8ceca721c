package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container, so wiring does not depend on a concrete adapter.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
}
