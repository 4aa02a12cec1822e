package repositories

// RepositoryProvider aggregates all repository facades so wiring code can pass
// a single dependency around.
type RepositoryProvider interface {
	Category() CategoryRepositoryFacade
	Asset() AssetRepositoryFacade
	Ledger() LedgerRepositoryFacade
}
