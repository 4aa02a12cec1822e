package pgsql

import (
	portsrepo "github.com/assetforge/fixed_asset_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repositoryProvider struct {
	category portsrepo.CategoryRepositoryFacade
	asset    portsrepo.AssetRepositoryFacade
	ledger   portsrepo.LedgerRepositoryFacade
}

// NewRepositoryProvider wires the pgsql repositories over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return &repositoryProvider{
		category: newPgxCategoryRepository(dbPool),
		asset:    newPgxAssetRepository(dbPool),
		ledger:   newPgxLedgerRepository(dbPool),
	}
}

func (p *repositoryProvider) Category() portsrepo.CategoryRepositoryFacade { return p.category }
func (p *repositoryProvider) Asset() portsrepo.AssetRepositoryFacade       { return p.asset }
func (p *repositoryProvider) Ledger() portsrepo.LedgerRepositoryFacade     { return p.ledger }
