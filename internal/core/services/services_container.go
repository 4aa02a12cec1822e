package services

import (
	portsrepo "github.com/assetforge/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/assetforge/fixed_asset_app/internal/core/ports/services"
)

// serviceContainer wires the service facades over a repository provider and
// the audit publisher.
type serviceContainer struct {
	category portssvc.CategorySvcFacade
	asset    portssvc.AssetSvcFacade
}

// NewServiceContainer creates a new service container with initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, audit portssvc.AuditPublisher) portssvc.ServiceProvider {
	return &serviceContainer{
		category: NewCategoryService(repos.Category(), audit),
		asset:    NewAssetService(repos.Category(), repos.Asset(), repos.Ledger(), audit),
	}
}

func (c *serviceContainer) Category() portssvc.CategorySvcFacade { return c.category }
func (c *serviceContainer) Asset() portssvc.AssetSvcFacade       { return c.asset }
