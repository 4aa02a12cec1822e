package services

// ServiceProvider aggregates the service facades for route wiring.
type ServiceProvider interface {
	Category() CategorySvcFacade
	Asset() AssetSvcFacade
}
