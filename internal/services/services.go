package services

// ServiceContainer bundles the service layer for handler wiring.
type ServiceContainer struct {
	Users      UserService
	Sellers    SellerService
	Favorites  FavoriteService
	Catalog    CatalogService
	Locations  LocationService
	Blog       BlogService
	SiteConfig SiteConfigService
}
