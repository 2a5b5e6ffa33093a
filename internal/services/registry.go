package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	ListingService     ListingService
	ApplicationService ApplicationService
	MessageService     MessageService
}
