package services

// ServiceContainer groups the services handed to the handler layer.
type ServiceContainer struct {
	RecommendationService RecommendationService
	EventService          EventService
}
