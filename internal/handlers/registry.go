package handlers

// AppHandlers groups the handlers registered by the routes package.
type AppHandlers struct {
	RecommendationHandler *RecommendationHandler
	EventHandler          *EventHandler
}
