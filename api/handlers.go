package api

import (
	"time"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, baseURL string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		portfolioHandler: newPortfolioHandler(deps.Reconciler, deps.Auth, baseURL),
		adminHandler:     newAdminHandler(deps.Reconciler),
		authHandler:      newAuthHandler(deps.Auth, deps.Tokens),
		assetHandler:     newAssetHandler(deps.Assets),
		healthHandler:    newHealthHandler(deps.Reconciler, startupTime),
	}
}
