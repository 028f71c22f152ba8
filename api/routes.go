package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes registers the routes the public site reads from.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers, assetDir string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.getHealth())

		r.Get("/api/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Post("/api/portfolio", handlers.portfolioHandler.postPortfolio())
		r.Options("/api/portfolio", handlers.portfolioHandler.options())

		r.Get("/api/translations", handlers.portfolioHandler.getTranslations())
		r.Post("/api/login", handlers.authHandler.login())

		if assetDir != "" {
			r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetDir))))
		}
	})
}

// setupAdminRoutes registers the dashboard routes behind a bearer token.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/status", handlers.adminHandler.getStatus())
		r.Put("/language", handlers.adminHandler.setLanguage())
		r.Post("/language/toggle", handlers.adminHandler.toggleLanguage())
		r.Get("/{lang}", handlers.adminHandler.getSnapshot())
		r.Put("/{lang}/{collection}", handlers.adminHandler.updateCollection())
		r.Post("/save", handlers.adminHandler.save())
		r.Post("/refresh", handlers.adminHandler.refresh())
		r.Delete("/error", handlers.adminHandler.dismissError())

		r.Post("/assets", handlers.assetHandler.upload())
		r.Delete("/assets", handlers.assetHandler.delete())
	})
}
