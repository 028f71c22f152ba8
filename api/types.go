package api

import "github.com/rpupo63/portfolio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	portfolioHandler portfolioHandler
	adminHandler     adminHandler
	authHandler      authHandler
	assetHandler     assetHandler
	healthHandler    healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"No data found"`
	Message string `json:"message,omitempty" example:"No content exists for language \"de\""`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"lang"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// PortfolioUpdateRequest is the body of POST /api/portfolio.
type PortfolioUpdateRequest struct {
	Password string                `json:"password"`
	Data     *models.SnapshotPatch `json:"data"`
}

// PortfolioUpdateResponse reports a successful save.
type PortfolioUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// SaveRequest is the body of POST /api/admin/save. Lang empty saves both
// languages.
type SaveRequest struct {
	Password string `json:"password"`
	Lang     string `json:"lang,omitempty"`
}

type LanguageRequest struct {
	Lang string `json:"lang"`
}

type AssetResponse struct {
	URL string `json:"url"`
}
