package services

import (
	"strings"

	"github.com/rpupo63/portfolio-backend/config"
)

// GetBaseURL retrieves the public base URL of the service from configuration.
// It first checks BASE_URL, then falls back to http://localhost:<PORT>.
//
// Parameters:
//   - cfg: Configuration map from config.New()
//
// Returns:
//   - The base URL without a trailing slash
func GetBaseURL(cfg map[string]string) string {
	if baseURL := config.GetString(cfg, "BASE_URL", ""); baseURL != "" {
		return strings.TrimRight(baseURL, "/")
	}
	return "http://localhost:" + config.GetString(cfg, "PORT", "8080")
}

// PortfolioURL is the public GET URL of the content of lang.
func PortfolioURL(baseURL, lang string) string {
	return strings.TrimRight(baseURL, "/") + "/api/portfolio?lang=" + lang
}
