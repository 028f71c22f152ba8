package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/content"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

const maxPortfolioBodySize = 5 << 20

type portfolioHandler struct {
	responder  Responder
	logger     zerolog.Logger
	reconciler *content.Reconciler
	auth       *auth.Authenticator
	baseURL    string
}

func newPortfolioHandler(reconciler *content.Reconciler, authenticator *auth.Authenticator, baseURL string) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()
	if authenticator == nil {
		authenticator = auth.NewAuthenticator("", "")
	}

	return portfolioHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		reconciler: reconciler,
		auth:       authenticator,
		baseURL:    baseURL,
	}
}

// queryLanguage reads ?lang=, defaulting to English.
func queryLanguage(r *http.Request) (models.Language, error) {
	raw := r.URL.Query().Get("lang")
	if raw == "" {
		return models.English, nil
	}
	lang, err := models.ParseLanguage(raw)
	if err != nil {
		return "", errs.NewUnknownLanguageError(raw)
	}
	return lang, nil
}

// getPortfolio returns the content of one language
// @Summary Get portfolio content
// @Tags Portfolio
// @Produce json
// @Param lang query string false "Language (en or fr)" default(en)
// @Success 200 {object} models.Snapshot "Portfolio content"
// @Failure 404 {object} ErrorResponse "No data found"
// @Router /api/portfolio [get]
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := queryLanguage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		snapshot, err := h.reconciler.Snapshot(lang)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, snapshot)
	}
}

// postPortfolio replaces the content of one language and saves it
// @Summary Save portfolio content
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param lang query string false "Language (en or fr)" default(en)
// @Param body body PortfolioUpdateRequest true "Admin password and content"
// @Success 200 {object} PortfolioUpdateResponse "Data saved"
// @Failure 401 {object} ErrorResponse "Password required"
// @Failure 403 {object} ErrorResponse "Invalid password"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/portfolio [post]
func (h portfolioHandler) postPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := queryLanguage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxPortfolioBodySize)
		var req PortfolioUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Error().Err(err).Msg("Failed to decode portfolio request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("portfolio", err))
			return
		}

		if err := h.auth.VerifyPassword(req.Password); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Data == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("data"))
			return
		}

		if err := h.reconciler.ApplyPatch(lang, req.Data); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.reconciler.SaveDataAs(r.Context(), auth.NewVerifiedSession(req.Password), lang); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, PortfolioUpdateResponse{
			Success: true,
			Message: "Data saved successfully",
			URL:     services.PortfolioURL(h.baseURL, lang.String()),
		})
	}
}

// options answers plain OPTIONS requests; preflights are handled by the
// CORS middleware before reaching here
func (h portfolioHandler) options() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// getTranslations returns the UI strings of a language
// @Summary Get UI translations
// @Tags Portfolio
// @Produce json
// @Param lang query string false "Language (en or fr)"
// @Success 200 {object} map[string]string
// @Router /api/translations [get]
func (h portfolioHandler) getTranslations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := h.reconciler.Language()
		if r.URL.Query().Get("lang") != "" {
			var err error
			if lang, err = queryLanguage(r); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		h.responder.WriteJSON(w, map[string]any{
			"lang":         lang,
			"translations": models.Translations(lang),
		})
	}
}
