package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      *auth.Authenticator
	tokens    *auth.TokenIssuer
}

func newAuthHandler(authenticator *auth.Authenticator, tokens *auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	if authenticator == nil {
		authenticator = auth.NewAuthenticator("", "")
	}

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      authenticator,
		tokens:    tokens,
	}
}

// login exchanges the admin credentials for a bearer token
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if !h.auth.Login(req.Username, req.Password) {
			h.logger.Warn().Str("username", req.Username).Str("remote_addr", r.RemoteAddr).Msg("Rejected login")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		if h.tokens == nil {
			h.responder.WriteError(w, errs.NewInternalError("token signing is not configured"))
			return
		}
		token, expiresAt, err := h.tokens.Issue(req.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign token", err))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		})
	}
}
