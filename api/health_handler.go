package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/content"
)

type healthHandler struct {
	responder   Responder
	reconciler  *content.Reconciler
	startupTime time.Time
}

func newHealthHandler(reconciler *content.Reconciler, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:   NewResponder(logger),
		reconciler:  reconciler,
		startupTime: startupTime,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := h.reconciler.Status()
		h.responder.WriteJSON(w, map[string]any{
			"status":    "ok",
			"startedAt": h.startupTime.UTC().Format(time.RFC3339),
			"uptime":    time.Since(h.startupTime).Round(time.Second).String(),
			"loading":   status.Loading,
			"degraded":  status.Error != "",
		})
	}
}
