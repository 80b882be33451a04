package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter assembles the HTTP surface.
func NewRouter(auditHandler *AuditHandler, health *HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)

	r.Get("/healthz", health.HandleHealthz)
	r.Get("/health", health.HandleHealth)

	r.Group(func(r chi.Router) {
		// CORS outside the recoverer so even panic responses carry headers.
		r.Use(auditHandler.corsMiddleware)
		r.Use(recovererMiddleware)
		r.Post("/audit", auditHandler.HandleAudit)
		// Preflights are answered by the CORS middleware; the route only has
		// to exist for chi to dispatch the method.
		r.Options("/audit", func(http.ResponseWriter, *http.Request) {})
	})

	return r
}
