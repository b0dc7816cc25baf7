package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/reconcile", h.Reconcile)
		})
	})

	return mux
}
