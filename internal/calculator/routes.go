package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the graph endpoint onto the given router under the
// /api prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/graph", h.Graph)
	})
}
