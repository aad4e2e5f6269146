package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.serviceInfo)
		r.Get("/health", h.health)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes behind a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/me", h.me)
		r.Post("/api-keys", h.createAPIKey)
		r.Get("/api-keys", h.listAPIKeys)
	})

	// routes behind an API key
	router.Group(func(r chi.Router) {
		r.Use(h.apiKeyAuth)
		r.Use(h.withUsageTracking)
		r.Post("/memories", h.createMemory)
		r.Get("/search", h.searchMemories)

		// aliases kept for SDKs built against the v1 surface
		r.Post("/v1/memory", h.createMemory)
		r.Get("/v1/recall", h.searchMemories)
	})

	return router
}
