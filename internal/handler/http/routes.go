package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/signin", h.signin)
		r.Post("/auth/spotify/register", h.spotifyRegister)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.currentUser)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
