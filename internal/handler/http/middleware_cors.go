package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS builds the CORS middleware. With no configured origins every
// origin is allowed, together with all methods and headers and credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   h.corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(opts.AllowedOrigins) == 0 {
		// "*" cannot be echoed together with credentials, so reflect the origin.
		opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
	}

	return cors.Handler(opts)
}
