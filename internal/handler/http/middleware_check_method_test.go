// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter creates a minimal chi.Mux without Handler.Init() so that only
// the method check is exercised.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("signed up"))
	})
	router.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/multi", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Delete("/multi", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "registered POST passes through", method: http.MethodPost, path: "/auth/signup", expectedStatus: http.StatusOK},
		{name: "registered GET passes through", method: http.MethodGet, path: "/users/me", expectedStatus: http.StatusOK},
		{name: "second method on a route passes through", method: http.MethodDelete, path: "/multi", expectedStatus: http.StatusNoContent},
		{name: "GET on a POST route", method: http.MethodGet, path: "/auth/signup", expectedStatus: http.StatusNotFound},
		{name: "PUT on a POST route", method: http.MethodPut, path: "/auth/signup", expectedStatus: http.StatusNotFound},
		{name: "POST on a GET route", method: http.MethodPost, path: "/users/me", expectedStatus: http.StatusNotFound},
		{name: "HEAD is not implied by GET", method: http.MethodHead, path: "/users/me", expectedStatus: http.StatusNotFound},
		{name: "PATCH on a multi-method route", method: http.MethodPatch, path: "/multi", expectedStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/nonexistent", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/signup", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "signed up", rr.Body.String())
}

func TestCheckHTTPMethod_WrongMethodWritesDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/auth/signup", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", decodeDetail(t, rr))
}
