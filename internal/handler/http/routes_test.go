package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/metrics"
	"github.com/MKhiriev/music-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Healthz(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, nil).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestInit_UnknownRoutes(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, nil).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/auth"},
		{http.MethodGet, "/auth/signup"},
		{http.MethodDelete, "/auth/signin"},
		{http.MethodPost, "/users/me"},
		{http.MethodPost, "/healthz"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Not Found", decodeDetail(t, rr))
		})
	}
}

func TestInit_MetricsEndpoint(t *testing.T) {
	t.Run("served when metrics are enabled", func(t *testing.T) {
		m := metrics.NewMetrics(prometheus.NewRegistry())
		router := newTestRouter(&mockAuthService{}, m).Init()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "music_auth_http_requests_total")
	})

	t.Run("absent when metrics are disabled", func(t *testing.T) {
		router := newTestRouter(&mockAuthService{}, nil).Init()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	router := newTestRouter(&mockAuthService{}, m).Init()

	for range 3 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/me", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/users/me", "401")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestInit_CORS(t *testing.T) {
	t.Run("any origin is reflected by default", func(t *testing.T) {
		router := newTestRouter(&mockAuthService{}, nil).Init()

		req := httptest.NewRequest(http.MethodOptions, "/auth/signup", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("configured origins restrict access", func(t *testing.T) {
		h := NewHandler(&service.Services{AuthService: &mockAuthService{}}, nil, config.Server{
			CORSAllowedOrigins: []string{"https://app.example.com"},
		}, logger.Nop())
		router := h.Init()

		for origin, allowed := range map[string]bool{
			"https://app.example.com":  true,
			"https://evil.example.com": false,
		} {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("Origin", origin)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if allowed {
				assert.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		}
	})
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	svc := &mockAuthService{}
	router := newTestRouter(svc, nil).Init()

	// signup is nil on the mock, so the handler panics
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"email":"a@x.com"}`))
	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() { router.ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_RequestTimeoutIsApplied(t *testing.T) {
	h := NewHandler(&service.Services{AuthService: &mockAuthService{}}, nil, config.Server{
		RequestTimeout: time.Second,
	}, logger.Nop())
	router := h.Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
