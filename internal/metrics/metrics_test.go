package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Run("creates and registers all metrics", func(t *testing.T) {
		m := NewMetrics(prometheus.NewRegistry())

		require.NotNil(t, m)
		assert.NotNil(t, m.HTTPRequestsTotal)
		assert.NotNil(t, m.HTTPRequestDuration)
		assert.NotNil(t, m.GRPCRequestsTotal)
		assert.NotNil(t, m.AuthOperationsTotal)
		assert.NotNil(t, m.AuthOperationDuration)
	})

	t.Run("double registration panics", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		NewMetrics(registry)
		assert.Panics(t, func() { NewMetrics(registry) })
	})
}

func TestObserveAuth(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveAuth("signup", OutcomeSuccess, "", 0.1)
	m.ObserveAuth("signup", OutcomeFailure, "duplicate_account", 0.01)
	m.ObserveAuth("signup", OutcomeFailure, "duplicate_account", 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues("signup", OutcomeSuccess, "none")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues("signup", OutcomeFailure, "duplicate_account")))
}

func TestHandler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.HTTPRequestsTotal.WithLabelValues("POST", "/auth/signup", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `music_auth_http_requests_total{method="POST",route="/auth/signup",status="200"} 1`))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}
