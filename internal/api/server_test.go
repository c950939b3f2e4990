package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtl-labs/dashboard-api/pkg/middleware"
)

func TestNewRouter_ExposesRouteMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	rt := NewRouter(Services{}, middleware.NewHTTPMetrics(registry), promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Body.String(), `dashboard_http_requests_total{method="GET",route="/healthcheck",status="200"} 1`)
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	registry := prometheus.NewRegistry()
	rt := NewRouter(Services{}, middleware.NewHTTPMetrics(registry), promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
