package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "placeholder_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Add(3)
	return reg
}

func TestMetricsHandler_Metrics(t *testing.T) {
	handler := NewMetricsHandler(newRegistry(t))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "placeholder_test_total 3")
}

func TestMetricsHandler_Healthz(t *testing.T) {
	handler := NewMetricsHandler(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())
}

func TestMetricsHandler_UnknownRoute(t *testing.T) {
	handler := NewMetricsHandler(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodPost, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestMetricsServer_Lifecycle(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	srv, err := StartMetricsServer("127.0.0.1:0", NewMetricsHandler(newRegistry(t)), logger)
	require.NoError(t, err)

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "placeholder_test_total 3")

	require.NoError(t, srv.Shutdown(context.Background()))
}
