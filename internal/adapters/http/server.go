package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewMetricsHandler exposes /metrics for gatherer and a /healthz probe.
func NewMetricsHandler(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	return r
}

// MetricsServer serves a handler in the background while the browser runs.
type MetricsServer struct {
	srv      *http.Server
	listener net.Listener
	logger   *slog.Logger
	done     chan error
}

// StartMetricsServer listens on addr and serves handler until Shutdown.
func StartMetricsServer(addr string, handler http.Handler, logger *slog.Logger) (*MetricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &MetricsServer{
		srv:      &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second},
		listener: ln,
		logger:   logger,
		done:     make(chan error, 1),
	}

	go func() {
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()

	logger.Debug("metrics server started", "addr", ln.Addr().String())
	return s, nil
}

// Addr is the address actually bound, useful with ":0".
func (s *MetricsServer) Addr() string {
	return s.listener.Addr().String()
}

// Shutdown stops the server and waits for the serve loop to exit.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	err := <-s.done
	s.logger.Debug("metrics server stopped", "err", err)
	return err
}
