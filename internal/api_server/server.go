package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/pkg/log"
	"github.com/americanglobalgroup/parcel-tracker/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	healthCheckTimeout      = 2 * time.Second
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Server exposes the operational endpoints of the bot: /health and /metrics.
type Server struct {
	store    store.Store
	listener net.Listener
	handler  http.Handler
}

// New returns a server serving on listener. Its request metrics are
// registered on registerer.
func New(s store.Store, listener net.Listener, registerer prometheus.Registerer) *Server {
	srv := &Server{
		store:    s,
		listener: listener,
	}
	srv.handler = srv.routes(registerer)
	return srv
}

func (s *Server) routes(registerer prometheus.Registerer) http.Handler {
	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	for _, c := range metricMiddleware.Collectors() {
		if err := registerer.Register(c); err != nil {
			zap.S().Named("api_server").Warnw("failed to register http metrics", "error", err)
		}
	}

	router.Use(
		metricMiddleware.Handler,
		chiMiddleware.RequestID,
		log.Logger(zap.L(), "router"),
		chiMiddleware.Recoverer,
	)

	router.Get("/health", s.health)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Handler returns the router of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "ok"}
	if err := s.store.Ping(ctx); err != nil {
		zap.S().Named("api_server").Warnw("database is not reachable", "error", err)
		resp.Status = "degraded"
		resp.Database = err.Error()
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, resp)
}

func (s *Server) Run(ctx context.Context) error {
	srv := http.Server{Handler: s.handler}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("serving health and metrics: %s", s.listener.Addr())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
