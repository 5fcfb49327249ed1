// Package httpapi exposes the authentication HTTP surface: register,
// login, logout and identity-check endpoints, plus health and metrics.
// It owns the session cookie lifecycle and maps the shared error taxonomy
// onto HTTP statuses; no internal error detail ever reaches a client.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/identity"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address       string
	provider      identity.Provider
	logger        logging.Logger
	secureCookies bool
	cookieMaxAge  time.Duration
}

func NewServer(cfg *config.Config, provider identity.Provider, logger logging.Logger) *Server {
	return &Server{
		address:       cfg.EndpointAddr,
		provider:      provider,
		logger:        logger.With("module", "httpapi"),
		secureCookies: cfg.SecureCookies,
		cookieMaxAge:  cfg.TokenValidity,
	}
}

// Handler builds the route table. Split out from Run so tests can drive
// the full surface through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /auth/register", instrument("register", s.handleRegister))
	mux.Handle("POST /auth/login", instrument("login", s.handleLogin))
	mux.Handle("POST /auth/logout", instrument("logout", s.handleLogout))
	mux.Handle("GET /auth/me", instrument("me", s.handleMe))

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
