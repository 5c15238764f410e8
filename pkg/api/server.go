// Package api exposes validation as a small HTTP service, for setups that
// gate pipeline changes through a shared daemon instead of a local hook.
// Each request runs an independent, stateless validation, so the handlers
// need no locking.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/gatewerk/pipecheck/pkg/catalog"
	"github.com/gatewerk/pipecheck/pkg/config"
	"github.com/gatewerk/pipecheck/pkg/logging"
)

// Server represents the HTTP validation server
type Server struct {
	config  *config.Config
	router  *mux.Router
	server  *http.Server
	logger  logging.Logger
	catalog catalog.Catalog
}

// NewServer creates a new validation server. The catalog may be nil, in
// which case node-type verification is skipped.
func NewServer(cfg *config.Config, logger logging.Logger, cat catalog.Catalog) *Server {
	s := &Server{
		config:  cfg,
		router:  mux.NewRouter(),
		logger:  logger,
		catalog: cat,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(requestIDMiddleware(s.logger))

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/validate", s.handleValidate).Methods(http.MethodPost)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

// Handler returns the server's HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting HTTP server", logging.F("addr", addr))

	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop stops the HTTP server gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
