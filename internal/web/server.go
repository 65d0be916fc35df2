package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Server serves the HTTP rendition.
type Server struct {
	server   *http.Server
	logger   *slog.Logger
	listener net.Listener
	errc     chan error
}

// NewServer creates a server for handler on addr (e.g. ":8080").
func NewServer(addr string, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		errc:   make(chan error, 1),
	}
}

// Start binds the listener and serves in a background goroutine.
// Bind errors are returned; serve errors are logged and sent on Err.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.server.Addr, err)
	}
	s.listener = ln
	s.logger.Info("http server listening", "addr", ln.Addr().String())
	go func() {
		defer close(s.errc)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", "error", err)
			s.errc <- err
		}
	}()
	return nil
}

// Err delivers the error that stopped serving, if any. It is closed once
// the serve loop exits.
func (s *Server) Err() <-chan error {
	return s.errc
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
