package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/andymarkow/cashpoint/internal/server/router"
	"github.com/andymarkow/cashpoint/internal/storage"
)

// Server is the bank-side PIN-verification HTTP service the terminal
// calls during login.
type Server struct {
	srv *http.Server
	log *slog.Logger
}

type config struct {
	serverAddr string
	log        *slog.Logger
}

func NewServer(store storage.Storage, opts ...Option) *Server {
	cfg := &config{
		serverAddr: "0.0.0.0:8081",
		log:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	r := router.NewRouter(store,
		router.WithLogger(cfg.log),
	)

	srv := &http.Server{
		Addr:              cfg.serverAddr,
		Handler:           r,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return &Server{
		srv: srv,
		log: cfg.log,
	}
}

type Option func(c *config)

func WithServerAddr(addr string) Option {
	return func(c *config) {
		c.serverAddr = addr
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.log = logger
	}
}

func (s *Server) Start() error {
	s.log.Info(fmt.Sprintf("Starting bank service on %s", s.srv.Addr))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}

	return nil
}
