package router

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/andymarkow/cashpoint/internal/server/handlers"
	"github.com/andymarkow/cashpoint/internal/storage"
)

type Options struct {
	log *slog.Logger
}

func NewRouter(store storage.Storage, opts ...Option) chi.Router {
	r := chi.NewRouter()

	rOpts := Options{
		log: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(&rOpts)
	}

	r.Use(
		middleware.Recoverer,
		middleware.StripSlashes,
		middleware.Logger,
	)

	h := handlers.NewHandlers(store,
		handlers.WithLogger(rOpts.log),
	)

	r.Get("/ping", h.Ping)

	r.Post("/api/pin/verify", h.PinVerify)

	return r
}

type Option func(r *Options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.log = logger
	}
}
