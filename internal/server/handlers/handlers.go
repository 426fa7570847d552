package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/andymarkow/cashpoint/internal/server/httperr"
	"github.com/andymarkow/cashpoint/internal/server/models"
	"github.com/andymarkow/cashpoint/internal/storage"
)

type Handlers struct {
	storage storage.Storage
	log     *slog.Logger
}

// NewHandlers returns a new Handlers instance.
func NewHandlers(store storage.Storage, opts ...Option) *Handlers {
	handlers := &Handlers{
		storage: store,
		log:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	// Apply options
	for _, opt := range opts {
		opt(handlers)
	}

	return handlers
}

// Option is a functional option for Handlers.
type Option func(h *Handlers)

// WithLogger is a option for Handlers that sets logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handlers) {
		h.log = logger
	}
}

type JSONResponse struct {
	Message any `json:"message,omitempty"`
	Error   any `json:"error,omitempty"`
}

func handleJSONResponse(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func handleError(w http.ResponseWriter, err httperr.HTTPError) {
	resp := &JSONResponse{
		Error: err.Error(),
	}

	w.Header().Set("content-type", "application/json")
	w.WriteHeader(err.Code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		h.log.Error("storage.Ping", slog.Any("error", err))
		handleError(w, httperr.NewHTTPError(http.StatusInternalServerError, err))

		return
	}

	handleJSONResponse(w, http.StatusOK, &JSONResponse{Message: "ok"})
}

// PinVerify checks the submitted PIN against the customer store and
// returns the account balance when it matches.
func (h *Handlers) PinVerify(w http.ResponseWriter, r *http.Request) {
	var verifyPayload models.PinVerifyRequest

	if err := json.NewDecoder(r.Body).Decode(&verifyPayload); err != nil {
		if errors.Is(err, io.EOF) {
			h.log.Error("json.NewDecoder().Decode()", slog.Any("error", err))
			handleError(w, httperr.ErrRequestPayloadEmpty)

			return
		}

		h.log.Error("json.NewDecoder().Decode()", slog.Any("error", err))
		handleError(w, httperr.ErrRequestPayloadInvalid)

		return
	}

	defer r.Body.Close()

	customer, err := h.storage.GetCustomerByPin(r.Context(), verifyPayload.Pin)
	if err != nil {
		if errors.Is(err, storage.ErrCustomerNotFound) {
			handleError(w, httperr.ErrPinInvalid)

			return
		}

		h.log.Error("storage.GetCustomerByPin", slog.Any("error", err))
		handleError(w, httperr.NewHTTPError(http.StatusInternalServerError, err))

		return
	}

	resp := models.PinVerifyResponse{
		Balance: customer.Balance(),
	}

	handleJSONResponse(w, http.StatusOK, resp)
}
