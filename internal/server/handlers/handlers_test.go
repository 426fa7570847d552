package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andymarkow/cashpoint/internal/domain/customers"
	"github.com/andymarkow/cashpoint/internal/logger"
	"github.com/andymarkow/cashpoint/internal/server/models"
	"github.com/andymarkow/cashpoint/internal/server/router"
	"github.com/andymarkow/cashpoint/internal/storage"
	"github.com/andymarkow/cashpoint/internal/storage/inmemory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := storage.NewStorage(inmemory.NewStorage())

	customer, err := customers.NewCustomer("1234", "Alice", decimal.NewFromInt(120))
	require.NoError(t, err)
	require.NoError(t, store.CreateCustomer(context.Background(), customer))

	return router.NewRouter(store,
		router.WithLogger(logger.NewLogger(logger.WithOutput(io.Discard))),
	)
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPinVerify(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "known pin",
			body:     `{"pin":"1234"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown pin",
			body:     `{"pin":"9999"}`,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "empty payload",
			body:     "",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed payload",
			body:     "{",
			wantCode: http.StatusBadRequest,
		},
	}

	r := newTestRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pin/verify", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var resp models.PinVerifyResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Balance.Equal(decimal.NewFromInt(120)))
			}
		})
	}
}
