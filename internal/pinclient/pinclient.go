package pinclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/andymarkow/cashpoint/internal/atm/session"
	"github.com/andymarkow/cashpoint/internal/httpclient"
	"github.com/andymarkow/cashpoint/internal/server/models"
)

var ErrSomethingWentWrong = errors.New("something went wrong")

var _ session.PinVerifier = (*PinClient)(nil)

// PinClient calls the bank's PIN-verification endpoint on behalf of the
// terminal.
type PinClient struct {
	log    *slog.Logger
	client *resty.Client
}

func New(opts ...Option) *PinClient {
	pinClient := &PinClient{
		log:    slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		client: httpclient.New(),
	}

	for _, opt := range opts {
		opt(pinClient)
	}

	return pinClient
}

type Option func(p *PinClient)

func WithLogger(logger *slog.Logger) Option {
	return func(p *PinClient) {
		p.log = logger
	}
}

func WithClient(client *resty.Client) Option {
	return func(p *PinClient) {
		p.client = client
	}
}

// VerifyPIN submits the PIN and returns the account balance in whole
// currency units when the bank accepts it.
func (p *PinClient) VerifyPIN(ctx context.Context, pin string) (session.Verification, error) {
	verifyData := new(models.PinVerifyResponse)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(models.PinVerifyRequest{Pin: pin}).
		SetResult(verifyData).
		Post("/api/pin/verify")
	if err != nil {
		return session.Verification{}, fmt.Errorf("client.R: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return session.Verification{
			OK:      true,
			Balance: verifyData.Balance.IntPart(),
		}, nil

	case http.StatusUnauthorized:
		return session.Verification{OK: false}, nil
	}

	return session.Verification{}, fmt.Errorf("%w: status %d", ErrSomethingWentWrong, resp.StatusCode())
}
