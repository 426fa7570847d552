package httpclient

import (
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	baseURL          string
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
}

type Option func(c *Config)

func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

func WithRetryCount(count int) Option {
	return func(c *Config) {
		c.retryCount = count
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(c *Config) {
		c.retryWaitTime = waitTime
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(c *Config) {
		c.retryMaxWaitTime = maxWaitTime
	}
}

func New(opts ...Option) *resty.Client {
	cfg := &Config{
		baseURL:          "",
		retryCount:       3,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	client := resty.New().
		SetBaseURL(cfg.baseURL).
		SetRetryCount(cfg.retryCount).
		SetRetryWaitTime(cfg.retryWaitTime).
		SetRetryMaxWaitTime(cfg.retryMaxWaitTime).
		AddRetryCondition(func(_ *resty.Response, err error) bool {
			// Retry for retryable errors
			return isRetryableError(err)
		})

	return client
}

// isRetryableError checks if the error is a retryable error.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		// Connection refused error
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			// Connection timeout error
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		// DNS error
		return true
	}

	var addrErr *net.AddrError
	if errors.As(err, &addrErr) {
		// Address error
		return true
	}

	// Operational error
	var opErr *net.OpError

	return errors.As(err, &opErr)
}
