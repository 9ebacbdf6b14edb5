package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config configures the resty-backed fetcher.
type Config struct {
	// Timeout bounds a whole round trip including reading the body. Zero
	// means no timeout.
	Timeout   time.Duration
	UserAgent string
	// RateLimit is the maximum number of requests per second; zero or less
	// means unlimited.
	RateLimit float64
	Burst     int
	// Logger receives resty's own warnings. Nil discards them.
	Logger *zap.Logger
}

// DefaultConfig returns the production fetcher settings.
func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		UserAgent: "jsonfetch/1.0",
	}
}

// Resty is a Fetcher backed by a resty client. It never retries and never
// reads response bodies itself; bodies are handed to the caller unread.
type Resty struct {
	client  *resty.Client
	limiter *rate.Limiter
}

var _ Fetcher = (*Resty)(nil)

// NewResty creates a fetcher from cfg.
func NewResty(cfg Config) *Resty {
	// Pooled keep-alive transport; retrying stays disabled, only the
	// round tripper is borrowed.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New()
	restyClient.
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetLogger(logger.Named("resty").Sugar()).
		SetTransport(retryClient.HTTPClient.Transport)

	if cfg.UserAgent != "" {
		restyClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Resty{
		client:  restyClient,
		limiter: newLimiter(cfg.RateLimit, cfg.Burst),
	}
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Fetch performs req. The returned Response body is the live network body.
func (r *Resty) Fetch(ctx context.Context, req *Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	rr := r.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)

	for key, values := range req.Header {
		for _, v := range values {
			rr.Header.Add(key, v)
		}
	}
	if req.Body != nil {
		rr.SetBody(req.Body)
	}

	resp, err := rr.Execute(req.Method, req.URL)
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return nil, err
	}

	return &Response{
		Status: resp.StatusCode(),
		Body:   resp.RawBody(),
	}, nil
}
