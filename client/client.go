package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/jsonfetch/internal/logging"
	"github.com/GriffinCanCode/jsonfetch/internal/monitoring"
	"github.com/GriffinCanCode/jsonfetch/jsonvalue"
	"github.com/GriffinCanCode/jsonfetch/params"
	"github.com/GriffinCanCode/jsonfetch/transport"
)

// Client issues JSON requests through a Fetcher. It is safe for concurrent
// use.
type Client struct {
	fetcher transport.Fetcher
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for per-request debug logs.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records request counts and durations on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = monitoring.NewMetrics(reg)
	}
}

// New creates a client that sends every request through fetcher. A nil
// fetcher gets a resty fetcher with default settings.
func New(fetcher transport.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher: fetcher,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		cfg := transport.DefaultConfig()
		cfg.Logger = c.logger
		c.fetcher = transport.NewResty(cfg)
	}
	return c
}

// GetJSON requests url with p encoded into the query string.
func (c *Client) GetJSON(ctx context.Context, url string, p params.Value) (jsonvalue.Value, error) {
	return c.execute(ctx, &transport.Request{
		Method: string(GET),
		URL:    url + params.Query(p),
	})
}

// PostJSON sends p as a JSON body with POST.
func (c *Client) PostJSON(ctx context.Context, url string, p params.Value) (jsonvalue.Value, error) {
	return c.send(ctx, POST, url, p)
}

// PutJSON sends p as a JSON body with PUT.
func (c *Client) PutJSON(ctx context.Context, url string, p params.Value) (jsonvalue.Value, error) {
	return c.send(ctx, PUT, url, p)
}

// DeleteJSON sends p as a JSON body with DELETE.
func (c *Client) DeleteJSON(ctx context.Context, url string, p params.Value) (jsonvalue.Value, error) {
	return c.send(ctx, DELETE, url, p)
}

// Do dispatches to the entry point for verb.
func (c *Client) Do(ctx context.Context, verb Verb, url string, p params.Value) (jsonvalue.Value, error) {
	if verb == GET {
		return c.GetJSON(ctx, url, p)
	}
	return c.send(ctx, verb, url, p)
}

func (c *Client) send(ctx context.Context, verb Verb, url string, p params.Value) (jsonvalue.Value, error) {
	req := &transport.Request{Method: string(verb), URL: url}
	if !params.IsAbsent(p) {
		body, err := params.Marshal(p)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		req.Body = body
		req.Header = http.Header{"Content-Type": []string{"application/json"}}
	}
	return c.execute(ctx, req)
}

func (c *Client) execute(ctx context.Context, req *transport.Request) (jsonvalue.Value, error) {
	start := time.Now()
	logger := c.logger.With(logging.RequestID(), logging.Verb(req.Method), logging.URL(req.URL))

	finish := func(string) {}
	if c.metrics != nil {
		finish = c.metrics.Begin(req.Method)
	}

	resp, err := c.fetcher.Fetch(ctx, req)
	if err != nil {
		finish(monitoring.OutcomeError)
		logger.Debug("request failed", zap.Error(err), logging.Duration(time.Since(start)))
		return jsonvalue.Value{}, err
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if resp.Status != http.StatusOK {
		finish(strconv.Itoa(resp.Status))
		logger.Debug("unexpected status", logging.Status(resp.Status), logging.Duration(time.Since(start)))
		return jsonvalue.Value{}, &HTTPError{Verb: Verb(req.Method), URL: req.URL, Status: resp.Status}
	}

	body := resp.Body
	if body == nil {
		body = http.NoBody
	}
	v, err := jsonvalue.Read(body)
	if err != nil {
		finish(monitoring.OutcomeError)
		logger.Debug("invalid response body", zap.Error(err), logging.Status(resp.Status))
		return jsonvalue.Value{}, err
	}

	finish(strconv.Itoa(resp.Status))
	logger.Debug("request finished", logging.Status(resp.Status), logging.Duration(time.Since(start)))
	return v, nil
}

// Decode converts the result of an entry point into T.
//
//	items, err := client.Decode[[]Item](c.GetJSON(ctx, url, nil))
func Decode[T any](v jsonvalue.Value, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := v.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
