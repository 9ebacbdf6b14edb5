package transport

import (
	"context"
	"io"
	"net/http"
)

// Request is one outbound HTTP call. A nil Body means no body is sent.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is the status line and unread body of a completed call. The
// receiver owns Body and must close it.
type Response struct {
	Status int
	Body   io.ReadCloser
}

// Fetcher performs a single HTTP round trip.
type Fetcher interface {
	Fetch(ctx context.Context, req *Request) (*Response, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, req *Request) (*Response, error)

// Fetch calls f(ctx, req).
func (f FetcherFunc) Fetch(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

var _ Fetcher = FetcherFunc(nil)
