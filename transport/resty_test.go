package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	echo := func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.PureJSON(http.StatusOK, gin.H{
			"method":       c.Request.Method,
			"query":        c.Request.URL.RawQuery,
			"content_type": c.GetHeader("Content-Type"),
			"user_agent":   c.GetHeader("User-Agent"),
			"body":         string(body),
		})
	}
	router.GET("/echo", echo)
	router.POST("/echo", echo)
	router.PUT("/echo", echo)
	router.DELETE("/echo", echo)
	router.GET("/missing", func(c *gin.Context) {
		c.String(http.StatusNotFound, "nope")
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func readAll(t *testing.T, resp *Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestRestyFetch(t *testing.T) {
	server := newEchoServer(t)
	fetcher := NewResty(DefaultConfig())
	ctx := context.Background()

	t.Run("GET keeps the raw query untouched", func(t *testing.T) {
		resp, err := fetcher.Fetch(ctx, &Request{
			Method: http.MethodGet,
			URL:    server.URL + "/echo?lorem=ipsum%20dolor&amet%5B1%5D.elit=123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)

		body := readAll(t, resp)
		assert.Contains(t, body, `"query":"lorem=ipsum%20dolor&amet%5B1%5D.elit=123"`)
		assert.Contains(t, body, `"content_type":""`)
		assert.Contains(t, body, `"user_agent":"jsonfetch/1.0"`)
	})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method+" sends body and headers", func(t *testing.T) {
			resp, err := fetcher.Fetch(ctx, &Request{
				Method: method,
				URL:    server.URL + "/echo",
				Header: http.Header{"Content-Type": []string{"application/json"}},
				Body:   []byte(`{"a":1}`),
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.Status)

			body := readAll(t, resp)
			assert.Contains(t, body, `"method":"`+method+`"`)
			assert.Contains(t, body, `"content_type":"application/json"`)
			assert.Contains(t, body, `"body":"{\"a\":1}"`)
		})
	}

	t.Run("non-200 status is returned, not an error", func(t *testing.T) {
		resp, err := fetcher.Fetch(ctx, &Request{Method: http.MethodGet, URL: server.URL + "/missing"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Equal(t, "nope", readAll(t, resp))
	})

	t.Run("connection failure is an error", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		resp, err := fetcher.Fetch(ctx, &Request{Method: http.MethodGet, URL: url})
		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestRestyRateLimit(t *testing.T) {
	server := newEchoServer(t)

	cfg := DefaultConfig()
	cfg.RateLimit = 0.001
	cfg.Burst = 1
	fetcher := NewResty(cfg)

	// The first request uses the single burst token.
	resp, err := fetcher.Fetch(context.Background(), &Request{Method: http.MethodGet, URL: server.URL + "/echo"})
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = fetcher.Fetch(ctx, &Request{Method: http.MethodGet, URL: server.URL + "/echo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit error")
}

func TestNewLimiter(t *testing.T) {
	assert.Equal(t, float64(newLimiter(0, 0).Limit()), float64(newLimiter(-1, 5).Limit()))
	assert.Equal(t, 1, newLimiter(0.5, 0).Burst())
	assert.Equal(t, 10, newLimiter(5, 10).Burst())
}

func TestFetcherFunc(t *testing.T) {
	var seen *Request
	f := FetcherFunc(func(ctx context.Context, req *Request) (*Response, error) {
		seen = req
		return &Response{Status: http.StatusTeapot, Body: io.NopCloser(nil)}, nil
	})

	resp, err := f.Fetch(context.Background(), &Request{Method: http.MethodGet, URL: "x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.Status)
	assert.Equal(t, "x", seen.URL)
}
