// Package transport defines the fetch primitive used by the JSON client and
// ships a default implementation on top of go-resty/resty.
//
// The client only shapes a Request and interprets the returned Response; how
// bytes reach the network is entirely up to the Fetcher:
//   - Resty: production fetcher (pooled transport, optional rate limit)
//   - FetcherFunc: adapter for plain functions and test doubles
//
// Example Usage:
//
//	fetcher := transport.NewResty(transport.DefaultConfig())
//	resp, err := fetcher.Fetch(ctx, &transport.Request{Method: "GET", URL: "https://example.com"})
//	if err != nil {
//		return err
//	}
//	defer resp.Body.Close()
package transport
