// Package client issues single-round-trip JSON requests.
//
// Each entry point performs exactly one request through an injected
// transport.Fetcher. A 200 response is parsed into a jsonvalue.Value; any
// other status becomes an *HTTPError and the response body is closed unread.
// There are no retries and no timeouts beyond what the caller's context and
// fetcher impose.
//
// GET parameters are flattened into the query string by params.Query:
//
//	c := client.New(transport.NewResty(transport.DefaultConfig()))
//	v, err := c.GetJSON(ctx, "https://api.example.com/items", params.Obj(
//		params.KV("q", params.Text("red shoes")),
//		params.KV("page", params.Number(2)),
//	))
//	// GET https://api.example.com/items?q=red%20shoes&page=2
//
// POST, PUT and DELETE send their parameters as a JSON body instead.
package client
