package client

import (
	"errors"
	"fmt"
)

// Verb is the HTTP method of a request.
type Verb string

const (
	GET    Verb = "GET"
	POST   Verb = "POST"
	PUT    Verb = "PUT"
	DELETE Verb = "DELETE"
)

// HTTPError reports a response whose status was not 200.
type HTTPError struct {
	Verb Verb
	// URL is the requested URL. For GET it includes the encoded query.
	URL    string
	Status int
}

var _ error = (*HTTPError)(nil)

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Verb, e.URL, e.Status)
}

// IsHTTPError reports whether err is or wraps an *HTTPError.
func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// StatusOf returns the status carried by an *HTTPError in err's chain.
func StatusOf(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, true
	}
	return 0, false
}
