package conekta

import (
	"context"
	"net/http"
	"net/url"
)

// Request is a single API call as seen by a Transport.
type Request struct {
	Method string
	// Path is relative to the API endpoint, e.g. "/orders/ord_123".
	Path    string
	Query   url.Values
	Body    []byte
	Headers http.Header
	// Metadata is scratch space shared by the interceptors of one request.
	Metadata map[string]interface{}
}

// Response is the complete answer to a Request. Transports return a
// Response for every HTTP status; only a failure to obtain one is an error.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Transport performs one round trip per call and never retries on its
// own. Failures to reach the API are returned as *TransportError.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Do calls f.
func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
