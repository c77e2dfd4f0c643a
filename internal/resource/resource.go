// Package resource composes Conekta resource operations from a path, a
// transport and a shape descriptor.
//
// Every operation follows the same steps: build the path from opaque ids,
// serialise the caller's attributes verbatim for writes, perform one
// round trip, turn non-2xx statuses into *conekta.APIError without
// touching the domain shape, and decode 2xx bodies with the operation's
// descriptor.
package resource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Path joins escaped path segments under base.
func Path(base string, segments ...string) string {
	var builder strings.Builder

	builder.WriteString(strings.TrimSuffix(base, "/"))

	for _, segment := range segments {
		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

// Call performs one round trip and decodes a 2xx body with d.
func Call[T any](
	ctx context.Context,
	transport conekta.Transport,
	method, path string,
	query url.Values,
	attrs conekta.Attributes,
	d *shape.Descriptor[T],
) (T, error) {
	var zero T

	body, err := Send(ctx, transport, method, path, query, attrs)
	if err != nil {
		return zero, err
	}

	value, err := d.Decode(body)
	if err != nil {
		return zero, fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}

	return value, nil
}

// Send performs one round trip and returns the body of a 2xx response.
// Writes serialise attrs as the request body; a nil attrs sends no body.
func Send(
	ctx context.Context,
	transport conekta.Transport,
	method, path string,
	query url.Values,
	attrs conekta.Attributes,
) ([]byte, error) {
	req := &conekta.Request{Method: method, Path: path, Query: query}

	if attrs != nil && method != http.MethodGet && method != http.MethodDelete {
		encoded, err := json.Marshal(attrs)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s attributes: %w", method, path, err)
		}

		req.Body = encoded
	}

	resp, err := transport.Do(ctx, req)
	if err != nil {
		return nil, err //nolint:wrapcheck // transports return *conekta.TransportError
	}

	if !resp.IsSuccess() {
		return nil, conekta.NewAPIError(resp.StatusCode, resp.Body)
	}

	return resp.Body, nil
}

// requireID rejects empty ids, which would turn an item path into its
// collection path. Any other id is left to the server.
func requireID(ids ...string) error {
	for _, id := range ids {
		if id == "" {
			return conekta.ErrEmptyID
		}
	}

	return nil
}
