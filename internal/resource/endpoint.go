package resource

import (
	"context"
	"net/http"

	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Endpoint performs the CRUD operations of a top-level resource such as
// /orders or /customers.
type Endpoint[T any] struct {
	transport conekta.Transport
	path      string
	item      *shape.Descriptor[T]
	lister    *Lister[T]
	attach    func(*T)
}

// NewEndpoint creates an Endpoint for the collection at path.
func NewEndpoint[T any](transport conekta.Transport, path string, item *shape.Descriptor[T], cursors conekta.CursorParams) *Endpoint[T] {
	return &Endpoint[T]{
		transport: transport,
		path:      path,
		item:      item,
		lister:    NewLister(transport, path, item, cursors),
	}
}

// WithAttach returns a copy of e that calls attach on every decoded
// resource, including list elements.
func (e *Endpoint[T]) WithAttach(attach func(*T)) *Endpoint[T] {
	out := *e
	out.attach = attach
	out.lister = e.lister.WithAttach(attach)

	return &out
}

// Path returns the collection path, or the path of a member or action
// when segments are given.
func (e *Endpoint[T]) Path(segments ...string) string {
	return Path(e.path, segments...)
}

// List fetches the first page of the collection.
func (e *Endpoint[T]) List(ctx context.Context, params *conekta.ListParams) (*conekta.Collection[T], error) {
	return e.lister.List(ctx, params)
}

// Page fetches the page req describes, e.g. one starting at a cursor.
func (e *Endpoint[T]) Page(ctx context.Context, req conekta.PageRequest) (*conekta.Collection[T], error) {
	return e.lister.FetchPage(ctx, req)
}

// Retrieve fetches one resource.
func (e *Endpoint[T]) Retrieve(ctx context.Context, id string) (*T, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	return e.call(ctx, http.MethodGet, e.Path(id), nil)
}

// Create posts attrs to the collection.
func (e *Endpoint[T]) Create(ctx context.Context, attrs conekta.Attributes) (*T, error) {
	return e.call(ctx, http.MethodPost, e.path, nonNil(attrs))
}

// Update puts attrs to one resource.
func (e *Endpoint[T]) Update(ctx context.Context, id string, attrs conekta.Attributes) (*T, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	return e.call(ctx, http.MethodPut, e.Path(id), nonNil(attrs))
}

// Delete removes one resource and returns it as the API reports it.
func (e *Endpoint[T]) Delete(ctx context.Context, id string) (*T, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	return e.call(ctx, http.MethodDelete, e.Path(id), nil)
}

// Action posts attrs to an action of one resource, e.g.
// POST /orders/{id}/capture, and decodes the resource it returns.
func (e *Endpoint[T]) Action(ctx context.Context, id, action string, attrs conekta.Attributes) (*T, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	return e.call(ctx, http.MethodPost, e.Path(id, action), attrs)
}

func (e *Endpoint[T]) call(ctx context.Context, method, path string, attrs conekta.Attributes) (*T, error) {
	value, err := Call(ctx, e.transport, method, path, nil, attrs, e.item)
	if err != nil {
		return nil, err
	}

	if e.attach != nil {
		e.attach(&value)
	}

	return &value, nil
}

func nonNil(attrs conekta.Attributes) conekta.Attributes {
	if attrs == nil {
		return conekta.Attributes{}
	}

	return attrs
}
