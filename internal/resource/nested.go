package resource

import (
	"context"
	"net/http"

	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Nested performs CRUD operations on a collection that lives under a
// parent resource, e.g. /orders/{order_id}/line_items. One Nested is
// instantiated per sub-resource type.
type Nested[T any] struct {
	transport conekta.Transport
	parent    string
	segment   string
	item      *shape.Descriptor[T]
	cursors   conekta.CursorParams
}

// NewNested creates a Nested for parent/{id}/segment.
func NewNested[T any](transport conekta.Transport, parent, segment string, item *shape.Descriptor[T], cursors conekta.CursorParams) *Nested[T] {
	return &Nested[T]{
		transport: transport,
		parent:    parent,
		segment:   segment,
		item:      item,
		cursors:   cursors,
	}
}

// Path returns the collection path under parentID, or a member path.
func (n *Nested[T]) Path(parentID string, ids ...string) string {
	return Path(Path(n.parent, parentID, n.segment), ids...)
}

// Lister returns the list endpoint under parentID.
func (n *Nested[T]) Lister(parentID string) *Lister[T] {
	return NewLister(n.transport, n.Path(parentID), n.item, n.cursors)
}

// Bind attaches a collection decoded inside the parent resource to the
// list endpoint under parentID.
func (n *Nested[T]) Bind(parentID string, collection *conekta.Collection[T]) *conekta.Collection[T] {
	if collection == nil || parentID == "" {
		return collection
	}

	return collection.Attach(n.Lister(parentID), nil, n.cursors)
}

// List fetches the first page of the collection under parentID.
func (n *Nested[T]) List(ctx context.Context, parentID string, params *conekta.ListParams) (*conekta.Collection[T], error) {
	if err := requireID(parentID); err != nil {
		return nil, err
	}

	return n.Lister(parentID).List(ctx, params)
}

// Page fetches the page req describes under parentID.
func (n *Nested[T]) Page(ctx context.Context, parentID string, req conekta.PageRequest) (*conekta.Collection[T], error) {
	if err := requireID(parentID); err != nil {
		return nil, err
	}

	return n.Lister(parentID).FetchPage(ctx, req)
}

// Create posts attrs to the collection under parentID.
func (n *Nested[T]) Create(ctx context.Context, parentID string, attrs conekta.Attributes) (*T, error) {
	if err := requireID(parentID); err != nil {
		return nil, err
	}

	return n.call(ctx, http.MethodPost, n.Path(parentID), nonNil(attrs))
}

// Update puts attrs to one member.
func (n *Nested[T]) Update(ctx context.Context, parentID, id string, attrs conekta.Attributes) (*T, error) {
	if err := requireID(parentID, id); err != nil {
		return nil, err
	}

	return n.call(ctx, http.MethodPut, n.Path(parentID, id), nonNil(attrs))
}

// Delete removes one member and returns it as the API reports it.
func (n *Nested[T]) Delete(ctx context.Context, parentID, id string) (*T, error) {
	if err := requireID(parentID, id); err != nil {
		return nil, err
	}

	return n.call(ctx, http.MethodDelete, n.Path(parentID, id), nil)
}

func (n *Nested[T]) call(ctx context.Context, method, path string, attrs conekta.Attributes) (*T, error) {
	value, err := Call(ctx, n.transport, method, path, nil, attrs, n.item)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
