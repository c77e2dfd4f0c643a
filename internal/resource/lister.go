package resource

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Lister fetches pages of one list endpoint. It is the PageFetcher behind
// every Collection it returns.
type Lister[T any] struct {
	transport conekta.Transport
	path      string
	item      *shape.Descriptor[T]
	page      *shape.Shape
	cursors   conekta.CursorParams
	attach    func(*T)
}

// NewLister creates a Lister for the list endpoint at path.
func NewLister[T any](transport conekta.Transport, path string, item *shape.Descriptor[T], cursors conekta.CursorParams) *Lister[T] {
	return &Lister[T]{
		transport: transport,
		path:      path,
		item:      item,
		page:      conekta.CollectionShape(item.Shape()),
		cursors:   cursors,
	}
}

// WithAttach returns a copy of l that calls attach on every decoded
// element, so elements carrying collections of their own can bind them.
func (l *Lister[T]) WithAttach(attach func(*T)) *Lister[T] {
	out := *l
	out.attach = attach

	return &out
}

// Path returns the list endpoint.
func (l *Lister[T]) Path() string {
	return l.path
}

// List fetches the first page. A filter named like a cursor parameter
// starts the listing at that cursor instead of being sent as a filter.
func (l *Lister[T]) List(ctx context.Context, params *conekta.ListParams) (*conekta.Collection[T], error) {
	req := conekta.PageRequest{Query: params}
	if params == nil {
		return l.FetchPage(ctx, req)
	}

	req.Limit = params.Limit

	next, hasNext := params.Filters[l.cursors.Name(conekta.Forward)]
	previous, hasPrevious := params.Filters[l.cursors.Name(conekta.Backward)]

	switch {
	case hasNext && hasPrevious:
		return nil, conekta.ErrConflictingCursors
	case hasNext:
		req.Direction, req.Cursor = conekta.Forward, next
	case hasPrevious:
		req.Direction, req.Cursor = conekta.Backward, previous
	}

	return l.FetchPage(ctx, req)
}

// FetchPage implements conekta.PageFetcher. The collection it returns
// keeps req.Query without limit or cursor parameters as its base query.
func (l *Lister[T]) FetchPage(ctx context.Context, req conekta.PageRequest) (*conekta.Collection[T], error) {
	base := l.baseQuery(req.Query)

	query := base.Values()
	query.Del("limit")

	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	if req.Direction != "" {
		query.Set(l.cursors.Name(req.Direction), req.Cursor)
	}

	body, err := Send(ctx, l.transport, http.MethodGet, l.path, query, nil)
	if err != nil {
		return nil, err
	}

	value, err := shape.Decode(body, l.page)
	if err != nil {
		return nil, fmt.Errorf("decoding %s page: %w", l.path, err)
	}

	data := shape.BindList(value.Field("data"), l.item)
	if l.attach != nil {
		for i := range data {
			l.attach(&data[i])
		}
	}

	return conekta.NewCollection[T](data, conekta.PageInfoFrom(value), l.cursors, base, req.Limit, l), nil
}

// baseQuery copies params without its limit and cursor parameters.
func (l *Lister[T]) baseQuery(params *conekta.ListParams) *conekta.ListParams {
	base := params.Clone()
	base.Limit = 0

	delete(base.Filters, l.cursors.Name(conekta.Forward))
	delete(base.Filters, l.cursors.Name(conekta.Backward))

	return base
}
