package conekta

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Direction is the way a Collection is walked.
type Direction string

const (
	Forward  Direction = "next"
	Backward Direction = "previous"
)

// CursorParams names the query parameters that carry page cursors. The
// API reports them inside next_page_url and previous_page_url and expects
// them back under the same names.
type CursorParams struct {
	Next     string
	Previous string
}

// DefaultCursorParams returns the parameter names used by the Conekta API.
func DefaultCursorParams() CursorParams {
	return CursorParams{Next: "next", Previous: "previous"}
}

func (p CursorParams) withDefaults() CursorParams {
	defaults := DefaultCursorParams()

	if p.Next == "" {
		p.Next = defaults.Next
	}

	if p.Previous == "" {
		p.Previous = defaults.Previous
	}

	return p
}

// Name returns the parameter name for d.
func (p CursorParams) Name(d Direction) string {
	p = p.withDefaults()
	if d == Backward {
		return p.Previous
	}

	return p.Next
}

// ListParams are the fixed filters of a list request. Cursors are never
// part of ListParams; they are added by FetchNext and FetchPrevious.
type ListParams struct {
	Limit   int
	Search  string
	Filters map[string]string
}

// NewListParams creates empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{Filters: make(map[string]string)}
}

// WithLimit sets the page size.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithSearch sets the free-text search term.
func (p *ListParams) WithSearch(search string) *ListParams {
	p.Search = search

	return p
}

// WithFilter adds a filter parameter.
func (p *ListParams) WithFilter(key, value string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[key] = value

	return p
}

// Clone returns a deep copy of p. A nil receiver yields empty parameters.
func (p *ListParams) Clone() *ListParams {
	out := NewListParams()
	if p == nil {
		return out
	}

	out.Limit = p.Limit
	out.Search = p.Search

	for key, value := range p.Filters {
		out.Filters[key] = value
	}

	return out
}

// Values renders p as URL query values.
func (p *ListParams) Values() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.Search != "" {
		values.Set("search", p.Search)
	}

	keys := make([]string, 0, len(p.Filters))
	for key := range p.Filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		values.Set(key, p.Filters[key])
	}

	return values
}

// PageRequest asks a PageFetcher for one page.
type PageRequest struct {
	// Query holds the base filters. Its Limit is ignored in favour of Limit.
	Query *ListParams
	// Limit is the page size; 0 leaves it to the server.
	Limit int
	// Direction and Cursor are empty for the first page.
	Direction Direction
	Cursor    string
}

// PageFetcher performs the list request behind a Collection.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, req PageRequest) (*Collection[T], error)
}

// Collection is one page of a paginated list.
//
// A Collection is never modified after it is returned: FetchNext and
// FetchPrevious return a new Collection and leave the receiver usable,
// so the same page can be fetched from again.
type Collection[T any] struct {
	Object  string `json:"object"          yaml:"object"`
	Data    []T    `json:"data"            yaml:"data"`
	HasMore bool   `json:"has_more"        yaml:"has_more"`
	Total   int    `json:"total,omitempty" yaml:"total,omitempty"`

	nextURL     string
	previousURL string
	next        string
	previous    string
	hasNext     bool
	hasPrevious bool

	limit   int
	query   *ListParams
	fetcher PageFetcher[T]
}

// PageInfo is the pagination envelope of a list response.
type PageInfo struct {
	Object          string
	HasMore         bool
	Total           int
	NextPageURL     string
	PreviousPageURL string
}

// NewCollection assembles a page. Cursors are read from the page URLs
// using cursors; query and limit are what the page was requested with.
func NewCollection[T any](
	data []T,
	page PageInfo,
	cursors CursorParams,
	query *ListParams,
	limit int,
	fetcher PageFetcher[T],
) *Collection[T] {
	if data == nil {
		data = []T{}
	}

	base := query.Clone()
	base.Limit = 0

	c := &Collection[T]{
		Object:      page.Object,
		Data:        data,
		HasMore:     page.HasMore,
		Total:       page.Total,
		nextURL:     page.NextPageURL,
		previousURL: page.PreviousPageURL,
		limit:       limit,
		query:       base,
		fetcher:     fetcher,
	}
	c.readCursors(cursors)

	return c
}

func (c *Collection[T]) readCursors(cursors CursorParams) {
	c.next, c.hasNext = cursorFromURL(c.nextURL, cursors.Name(Forward))
	c.previous, c.hasPrevious = cursorFromURL(c.previousURL, cursors.Name(Backward))
}

func cursorFromURL(raw, param string) (string, bool) {
	if raw == "" {
		return "", false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	values := parsed.Query()
	if !values.Has(param) {
		return "", false
	}

	return values.Get(param), true
}

// Attach returns a copy of c that fetches further pages through fetcher
// with the given base query. Collections embedded in another resource are
// decoded detached and attached by the client that decoded them.
func (c *Collection[T]) Attach(fetcher PageFetcher[T], query *ListParams, cursors CursorParams) *Collection[T] {
	if c == nil {
		return nil
	}

	out := *c
	out.fetcher = fetcher
	out.query = query.Clone()
	out.query.Limit = 0
	out.readCursors(cursors)

	return &out
}

// Next returns the forward cursor and whether one exists.
func (c *Collection[T]) Next() (string, bool) {
	return c.next, c.hasNext
}

// Previous returns the backward cursor and whether one exists.
func (c *Collection[T]) Previous() (string, bool) {
	return c.previous, c.hasPrevious
}

// HasNext reports whether FetchNext can succeed.
func (c *Collection[T]) HasNext() bool {
	return c.hasNext
}

// HasPrevious reports whether FetchPrevious can succeed.
func (c *Collection[T]) HasPrevious() bool {
	return c.hasPrevious
}

// Limit returns the page size the collection was requested with, 0 if
// the server default applied.
func (c *Collection[T]) Limit() int {
	return c.limit
}

// Query returns a copy of the base query.
func (c *Collection[T]) Query() *ListParams {
	return c.query.Clone()
}

// Len returns the number of elements on this page.
func (c *Collection[T]) Len() int {
	return len(c.Data)
}

// FetchNext requests the page after this one. An optional limit replaces
// the page size in effect. Without a next cursor it fails with
// ErrNoNextPage and performs no request.
func (c *Collection[T]) FetchNext(ctx context.Context, limit ...int) (*Collection[T], error) {
	if !c.hasNext {
		return nil, &PaginationError{Direction: Forward, Err: ErrNoNextPage}
	}

	return c.fetch(ctx, Forward, c.next, limit)
}

// FetchPrevious requests the page before this one. Without a previous
// cursor it fails with ErrNoPreviousPage and performs no request.
func (c *Collection[T]) FetchPrevious(ctx context.Context, limit ...int) (*Collection[T], error) {
	if !c.hasPrevious {
		return nil, &PaginationError{Direction: Backward, Err: ErrNoPreviousPage}
	}

	return c.fetch(ctx, Backward, c.previous, limit)
}

func (c *Collection[T]) fetch(ctx context.Context, direction Direction, cursor string, limit []int) (*Collection[T], error) {
	if c.fetcher == nil {
		return nil, &PaginationError{Direction: direction, Err: ErrDetachedCollection}
	}

	pageSize := c.limit
	if len(limit) > 0 && limit[0] > 0 {
		pageSize = limit[0]
	}

	page, err := c.fetcher.FetchPage(ctx, PageRequest{
		Query:     c.query.Clone(),
		Limit:     pageSize,
		Direction: direction,
		Cursor:    cursor,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s page: %w", direction, err)
	}

	return page, nil
}

// Collect walks forward from first and concatenates the elements of at
// most maxPages pages (all pages when maxPages <= 0). Each page costs one
// request and failures are returned as-is together with what was
// collected so far.
func Collect[T any](ctx context.Context, first *Collection[T], maxPages int) ([]T, error) {
	return walk(ctx, first, maxPages, (*Collection[T]).HasNext, (*Collection[T]).FetchNext)
}

// CollectPrevious is Collect walking backward. Elements are returned in
// the order the pages were fetched.
func CollectPrevious[T any](ctx context.Context, first *Collection[T], maxPages int) ([]T, error) {
	return walk(ctx, first, maxPages, (*Collection[T]).HasPrevious, (*Collection[T]).FetchPrevious)
}

func walk[T any](
	ctx context.Context,
	first *Collection[T],
	maxPages int,
	hasMore func(*Collection[T]) bool,
	fetch func(*Collection[T], context.Context, ...int) (*Collection[T], error),
) ([]T, error) {
	if first == nil {
		return []T{}, nil
	}

	all := make([]T, 0, len(first.Data))
	all = append(all, first.Data...)

	page := first
	for pages := 1; hasMore(page) && (maxPages <= 0 || pages < maxPages); pages++ {
		next, err := fetch(page, ctx)
		if err != nil {
			return all, err
		}

		all = append(all, next.Data...)
		page = next
	}

	return all, nil
}

// CollectionShape returns the Shape of a list response whose elements
// have the given Shape.
func CollectionShape(elem *shape.Shape) *shape.Shape {
	return shape.Object(shape.Fields{
		"object":            shape.String(),
		"has_more":          shape.Bool(),
		"total":             shape.Number(),
		"data":              shape.List(elem),
		"next_page_url":     shape.String(),
		"previous_page_url": shape.String(),
	})
}

// CollectionDescriptor describes a list response of item. Collections it
// binds are detached; see Collection.Attach.
func CollectionDescriptor[T any](item *shape.Descriptor[T], cursors CursorParams) *shape.Descriptor[*Collection[T]] {
	return shape.Describe(CollectionShape(item.Shape()), func(v shape.Value) *Collection[T] {
		return NewCollection(
			shape.BindList(v.Field("data"), item),
			PageInfoFrom(v),
			cursors,
			nil,
			0,
			nil,
		)
	})
}

// PageInfoFrom reads the pagination envelope of a decoded list response.
func PageInfoFrom(v shape.Value) PageInfo {
	return PageInfo{
		Object:          v.Field("object").Str(),
		HasMore:         v.Field("has_more").Bool(),
		Total:           v.Field("total").Int(),
		NextPageURL:     v.Field("next_page_url").Str(),
		PreviousPageURL: v.Field("previous_page_url").Str(),
	}
}
