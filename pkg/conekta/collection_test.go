package conekta_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher serves pages from a fixed slice and counts requests.
type countingFetcher struct {
	calls    atomic.Int32
	requests []conekta.PageRequest
	pages    map[string]*conekta.Collection[string]
	err      error
}

func (f *countingFetcher) FetchPage(_ context.Context, req conekta.PageRequest) (*conekta.Collection[string], error) {
	f.calls.Add(1)
	f.requests = append(f.requests, req)

	if f.err != nil {
		return nil, f.err
	}

	page, ok := f.pages[req.Cursor]
	if !ok {
		return nil, fmt.Errorf("unexpected cursor %q", req.Cursor)
	}

	return page, nil
}

func page(fetcher conekta.PageFetcher[string], data []string, next, previous string) *conekta.Collection[string] {
	info := conekta.PageInfo{Object: "list", HasMore: next != ""}
	if next != "" {
		info.NextPageURL = "https://api.conekta.io/orders?limit=2&next=" + next
	}

	if previous != "" {
		info.PreviousPageURL = "https://api.conekta.io/orders?limit=2&previous=" + previous
	}

	query := conekta.NewListParams().WithFilter("payment_status", "paid").WithLimit(2)

	return conekta.NewCollection(data, info, conekta.DefaultCursorParams(), query, 2, fetcher)
}

func TestCollection_CursorsAreReadFromPageURLs(t *testing.T) {
	t.Parallel()

	collection := page(nil, []string{"a", "b"}, "ord_2", "ord_0")

	next, ok := collection.Next()
	require.True(t, ok)
	assert.Equal(t, "ord_2", next)

	previous, ok := collection.Previous()
	require.True(t, ok)
	assert.Equal(t, "ord_0", previous)

	assert.Equal(t, 2, collection.Limit())
	assert.Equal(t, 2, collection.Len())
	assert.Equal(t, 0, collection.Query().Limit)
	assert.Equal(t, "paid", collection.Query().Filters["payment_status"])
}

func TestCollection_FetchNextWithoutCursorMakesNoRequest(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{}
	last := page(fetcher, []string{"z"}, "", "ord_9")

	next, err := last.FetchNext(context.Background())
	require.Error(t, err)
	assert.Nil(t, next)
	require.ErrorIs(t, err, conekta.ErrNoNextPage)

	var paginationErr *conekta.PaginationError
	require.ErrorAs(t, err, &paginationErr)
	assert.Equal(t, conekta.Forward, paginationErr.Direction)
	assert.Equal(t, int32(0), fetcher.calls.Load())
}

func TestCollection_FetchPreviousWithoutCursorMakesNoRequest(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{}
	first := page(fetcher, []string{"a"}, "ord_2", "")

	_, err := first.FetchPrevious(context.Background())
	require.ErrorIs(t, err, conekta.ErrNoPreviousPage)
	assert.Equal(t, int32(0), fetcher.calls.Load())
}

func TestCollection_FetchNextThreadsCursorVerbatim(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{}
	fetcher.pages = map[string]*conekta.Collection[string]{
		"X": page(fetcher, []string{"c"}, "", "ord_3"),
	}

	first := page(fetcher, []string{"a", "b"}, "X", "")

	second, err := first.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, second.Data)

	require.Len(t, fetcher.requests, 1)
	assert.Equal(t, "X", fetcher.requests[0].Cursor)
	assert.Equal(t, conekta.Forward, fetcher.requests[0].Direction)
	assert.Equal(t, 2, fetcher.requests[0].Limit)
	assert.Equal(t, "paid", fetcher.requests[0].Query.Filters["payment_status"])

	// The first page is unchanged and can be fetched from again.
	assert.Equal(t, []string{"a", "b"}, first.Data)

	again, err := first.FetchNext(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, second.Data, again.Data)
	assert.Equal(t, 5, fetcher.requests[1].Limit)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestCollection_FetchErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	apiErr := &conekta.APIError{StatusCode: 500}
	fetcher := &countingFetcher{err: apiErr}

	_, err := page(fetcher, nil, "X", "").FetchNext(context.Background())
	require.Error(t, err)

	var got *conekta.APIError
	require.ErrorAs(t, err, &got)
	assert.Same(t, apiErr, got)
}

func TestCollection_DetachedCollectionCannotFetch(t *testing.T) {
	t.Parallel()

	_, err := page(nil, nil, "X", "").FetchNext(context.Background())
	require.ErrorIs(t, err, conekta.ErrDetachedCollection)
}

func TestCollection_AttachUsesCustomCursorNames(t *testing.T) {
	t.Parallel()

	info := conekta.PageInfo{NextPageURL: "https://api.example.com/orders?after=tok_1"}
	detached := conekta.NewCollection([]string{"a"}, info, conekta.DefaultCursorParams(), nil, 0, nil)
	assert.False(t, detached.HasNext())

	fetcher := &countingFetcher{}
	attached := detached.Attach(fetcher, nil, conekta.CursorParams{Next: "after", Previous: "before"})

	next, ok := attached.Next()
	require.True(t, ok)
	assert.Equal(t, "tok_1", next)
	assert.False(t, detached.HasNext())
}

func TestCollection_NilDataIsEmpty(t *testing.T) {
	t.Parallel()

	collection := conekta.NewCollection[string](nil, conekta.PageInfo{}, conekta.DefaultCursorParams(), nil, 0, nil)
	assert.NotNil(t, collection.Data)
	assert.Equal(t, 0, collection.Len())
	assert.False(t, collection.HasNext())
	assert.False(t, collection.HasPrevious())
}

func TestCollect(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{}
	fetcher.pages = map[string]*conekta.Collection[string]{
		"p2": page(fetcher, []string{"c", "d"}, "p3", "p1"),
		"p3": page(fetcher, []string{"e"}, "", "p2"),
	}

	first := page(fetcher, []string{"a", "b"}, "p2", "")

	all, err := conekta.Collect(context.Background(), first, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, all)
	assert.Equal(t, int32(2), fetcher.calls.Load())

	limited, err := conekta.Collect(context.Background(), first, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, limited)
}

func TestCollectPrevious(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{}
	fetcher.pages = map[string]*conekta.Collection[string]{
		"p1": page(fetcher, []string{"a", "b"}, "p2", ""),
	}

	last := page(fetcher, []string{"c"}, "", "p1")

	all, err := conekta.CollectPrevious(context.Background(), last, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, all)
	require.Len(t, fetcher.requests, 1)
	assert.Equal(t, conekta.Backward, fetcher.requests[0].Direction)
}

func TestCollect_ReturnsPartialResultOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	fetcher := &countingFetcher{err: boom}

	all, err := conekta.Collect(context.Background(), page(fetcher, []string{"a"}, "p2", ""), 0)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a"}, all)
}

func TestListParams_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *conekta.ListParams
		expected string
	}{
		{name: "nil params", params: nil, expected: ""},
		{name: "empty params", params: conekta.NewListParams(), expected: ""},
		{name: "limit only", params: conekta.NewListParams().WithLimit(20), expected: "limit=20"},
		{
			name:     "filters are sorted",
			params:   conekta.NewListParams().WithFilter("status", "paid").WithFilter("customer_info.customer_id", "cus_1"),
			expected: "customer_info.customer_id=cus_1&status=paid",
		},
		{
			name:     "search and limit",
			params:   conekta.NewListParams().WithSearch("ana").WithLimit(5),
			expected: "limit=5&search=ana",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.params.Values().Encode())
		})
	}
}

func TestListParams_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := conekta.NewListParams().WithFilter("a", "1")
	clone := original.Clone()
	clone.WithFilter("a", "2")

	assert.Equal(t, "1", original.Filters["a"])
}
