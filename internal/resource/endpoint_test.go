package resource_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/nysertxs/conekta-go/internal/resource"
	"github.com/nysertxs/conekta-go/pkg/conekta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEndpoint_Operations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(context.Context, *resource.Endpoint[item]) (*item, error)
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		{
			name: "retrieve",
			call: func(ctx context.Context, e *resource.Endpoint[item]) (*item, error) {
				return e.Retrieve(ctx, "it_1")
			},
			wantMethod: http.MethodGet,
			wantPath:   "/items/it_1",
		},
		{
			name: "create",
			call: func(ctx context.Context, e *resource.Endpoint[item]) (*item, error) {
				return e.Create(ctx, conekta.Attributes{"amount": 5})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/items",
			wantBody:   `{"amount":5}`,
		},
		{
			name: "create with nil attributes",
			call: func(ctx context.Context, e *resource.Endpoint[item]) (*item, error) {
				return e.Create(ctx, nil)
			},
			wantMethod: http.MethodPost,
			wantPath:   "/items",
			wantBody:   `{}`,
		},
		{
			name: "update",
			call: func(ctx context.Context, e *resource.Endpoint[item]) (*item, error) {
				return e.Update(ctx, "it_1", conekta.Attributes{"amount": 6})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/items/it_1",
			wantBody:   `{"amount":6}`,
		},
		{
			name: "delete",
			call: func(ctx context.Context, e *resource.Endpoint[item]) (*item, error) {
				return e.Delete(ctx, "it_1")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/items/it_1",
		},
		{
			name: "action",
			call: func(ctx context.Context, e *resource.Endpoint[item]) (*item, error) {
				return e.Action(ctx, "it_1", "capture", nil)
			},
			wantMethod: http.MethodPost,
			wantPath:   "/items/it_1/capture",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			transport := &mockTransport{responses: []*conekta.Response{respond(http.StatusOK, `{"id":"it_1","amount":5}`)}}
			endpoint := resource.NewEndpoint(transport, "/items", itemDescriptor, conekta.DefaultCursorParams())

			got, err := testCase.call(context.Background(), endpoint)
			require.NoError(t, err)
			assert.Equal(t, &item{ID: "it_1", Amount: 5}, got)

			require.Equal(t, 1, transport.calls())

			req := transport.requests[0]
			assert.Equal(t, testCase.wantMethod, req.Method)
			assert.Equal(t, testCase.wantPath, req.Path)

			if testCase.wantBody == "" {
				assert.Nil(t, req.Body)
			} else {
				assert.JSONEq(t, testCase.wantBody, string(req.Body))
			}
		})
	}
}

func TestEndpoint_EmptyIDFailsLocally(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{}
	endpoint := resource.NewEndpoint(transport, "/items", itemDescriptor, conekta.DefaultCursorParams())

	_, err := endpoint.Retrieve(context.Background(), "")
	require.ErrorIs(t, err, conekta.ErrEmptyID)

	_, err = endpoint.Action(context.Background(), "", "cancel", nil)
	require.ErrorIs(t, err, conekta.ErrEmptyID)

	assert.Equal(t, 0, transport.calls())
}

func TestEndpoint_NonEmptyIDIsSentAsIs(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{responses: []*conekta.Response{
		respond(http.StatusNotFound, `{"type":"resource_not_found","message":"not found"}`),
	}}
	endpoint := resource.NewEndpoint(transport, "/items", itemDescriptor, conekta.DefaultCursorParams())

	_, err := endpoint.Action(context.Background(), " ", "cancel", nil)
	assert.True(t, conekta.IsNotFound(err))

	require.Equal(t, 1, transport.calls())
	assert.Equal(t, "/items/%20/cancel", transport.requests[0].Path)
}

func TestEndpoint_WithAttachRunsOnEveryResource(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{responses: []*conekta.Response{
		respond(http.StatusOK, `{"id":"it_1"}`),
		respond(http.StatusOK, `{"object":"list","data":[{"id":"it_2"},{"id":"it_3"}]}`),
	}}

	endpoint := resource.NewEndpoint(transport, "/items", itemDescriptor, conekta.DefaultCursorParams()).
		WithAttach(func(i *item) { i.Amount = 42 })

	single, err := endpoint.Retrieve(context.Background(), "it_1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), single.Amount)

	page, err := endpoint.List(context.Background(), nil)
	require.NoError(t, err)

	for _, listed := range page.Data {
		assert.Equal(t, int64(42), listed.Amount)
	}
}

func TestNested_Operations(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{responses: []*conekta.Response{
		respond(http.StatusOK, `{"object":"list","has_more":false,"data":[{"id":"li_1","amount":100}]}`),
		respond(http.StatusOK, `{"id":"li_2","amount":5}`),
		respond(http.StatusOK, `{"id":"li_2","amount":6}`),
		respond(http.StatusOK, `{"id":"li_2","amount":6}`),
	}}

	nested := resource.NewNested(transport, "/orders", "line_items", itemDescriptor, conekta.DefaultCursorParams())
	ctx := context.Background()

	page, err := nested.List(ctx, "ord_123", conekta.NewListParams().WithLimit(1))
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "li_1", Amount: 100}}, page.Data)

	created, err := nested.Create(ctx, "ord_123", conekta.Attributes{"amount": 5})
	require.NoError(t, err)
	assert.Equal(t, "li_2", created.ID)

	_, err = nested.Update(ctx, "ord_123", "li_2", conekta.Attributes{"amount": 6})
	require.NoError(t, err)

	_, err = nested.Delete(ctx, "ord_123", "li_2")
	require.NoError(t, err)

	paths := make([]string, 0, len(transport.requests))
	for _, req := range transport.requests {
		paths = append(paths, req.Method+" "+req.Path)
	}

	assert.Equal(t, []string{
		"GET /orders/ord_123/line_items",
		"POST /orders/ord_123/line_items",
		"PUT /orders/ord_123/line_items/li_2",
		"DELETE /orders/ord_123/line_items/li_2",
	}, paths)
	assert.Equal(t, "1", transport.requests[0].Query.Get("limit"))

	_, err = nested.Update(ctx, "ord_123", "", nil)
	require.ErrorIs(t, err, conekta.ErrEmptyID)
	assert.Equal(t, 4, transport.calls())
}

func TestNested_BindAttachesEmbeddedCollection(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{responses: []*conekta.Response{
		respond(http.StatusOK, `{"object":"list","has_more":false,"data":[{"id":"li_3"}]}`),
	}}

	nested := resource.NewNested(transport, "/orders", "line_items", itemDescriptor, conekta.DefaultCursorParams())

	embedded := conekta.NewCollection(
		[]item{{ID: "li_1"}},
		conekta.PageInfo{HasMore: true, NextPageURL: "https://api.conekta.io/orders/ord_123/line_items?next=li_1"},
		conekta.DefaultCursorParams(),
		nil,
		0,
		nil,
	)

	_, err := embedded.FetchNext(context.Background())
	require.ErrorIs(t, err, conekta.ErrDetachedCollection)

	bound := nested.Bind("ord_123", embedded)

	next, err := bound.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "li_3", next.Data[0].ID)
	assert.Equal(t, "/orders/ord_123/line_items", transport.requests[0].Path)
	assert.Equal(t, "li_1", transport.requests[0].Query.Get("next"))

	assert.Nil(t, nested.Bind("ord_123", nil))
}
