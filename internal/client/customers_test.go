package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nysertxs/conekta-go/pkg/conekta"
)

const customerJSON = `{
	"id": "cus_1",
	"object": "customer",
	"livemode": false,
	"name": "Fulanito Pérez",
	"email": "fulanito@example.com",
	"corporate": false,
	"metadata": {"segment": "retail", "score": 7},
	"created_at": 1700000000
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCustomersClient_Operations(t *testing.T) {
	t.Parallel()

	tests := []TestOperation[conekta.Customer]{
		{
			Name: "retrieve",
			Call: func(ctx context.Context, c *Client) (*conekta.Customer, error) {
				return c.Customers().Retrieve(ctx, "cus_1")
			},
			StatusCode:   http.StatusOK,
			Response:     customerJSON,
			ExpectedVerb: http.MethodGet,
			ExpectedPath: "/customers/cus_1",
			Check: func(t *testing.T, customer *conekta.Customer) {
				t.Helper()

				assert.Equal(t, "Fulanito Pérez", customer.Name)
				assert.Equal(t, map[string]string{"segment": "retail", "score": "7"}, customer.Metadata)
				assert.Equal(t, int64(1700000000), customer.CreatedAt)
			},
		},
		{
			Name: "create",
			Call: func(ctx context.Context, c *Client) (*conekta.Customer, error) {
				return c.Customers().Create(ctx, conekta.Attributes{"name": "Fulanito Pérez", "email": "fulanito@example.com"})
			},
			StatusCode:   http.StatusOK,
			Response:     customerJSON,
			ExpectedVerb: http.MethodPost,
			ExpectedPath: "/customers",
			ExpectedBody: `{"name":"Fulanito Pérez","email":"fulanito@example.com"}`,
		},
		{
			Name: "create rejected",
			Call: func(ctx context.Context, c *Client) (*conekta.Customer, error) {
				return c.Customers().Create(ctx, conekta.Attributes{"name": "x"})
			},
			StatusCode:   http.StatusUnprocessableEntity,
			Response:     `{"type":"parameter_validation_error","details":[{"param":"email","message":"Falta el correo."}]}`,
			ExpectedVerb: http.MethodPost,
			ExpectedPath: "/customers",
			ExpectedBody: `{"name":"x"}`,
			WantErr:      true,
			ErrMessage:   "Falta el correo.",
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *Client) (*conekta.Customer, error) {
				return c.Customers().Update(ctx, "cus_1", conekta.Attributes{"phone": "+5215555555555"})
			},
			StatusCode:   http.StatusOK,
			Response:     customerJSON,
			ExpectedVerb: http.MethodPut,
			ExpectedPath: "/customers/cus_1",
			ExpectedBody: `{"phone":"+5215555555555"}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *Client) (*conekta.Customer, error) {
				return c.Customers().Delete(ctx, "cus_1")
			},
			StatusCode:   http.StatusOK,
			Response:     customerJSON,
			ExpectedVerb: http.MethodDelete,
			ExpectedPath: "/customers/cus_1",
		},
	}

	RunOperationTests(t, tests)
}

func TestCustomersClient_ListAndCollect(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, `{"object":"list","has_more":false,"data":[`+customerJSON+`,{"id":"cus_2","name":"Mengano"}]}`)
	client := NewTestClient(server.URL)

	page, err := client.Customers().List(context.Background(), nil)
	require.NoError(t, err)

	all, err := conekta.Collect(context.Background(), page, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Mengano", all[1].Name)
	assert.Equal(t, int32(1), server.calls.Load())
}
