package client

import (
	"context"

	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/nysertxs/conekta-go/internal/resource"
	"github.com/nysertxs/conekta-go/pkg/conekta"
)

// CustomersClient implements conekta.CustomersClient.
type CustomersClient struct {
	endpoint *resource.Endpoint[conekta.Customer]
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(transport conekta.Transport, cursors conekta.CursorParams) *CustomersClient {
	return &CustomersClient{
		endpoint: resource.NewEndpoint(transport, constants.CustomersPath, conekta.CustomerDescriptor, cursors),
	}
}

// List lists customers.
func (c *CustomersClient) List(ctx context.Context, params *conekta.ListParams) (*conekta.Collection[conekta.Customer], error) {
	return c.endpoint.List(ctx, params)
}

// Page fetches one page of customers.
func (c *CustomersClient) Page(ctx context.Context, req conekta.PageRequest) (*conekta.Collection[conekta.Customer], error) {
	return c.endpoint.Page(ctx, req)
}

// Retrieve gets a customer by id.
func (c *CustomersClient) Retrieve(ctx context.Context, id string) (*conekta.Customer, error) {
	return c.endpoint.Retrieve(ctx, id)
}

// Create creates a customer.
func (c *CustomersClient) Create(ctx context.Context, attrs conekta.Attributes) (*conekta.Customer, error) {
	return c.endpoint.Create(ctx, attrs)
}

// Update updates a customer.
func (c *CustomersClient) Update(ctx context.Context, id string, attrs conekta.Attributes) (*conekta.Customer, error) {
	return c.endpoint.Update(ctx, id, attrs)
}

// Delete deletes a customer.
func (c *CustomersClient) Delete(ctx context.Context, id string) (*conekta.Customer, error) {
	return c.endpoint.Delete(ctx, id)
}
