package client

import (
	"context"

	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/nysertxs/conekta-go/internal/resource"
	"github.com/nysertxs/conekta-go/pkg/conekta"
)

// ChargesClient implements conekta.ChargesClient.
type ChargesClient struct {
	nested *resource.Nested[conekta.Charge]
}

// NewChargesClient creates a new charges client.
func NewChargesClient(transport conekta.Transport, cursors conekta.CursorParams) *ChargesClient {
	return &ChargesClient{
		nested: resource.NewNested(transport, constants.OrdersPath, constants.ChargesSegment, conekta.ChargeDescriptor, cursors),
	}
}

// List lists the charges of an order.
func (c *ChargesClient) List(ctx context.Context, orderID string, params *conekta.ListParams) (*conekta.Collection[conekta.Charge], error) {
	return c.nested.List(ctx, orderID, params)
}

// Page fetches one page of the charges of an order.
func (c *ChargesClient) Page(ctx context.Context, orderID string, req conekta.PageRequest) (*conekta.Collection[conekta.Charge], error) {
	return c.nested.Page(ctx, orderID, req)
}

// Create adds a charge to an order, e.g. to pay it with a new payment
// method after a declined attempt.
func (c *ChargesClient) Create(ctx context.Context, orderID string, attrs conekta.Attributes) (*conekta.Charge, error) {
	return c.nested.Create(ctx, orderID, attrs)
}
