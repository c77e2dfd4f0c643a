package client

import (
	"context"

	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/nysertxs/conekta-go/internal/resource"
	"github.com/nysertxs/conekta-go/pkg/conekta"
)

// OrdersClient implements conekta.OrdersClient.
type OrdersClient struct {
	endpoint *resource.Endpoint[conekta.Order]

	lineItems     *resource.Nested[conekta.LineItem]
	shippingLines *resource.Nested[conekta.ShippingLine]
	taxLines      *resource.Nested[conekta.TaxLine]
	discountLines *resource.Nested[conekta.DiscountLine]
	charges       *ChargesClient
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(transport conekta.Transport, cursors conekta.CursorParams) *OrdersClient {
	path := constants.OrdersPath

	client := &OrdersClient{
		lineItems:     resource.NewNested(transport, path, constants.LineItemsSegment, conekta.LineItemDescriptor, cursors),
		shippingLines: resource.NewNested(transport, path, constants.ShippingLinesSegment, conekta.ShippingLineDescriptor, cursors),
		taxLines:      resource.NewNested(transport, path, constants.TaxLinesSegment, conekta.TaxLineDescriptor, cursors),
		discountLines: resource.NewNested(transport, path, constants.DiscountLinesSegment, conekta.DiscountLineDescriptor, cursors),
		charges:       NewChargesClient(transport, cursors),
	}

	client.endpoint = resource.NewEndpoint(transport, path, conekta.OrderDescriptor, cursors).
		WithAttach(client.bind)

	return client
}

// bind attaches the sub-resource collections embedded in an order to
// their list endpoints, so FetchNext on them continues under the order.
func (c *OrdersClient) bind(order *conekta.Order) {
	order.LineItems = c.lineItems.Bind(order.ID, order.LineItems)
	order.ShippingLines = c.shippingLines.Bind(order.ID, order.ShippingLines)
	order.TaxLines = c.taxLines.Bind(order.ID, order.TaxLines)
	order.DiscountLines = c.discountLines.Bind(order.ID, order.DiscountLines)
	order.Charges = c.charges.nested.Bind(order.ID, order.Charges)
}

// List lists orders.
func (c *OrdersClient) List(ctx context.Context, params *conekta.ListParams) (*conekta.Collection[conekta.Order], error) {
	return c.endpoint.List(ctx, params)
}

// Page fetches one page of orders, e.g. starting at a cursor.
func (c *OrdersClient) Page(ctx context.Context, req conekta.PageRequest) (*conekta.Collection[conekta.Order], error) {
	return c.endpoint.Page(ctx, req)
}

// Retrieve gets an order by id.
func (c *OrdersClient) Retrieve(ctx context.Context, id string) (*conekta.Order, error) {
	return c.endpoint.Retrieve(ctx, id)
}

// Create creates an order. attrs is sent as the request body unchanged.
func (c *OrdersClient) Create(ctx context.Context, attrs conekta.Attributes) (*conekta.Order, error) {
	return c.endpoint.Create(ctx, attrs)
}

// Update updates an order.
func (c *OrdersClient) Update(ctx context.Context, id string, attrs conekta.Attributes) (*conekta.Order, error) {
	return c.endpoint.Update(ctx, id, attrs)
}

// Capture captures a pre-authorized order.
func (c *OrdersClient) Capture(ctx context.Context, id string) (*conekta.Order, error) {
	return c.endpoint.Action(ctx, id, constants.CaptureAction, nil)
}

// Cancel cancels an order.
func (c *OrdersClient) Cancel(ctx context.Context, id string) (*conekta.Order, error) {
	return c.endpoint.Action(ctx, id, constants.CancelAction, nil)
}

// Refund refunds an order, fully when params carries no amount.
func (c *OrdersClient) Refund(ctx context.Context, id string, params *conekta.RefundParams) (*conekta.Order, error) {
	return c.endpoint.Action(ctx, id, constants.RefundsSegment, params.Attributes())
}

// LineItems returns the line items of orders.
func (c *OrdersClient) LineItems() conekta.NestedClient[conekta.LineItem] {
	return c.lineItems
}

// ShippingLines returns the shipping lines of orders.
func (c *OrdersClient) ShippingLines() conekta.NestedClient[conekta.ShippingLine] {
	return c.shippingLines
}

// TaxLines returns the tax lines of orders.
func (c *OrdersClient) TaxLines() conekta.NestedClient[conekta.TaxLine] {
	return c.taxLines
}

// DiscountLines returns the discount lines of orders.
func (c *OrdersClient) DiscountLines() conekta.NestedClient[conekta.DiscountLine] {
	return c.discountLines
}

// Charges returns the charges of orders.
func (c *OrdersClient) Charges() conekta.ChargesClient {
	return c.charges
}
