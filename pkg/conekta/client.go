package conekta

import (
	"context"
)

// Client is the main interface for the Conekta API.
type Client interface {
	Orders() OrdersClient
	Customers() CustomersClient
}

// OrdersClient defines operations for orders.
type OrdersClient interface {
	List(ctx context.Context, params *ListParams) (*Collection[Order], error)
	// Page fetches one page, optionally starting at a cursor.
	Page(ctx context.Context, req PageRequest) (*Collection[Order], error)
	Retrieve(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, attrs Attributes) (*Order, error)
	Update(ctx context.Context, id string, attrs Attributes) (*Order, error)
	// Capture charges an order created with pre-authorization.
	Capture(ctx context.Context, id string) (*Order, error)
	Cancel(ctx context.Context, id string) (*Order, error)
	Refund(ctx context.Context, id string, params *RefundParams) (*Order, error)

	LineItems() NestedClient[LineItem]
	ShippingLines() NestedClient[ShippingLine]
	TaxLines() NestedClient[TaxLine]
	DiscountLines() NestedClient[DiscountLine]
	Charges() ChargesClient
}

// NestedClient defines operations for resources that live under an order.
type NestedClient[T any] interface {
	List(ctx context.Context, orderID string, params *ListParams) (*Collection[T], error)
	Page(ctx context.Context, orderID string, req PageRequest) (*Collection[T], error)
	Create(ctx context.Context, orderID string, attrs Attributes) (*T, error)
	Update(ctx context.Context, orderID, id string, attrs Attributes) (*T, error)
	Delete(ctx context.Context, orderID, id string) (*T, error)
}

// ChargesClient defines operations for the charges of an order.
type ChargesClient interface {
	List(ctx context.Context, orderID string, params *ListParams) (*Collection[Charge], error)
	Page(ctx context.Context, orderID string, req PageRequest) (*Collection[Charge], error)
	Create(ctx context.Context, orderID string, attrs Attributes) (*Charge, error)
}

// CustomersClient defines operations for customers.
type CustomersClient interface {
	List(ctx context.Context, params *ListParams) (*Collection[Customer], error)
	Page(ctx context.Context, req PageRequest) (*Collection[Customer], error)
	Retrieve(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, attrs Attributes) (*Customer, error)
	Update(ctx context.Context, id string, attrs Attributes) (*Customer, error)
	Delete(ctx context.Context, id string) (*Customer, error)
}
