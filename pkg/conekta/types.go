package conekta

import (
	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Attributes is the caller-supplied body of a write request. It is
// serialised to JSON verbatim: no fields are added or renamed.
type Attributes map[string]any

// Decoded keeps the payload a resource was bound from so callers can tell
// a field the API omitted from one it sent as null.
type Decoded struct {
	value shape.Value
}

// Raw returns the decoded payload.
func (d Decoded) Raw() shape.Value {
	return d.value
}

// Presence reports whether the field at the given path was missing, null
// or present in the payload.
func (d Decoded) Presence(names ...string) shape.Presence {
	return d.value.Lookup(names...).Presence()
}

// Order is an order and its nested collections.
type Order struct {
	Decoded `json:"-" yaml:"-"`

	ID              string                    `json:"id"                         yaml:"id"`
	Object          string                    `json:"object"                     yaml:"object"`
	Livemode        bool                      `json:"livemode"                   yaml:"livemode"`
	Amount          int64                     `json:"amount"                     yaml:"amount"`
	AmountRefunded  int64                     `json:"amount_refunded"            yaml:"amount_refunded"`
	Currency        string                    `json:"currency"                   yaml:"currency"`
	PaymentStatus   string                    `json:"payment_status"             yaml:"payment_status"`
	CustomerInfo    *CustomerInfo             `json:"customer_info,omitempty"    yaml:"customer_info,omitempty"`
	ShippingContact *ShippingContact          `json:"shipping_contact,omitempty" yaml:"shipping_contact,omitempty"`
	Metadata        map[string]string         `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
	LineItems       *Collection[LineItem]     `json:"line_items,omitempty"       yaml:"line_items,omitempty"`
	ShippingLines   *Collection[ShippingLine] `json:"shipping_lines,omitempty"   yaml:"shipping_lines,omitempty"`
	TaxLines        *Collection[TaxLine]      `json:"tax_lines,omitempty"        yaml:"tax_lines,omitempty"`
	DiscountLines   *Collection[DiscountLine] `json:"discount_lines,omitempty"   yaml:"discount_lines,omitempty"`
	Charges         *Collection[Charge]       `json:"charges,omitempty"          yaml:"charges,omitempty"`
	CreatedAt       int64                     `json:"created_at"                 yaml:"created_at"`
	UpdatedAt       int64                     `json:"updated_at"                 yaml:"updated_at"`
}

// CustomerInfo identifies the buyer of an order.
type CustomerInfo struct {
	CustomerID string `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	Name       string `json:"name,omitempty"        yaml:"name,omitempty"`
	Email      string `json:"email,omitempty"       yaml:"email,omitempty"`
	Phone      string `json:"phone,omitempty"       yaml:"phone,omitempty"`
	Corporate  bool   `json:"corporate"             yaml:"corporate"`
	Object     string `json:"object,omitempty"      yaml:"object,omitempty"`
}

// ShippingContact is the delivery contact of an order or customer.
type ShippingContact struct {
	ID             string  `json:"id,omitempty"              yaml:"id,omitempty"`
	Receiver       string  `json:"receiver,omitempty"        yaml:"receiver,omitempty"`
	Phone          string  `json:"phone,omitempty"           yaml:"phone,omitempty"`
	BetweenStreets string  `json:"between_streets,omitempty" yaml:"between_streets,omitempty"`
	Address        Address `json:"address"                   yaml:"address"`
}

// Address is a postal address.
type Address struct {
	Street1     string `json:"street1,omitempty"     yaml:"street1,omitempty"`
	Street2     string `json:"street2,omitempty"     yaml:"street2,omitempty"`
	City        string `json:"city,omitempty"        yaml:"city,omitempty"`
	State       string `json:"state,omitempty"       yaml:"state,omitempty"`
	Country     string `json:"country,omitempty"     yaml:"country,omitempty"`
	PostalCode  string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Residential bool   `json:"residential"           yaml:"residential"`
}

// LineItem is a product line of an order.
type LineItem struct {
	Decoded `json:"-" yaml:"-"`

	ID          string            `json:"id"                    yaml:"id"`
	Object      string            `json:"object"                yaml:"object"`
	Name        string            `json:"name"                  yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	SKU         string            `json:"sku,omitempty"         yaml:"sku,omitempty"`
	Brand       string            `json:"brand,omitempty"       yaml:"brand,omitempty"`
	UnitPrice   int64             `json:"unit_price"            yaml:"unit_price"`
	Quantity    int64             `json:"quantity"              yaml:"quantity"`
	// Amount is the line total when the API reports one.
	Amount   int64             `json:"amount,omitempty"   yaml:"amount,omitempty"`
	Tags     []string          `json:"tags,omitempty"     yaml:"tags,omitempty"`
	ParentID string            `json:"parent_id"          yaml:"parent_id"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ShippingLine is a shipping charge of an order.
type ShippingLine struct {
	Decoded `json:"-" yaml:"-"`

	ID             string            `json:"id"                        yaml:"id"`
	Object         string            `json:"object"                    yaml:"object"`
	Amount         int64             `json:"amount"                    yaml:"amount"`
	Carrier        string            `json:"carrier,omitempty"         yaml:"carrier,omitempty"`
	Method         string            `json:"method,omitempty"          yaml:"method,omitempty"`
	TrackingNumber string            `json:"tracking_number,omitempty" yaml:"tracking_number,omitempty"`
	ParentID       string            `json:"parent_id"                 yaml:"parent_id"`
	Metadata       map[string]string `json:"metadata,omitempty"        yaml:"metadata,omitempty"`
}

// TaxLine is a tax charge of an order.
type TaxLine struct {
	Decoded `json:"-" yaml:"-"`

	ID          string            `json:"id"                 yaml:"id"`
	Object      string            `json:"object"             yaml:"object"`
	Description string            `json:"description"        yaml:"description"`
	Amount      int64             `json:"amount"             yaml:"amount"`
	ParentID    string            `json:"parent_id"          yaml:"parent_id"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// DiscountLine is a discount applied to an order.
type DiscountLine struct {
	Decoded `json:"-" yaml:"-"`

	ID       string `json:"id"        yaml:"id"`
	Object   string `json:"object"    yaml:"object"`
	Code     string `json:"code"      yaml:"code"`
	Type     string `json:"type"      yaml:"type"`
	Amount   int64  `json:"amount"    yaml:"amount"`
	ParentID string `json:"parent_id" yaml:"parent_id"`
}

// Charge is a payment attempt against an order.
type Charge struct {
	Decoded `json:"-" yaml:"-"`

	ID             string              `json:"id"                        yaml:"id"`
	Object         string              `json:"object"                    yaml:"object"`
	Livemode       bool                `json:"livemode"                  yaml:"livemode"`
	Amount         int64               `json:"amount"                    yaml:"amount"`
	Currency       string              `json:"currency"                  yaml:"currency"`
	Status         string              `json:"status"                    yaml:"status"`
	Description    string              `json:"description,omitempty"     yaml:"description,omitempty"`
	Fee            int64               `json:"fee"                       yaml:"fee"`
	OrderID        string              `json:"order_id"                  yaml:"order_id"`
	CustomerID     string              `json:"customer_id,omitempty"     yaml:"customer_id,omitempty"`
	FailureCode    string              `json:"failure_code,omitempty"    yaml:"failure_code,omitempty"`
	FailureMessage string              `json:"failure_message,omitempty" yaml:"failure_message,omitempty"`
	PaymentMethod  *PaymentMethod      `json:"payment_method,omitempty"  yaml:"payment_method,omitempty"`
	Refunds        *Collection[Refund] `json:"refunds,omitempty"         yaml:"refunds,omitempty"`
	CreatedAt      int64               `json:"created_at"                yaml:"created_at"`
	PaidAt         int64               `json:"paid_at,omitempty"         yaml:"paid_at,omitempty"`
}

// PaymentMethod describes how a charge was paid. Card fields and cash or
// transfer fields are mutually exclusive.
type PaymentMethod struct {
	Type        string `json:"type"                   yaml:"type"`
	Object      string `json:"object"                 yaml:"object"`
	Name        string `json:"name,omitempty"         yaml:"name,omitempty"`
	Brand       string `json:"brand,omitempty"        yaml:"brand,omitempty"`
	Last4       string `json:"last4,omitempty"        yaml:"last4,omitempty"`
	ExpMonth    string `json:"exp_month,omitempty"    yaml:"exp_month,omitempty"`
	ExpYear     string `json:"exp_year,omitempty"     yaml:"exp_year,omitempty"`
	AuthCode    string `json:"auth_code,omitempty"    yaml:"auth_code,omitempty"`
	ServiceName string `json:"service_name,omitempty" yaml:"service_name,omitempty"`
	Reference   string `json:"reference,omitempty"    yaml:"reference,omitempty"`
	Clabe       string `json:"clabe,omitempty"        yaml:"clabe,omitempty"`
	ExpiresAt   int64  `json:"expires_at,omitempty"   yaml:"expires_at,omitempty"`
}

// Refund is a full or partial refund of a charge.
type Refund struct {
	Decoded `json:"-" yaml:"-"`

	ID        string `json:"id"                  yaml:"id"`
	Object    string `json:"object"              yaml:"object"`
	Amount    int64  `json:"amount"              yaml:"amount"`
	Currency  string `json:"currency,omitempty"  yaml:"currency,omitempty"`
	Reason    string `json:"reason,omitempty"    yaml:"reason,omitempty"`
	Status    string `json:"status,omitempty"    yaml:"status,omitempty"`
	AuthCode  string `json:"auth_code,omitempty" yaml:"auth_code,omitempty"`
	CreatedAt int64  `json:"created_at"          yaml:"created_at"`
}

// Customer is a stored buyer.
type Customer struct {
	Decoded `json:"-" yaml:"-"`

	ID                       string            `json:"id"                                    yaml:"id"`
	Object                   string            `json:"object"                                yaml:"object"`
	Livemode                 bool              `json:"livemode"                              yaml:"livemode"`
	Name                     string            `json:"name"                                  yaml:"name"`
	Email                    string            `json:"email"                                 yaml:"email"`
	Phone                    string            `json:"phone,omitempty"                       yaml:"phone,omitempty"`
	Corporate                bool              `json:"corporate"                             yaml:"corporate"`
	DefaultPaymentSourceID   string            `json:"default_payment_source_id,omitempty"   yaml:"default_payment_source_id,omitempty"`
	DefaultShippingContactID string            `json:"default_shipping_contact_id,omitempty" yaml:"default_shipping_contact_id,omitempty"`
	Metadata                 map[string]string `json:"metadata,omitempty"                    yaml:"metadata,omitempty"`
	CreatedAt                int64             `json:"created_at"                            yaml:"created_at"`
}

// RefundParams are the attributes of an order refund.
type RefundParams struct {
	// Reason is required by the API ("requested_by_client", "suspected_fraud", ...).
	Reason string
	// Amount in cents. When nil the field is left out of the request.
	Amount *int64
}

// Attributes renders p as a request body.
func (p *RefundParams) Attributes() Attributes {
	attrs := Attributes{}
	if p == nil {
		return attrs
	}

	if p.Reason != "" {
		attrs["reason"] = p.Reason
	}

	if p.Amount != nil {
		attrs["amount"] = *p.Amount
	}

	return attrs
}
