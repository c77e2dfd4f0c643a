package conekta

import (
	"github.com/nysertxs/conekta-go/pkg/shape"
)

// Metadata is free-form: callers may store nested objects and arrays.
var metadataShape = shape.Map(shape.Any())

var addressDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"street1":     shape.String(),
		"street2":     shape.String(),
		"city":        shape.String(),
		"state":       shape.String(),
		"country":     shape.String(),
		"postal_code": shape.String(),
		"residential": shape.Bool(),
	}),
	func(v shape.Value) Address {
		return Address{
			Street1:     v.Field("street1").Str(),
			Street2:     v.Field("street2").Str(),
			City:        v.Field("city").Str(),
			State:       v.Field("state").Str(),
			Country:     v.Field("country").Str(),
			PostalCode:  v.Field("postal_code").Str(),
			Residential: v.Field("residential").Bool(),
		}
	},
)

var shippingContactDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":              shape.String(),
		"receiver":        shape.String(),
		"phone":           shape.String(),
		"between_streets": shape.String(),
		"address":         addressDescriptor.Shape(),
	}),
	func(v shape.Value) ShippingContact {
		return ShippingContact{
			ID:             v.Field("id").Str(),
			Receiver:       v.Field("receiver").Str(),
			Phone:          v.Field("phone").Str(),
			BetweenStreets: v.Field("between_streets").Str(),
			Address:        addressDescriptor.Bind(v.Field("address")),
		}
	},
)

var customerInfoDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"customer_id": shape.String(),
		"name":        shape.String(),
		"email":       shape.String(),
		"phone":       shape.String(),
		"corporate":   shape.Bool(),
		"object":      shape.String(),
	}),
	func(v shape.Value) CustomerInfo {
		return CustomerInfo{
			CustomerID: v.Field("customer_id").Str(),
			Name:       v.Field("name").Str(),
			Email:      v.Field("email").Str(),
			Phone:      v.Field("phone").Str(),
			Corporate:  v.Field("corporate").Bool(),
			Object:     v.Field("object").Str(),
		}
	},
)

// LineItemDescriptor describes a line item.
var LineItemDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":          shape.String(),
		"object":      shape.String(),
		"name":        shape.String(),
		"description": shape.String(),
		"sku":         shape.String(),
		"brand":       shape.String(),
		"unit_price":  shape.Number(),
		"quantity":    shape.Number(),
		"amount":      shape.Number(),
		"tags":        shape.List(shape.String()),
		"parent_id":   shape.String(),
		"metadata":    metadataShape,
	}),
	func(v shape.Value) LineItem {
		return LineItem{
			Decoded:     Decoded{value: v},
			ID:          v.Field("id").Str(),
			Object:      v.Field("object").Str(),
			Name:        v.Field("name").Str(),
			Description: v.Field("description").Str(),
			SKU:         v.Field("sku").Str(),
			Brand:       v.Field("brand").Str(),
			UnitPrice:   v.Field("unit_price").Int64(),
			Quantity:    v.Field("quantity").Int64(),
			Amount:      v.Field("amount").Int64(),
			Tags:        v.Field("tags").Strings(),
			ParentID:    v.Field("parent_id").Str(),
			Metadata:    v.Field("metadata").StringMap(),
		}
	},
)

// ShippingLineDescriptor describes a shipping line.
var ShippingLineDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":              shape.String(),
		"object":          shape.String(),
		"amount":          shape.Number(),
		"carrier":         shape.String(),
		"method":          shape.String(),
		"tracking_number": shape.String(),
		"parent_id":       shape.String(),
		"metadata":        metadataShape,
	}),
	func(v shape.Value) ShippingLine {
		return ShippingLine{
			Decoded:        Decoded{value: v},
			ID:             v.Field("id").Str(),
			Object:         v.Field("object").Str(),
			Amount:         v.Field("amount").Int64(),
			Carrier:        v.Field("carrier").Str(),
			Method:         v.Field("method").Str(),
			TrackingNumber: v.Field("tracking_number").Str(),
			ParentID:       v.Field("parent_id").Str(),
			Metadata:       v.Field("metadata").StringMap(),
		}
	},
)

// TaxLineDescriptor describes a tax line.
var TaxLineDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":          shape.String(),
		"object":      shape.String(),
		"description": shape.String(),
		"amount":      shape.Number(),
		"parent_id":   shape.String(),
		"metadata":    metadataShape,
	}),
	func(v shape.Value) TaxLine {
		return TaxLine{
			Decoded:     Decoded{value: v},
			ID:          v.Field("id").Str(),
			Object:      v.Field("object").Str(),
			Description: v.Field("description").Str(),
			Amount:      v.Field("amount").Int64(),
			ParentID:    v.Field("parent_id").Str(),
			Metadata:    v.Field("metadata").StringMap(),
		}
	},
)

// DiscountLineDescriptor describes a discount line.
var DiscountLineDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":        shape.String(),
		"object":    shape.String(),
		"code":      shape.String(),
		"type":      shape.String(),
		"amount":    shape.Number(),
		"parent_id": shape.String(),
	}),
	func(v shape.Value) DiscountLine {
		return DiscountLine{
			Decoded:  Decoded{value: v},
			ID:       v.Field("id").Str(),
			Object:   v.Field("object").Str(),
			Code:     v.Field("code").Str(),
			Type:     v.Field("type").Str(),
			Amount:   v.Field("amount").Int64(),
			ParentID: v.Field("parent_id").Str(),
		}
	},
)

// Expiry months and years arrive as strings for cards and numbers for
// some cash methods.
var paymentMethodDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"type":         shape.String(),
		"object":       shape.String(),
		"name":         shape.String(),
		"brand":        shape.String(),
		"last4":        shape.String(),
		"exp_month":    shape.Scalar(),
		"exp_year":     shape.Scalar(),
		"auth_code":    shape.Scalar(),
		"service_name": shape.String(),
		"reference":    shape.String(),
		"clabe":        shape.String(),
		"expires_at":   shape.Number(),
	}),
	func(v shape.Value) PaymentMethod {
		return PaymentMethod{
			Type:        v.Field("type").Str(),
			Object:      v.Field("object").Str(),
			Name:        v.Field("name").Str(),
			Brand:       v.Field("brand").Str(),
			Last4:       v.Field("last4").Str(),
			ExpMonth:    scalarText(v.Field("exp_month")),
			ExpYear:     scalarText(v.Field("exp_year")),
			AuthCode:    scalarText(v.Field("auth_code")),
			ServiceName: v.Field("service_name").Str(),
			Reference:   v.Field("reference").Str(),
			Clabe:       v.Field("clabe").Str(),
			ExpiresAt:   v.Field("expires_at").Int64(),
		}
	},
)

// RefundDescriptor describes a refund.
var RefundDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":         shape.String(),
		"object":     shape.String(),
		"amount":     shape.Number(),
		"currency":   shape.String(),
		"reason":     shape.String(),
		"status":     shape.String(),
		"auth_code":  shape.Scalar(),
		"created_at": shape.Number(),
	}),
	func(v shape.Value) Refund {
		return Refund{
			Decoded:   Decoded{value: v},
			ID:        v.Field("id").Str(),
			Object:    v.Field("object").Str(),
			Amount:    v.Field("amount").Int64(),
			Currency:  v.Field("currency").Str(),
			Reason:    v.Field("reason").Str(),
			Status:    v.Field("status").Str(),
			AuthCode:  scalarText(v.Field("auth_code")),
			CreatedAt: v.Field("created_at").Int64(),
		}
	},
)

var refundCollectionDescriptor = CollectionDescriptor(RefundDescriptor, DefaultCursorParams())

// ChargeDescriptor describes a charge.
var ChargeDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":              shape.String(),
		"object":          shape.String(),
		"livemode":        shape.Bool(),
		"amount":          shape.Number(),
		"currency":        shape.String(),
		"status":          shape.String(),
		"description":     shape.String(),
		"fee":             shape.Number(),
		"order_id":        shape.String(),
		"customer_id":     shape.String(),
		"failure_code":    shape.String(),
		"failure_message": shape.String(),
		"payment_method":  paymentMethodDescriptor.Shape(),
		"refunds":         refundCollectionDescriptor.Shape(),
		"created_at":      shape.Number(),
		"paid_at":         shape.Number(),
	}),
	func(v shape.Value) Charge {
		charge := Charge{
			Decoded:        Decoded{value: v},
			ID:             v.Field("id").Str(),
			Object:         v.Field("object").Str(),
			Livemode:       v.Field("livemode").Bool(),
			Amount:         v.Field("amount").Int64(),
			Currency:       v.Field("currency").Str(),
			Status:         v.Field("status").Str(),
			Description:    v.Field("description").Str(),
			Fee:            v.Field("fee").Int64(),
			OrderID:        v.Field("order_id").Str(),
			CustomerID:     v.Field("customer_id").Str(),
			FailureCode:    v.Field("failure_code").Str(),
			FailureMessage: v.Field("failure_message").Str(),
			CreatedAt:      v.Field("created_at").Int64(),
			PaidAt:         v.Field("paid_at").Int64(),
		}

		if v.Has("payment_method") {
			method := paymentMethodDescriptor.Bind(v.Field("payment_method"))
			charge.PaymentMethod = &method
		}

		if v.Has("refunds") {
			charge.Refunds = refundCollectionDescriptor.Bind(v.Field("refunds"))
		}

		return charge
	},
)

var (
	lineItemCollectionDescriptor     = CollectionDescriptor(LineItemDescriptor, DefaultCursorParams())
	shippingLineCollectionDescriptor = CollectionDescriptor(ShippingLineDescriptor, DefaultCursorParams())
	taxLineCollectionDescriptor      = CollectionDescriptor(TaxLineDescriptor, DefaultCursorParams())
	discountLineCollectionDescriptor = CollectionDescriptor(DiscountLineDescriptor, DefaultCursorParams())
	chargeCollectionDescriptor       = CollectionDescriptor(ChargeDescriptor, DefaultCursorParams())
)

// OrderDescriptor describes an order and its embedded collections.
var OrderDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":               shape.String(),
		"object":           shape.String(),
		"livemode":         shape.Bool(),
		"amount":           shape.Number(),
		"amount_refunded":  shape.Number(),
		"currency":         shape.String(),
		"payment_status":   shape.String(),
		"customer_info":    customerInfoDescriptor.Shape(),
		"shipping_contact": shippingContactDescriptor.Shape(),
		"metadata":         metadataShape,
		"line_items":       lineItemCollectionDescriptor.Shape(),
		"shipping_lines":   shippingLineCollectionDescriptor.Shape(),
		"tax_lines":        taxLineCollectionDescriptor.Shape(),
		"discount_lines":   discountLineCollectionDescriptor.Shape(),
		"charges":          chargeCollectionDescriptor.Shape(),
		"created_at":       shape.Number(),
		"updated_at":       shape.Number(),
	}),
	bindOrder,
)

func bindOrder(v shape.Value) Order {
	order := Order{
		Decoded:        Decoded{value: v},
		ID:             v.Field("id").Str(),
		Object:         v.Field("object").Str(),
		Livemode:       v.Field("livemode").Bool(),
		Amount:         v.Field("amount").Int64(),
		AmountRefunded: v.Field("amount_refunded").Int64(),
		Currency:       v.Field("currency").Str(),
		PaymentStatus:  v.Field("payment_status").Str(),
		Metadata:       v.Field("metadata").StringMap(),
		CreatedAt:      v.Field("created_at").Int64(),
		UpdatedAt:      v.Field("updated_at").Int64(),
	}

	if v.Has("customer_info") {
		info := customerInfoDescriptor.Bind(v.Field("customer_info"))
		order.CustomerInfo = &info
	}

	if v.Has("shipping_contact") {
		contact := shippingContactDescriptor.Bind(v.Field("shipping_contact"))
		order.ShippingContact = &contact
	}

	if v.Has("line_items") {
		order.LineItems = lineItemCollectionDescriptor.Bind(v.Field("line_items"))
	}

	if v.Has("shipping_lines") {
		order.ShippingLines = shippingLineCollectionDescriptor.Bind(v.Field("shipping_lines"))
	}

	if v.Has("tax_lines") {
		order.TaxLines = taxLineCollectionDescriptor.Bind(v.Field("tax_lines"))
	}

	if v.Has("discount_lines") {
		order.DiscountLines = discountLineCollectionDescriptor.Bind(v.Field("discount_lines"))
	}

	if v.Has("charges") {
		order.Charges = chargeCollectionDescriptor.Bind(v.Field("charges"))
	}

	return order
}

// CustomerDescriptor describes a customer.
var CustomerDescriptor = shape.Describe(
	shape.Object(shape.Fields{
		"id":                          shape.String(),
		"object":                      shape.String(),
		"livemode":                    shape.Bool(),
		"name":                        shape.String(),
		"email":                       shape.String(),
		"phone":                       shape.String(),
		"corporate":                   shape.Bool(),
		"default_payment_source_id":   shape.String(),
		"default_shipping_contact_id": shape.String(),
		"metadata":                    metadataShape,
		"created_at":                  shape.Number(),
	}),
	func(v shape.Value) Customer {
		return Customer{
			Decoded:                  Decoded{value: v},
			ID:                       v.Field("id").Str(),
			Object:                   v.Field("object").Str(),
			Livemode:                 v.Field("livemode").Bool(),
			Name:                     v.Field("name").Str(),
			Email:                    v.Field("email").Str(),
			Phone:                    v.Field("phone").Str(),
			Corporate:                v.Field("corporate").Bool(),
			DefaultPaymentSourceID:   v.Field("default_payment_source_id").Str(),
			DefaultShippingContactID: v.Field("default_shipping_contact_id").Str(),
			Metadata:                 v.Field("metadata").StringMap(),
			CreatedAt:                v.Field("created_at").Int64(),
		}
	},
)

func scalarText(v shape.Value) string {
	switch v.Type() {
	case shape.TypeString:
		return v.Str()
	case shape.TypeNumber:
		return string(v.Number())
	default:
		return ""
	}
}
