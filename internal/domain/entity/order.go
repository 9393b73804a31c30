// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// UpstreamStatus is the raw order status reported by the commerce backend.
type UpstreamStatus string

const (
	StatusDraft              UpstreamStatus = "DRAFT"
	StatusUnconfirmed        UpstreamStatus = "UNCONFIRMED"
	StatusUnfulfilled        UpstreamStatus = "UNFULFILLED"
	StatusPartiallyFulfilled UpstreamStatus = "PARTIALLY_FULFILLED"
	StatusFulfilled          UpstreamStatus = "FULFILLED"
	StatusCanceled           UpstreamStatus = "CANCELED"
	StatusReturned           UpstreamStatus = "RETURNED"
)

// String returns the string representation of the UpstreamStatus.
func (s UpstreamStatus) String() string {
	return string(s)
}

// Money represents a monetary amount in a single currency.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// OrderLine is one line item of an order.
type OrderLine struct {
	ProductName string `json:"product_name"` // The product name as shown to the customer.
	VariantName string `json:"variant_name"` // The variant name, if any.
	Quantity    int    `json:"quantity"`     // Ordered quantity.
	UnitPrice   Money  `json:"unit_price"`   // Price per unit.
}

// Address is a delivery address. A nil address on an order means pickup.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

// String renders the address as a single routable line.
func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Street, a.City, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// Order is a snapshot of a commerce backend order. The backend owns the
// order; the pipeline treats each snapshot as immutable input.
type Order struct {
	ID                 string            `json:"id"`                   // Stable unique identifier.
	Number             string            `json:"number"`               // Human-facing order number.
	Total              Money             `json:"total"`                // Gross order total.
	Status             UpstreamStatus    `json:"status"`               // Upstream status at snapshot time.
	CreatedAt          time.Time         `json:"created_at"`           // Creation timestamp.
	CustomerName       string            `json:"customer_name"`        // Customer display name.
	CustomerEmail      string            `json:"customer_email"`       // Customer contact email.
	ShippingAddress    *Address          `json:"shipping_address"`     // Delivery address; nil means pickup.
	ShippingMethodName string            `json:"shipping_method_name"` // Shipping method label, e.g. "Local Pickup".
	Lines              []OrderLine       `json:"lines"`                // Ordered line items.
	Note               string            `json:"note"`                 // Free-text customer note.
	Metadata           map[string]string `json:"metadata"`             // Arbitrary key-value metadata.
	ChannelID          string            `json:"channel_id"`           // Restaurant channel identifier.
	ChannelSlug        string            `json:"channel_slug"`         // Restaurant channel slug.
}

// RequiresDelivery reports whether the order needs a delivery driver: it
// must carry a shipping address and its shipping method must not indicate
// self-pickup.
func (o *Order) RequiresDelivery() bool {
	if o.ShippingAddress == nil {
		return false
	}

	return !strings.Contains(strings.ToLower(o.ShippingMethodName), "pickup")
}
