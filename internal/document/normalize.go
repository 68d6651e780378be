package document

import (
	"time"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
)

// DefaultPaymentStatus is used when no payment satellite record exists.
const DefaultPaymentStatus = "pending"

// Input bundles the order row with its four optional satellite records.
// Any satellite may be nil; absence degrades to a documented default.
type Input struct {
	Order          *entity.Order
	Shipping       *entity.OrderShippingAddress
	Billing        *entity.OrderBillingAddress
	CustomerDetail *entity.OrderCustomerDetail
	Payment        *entity.OrderPaymentDetail
}

// OrderDocument is the canonical, derived order representation consumed by
// every renderer. It is built on demand and never persisted. Monetary
// values are in cents.
type OrderDocument struct {
	ID              string           `json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	CustomerName    string           `json:"customer_name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	BillingAddress  string           `json:"billing_address"`
	ShippingAddress string           `json:"shipping_address"`
	Status          enum.OrderStatus `json:"status"`
	PaymentStatus   string           `json:"payment_status"`
	Items           []LineItem       `json:"items"`
	Subtotal        int64            `json:"subtotal"`
	Total           int64            `json:"total"`
	IsCustomQuote   bool             `json:"is_custom_quote"`
}

// Normalize builds the canonical document from an order row and its
// satellites. It is a pure function: the same inputs always produce the
// same output, and no missing optional input is an error.
func Normalize(in Input) OrderDocument {
	order := in.Order

	doc := OrderDocument{
		ID:        ResolveIdentifier(derefString(order.OrderNo), order.ID.String()),
		CreatedAt: order.CreatedAt,
		Status:    order.Status,
	}

	doc.CustomerName, doc.Email, doc.Phone = resolveContact(in.CustomerDetail, order)

	doc.BillingAddress = FormatAddress(billingToAddress(in.Billing))
	doc.ShippingAddress = FormatAddress(shippingToAddress(in.Shipping))
	if doc.ShippingAddress == AddressPending {
		doc.ShippingAddress = doc.BillingAddress
	}

	doc.PaymentStatus = DefaultPaymentStatus
	if in.Payment != nil && in.Payment.Status != "" {
		doc.PaymentStatus = in.Payment.Status
	}

	doc.Items = ParseLineItems(order.Items)
	totals := SumLineItems(doc.Items)
	doc.Subtotal = totals.Subtotal
	doc.Total = totals.Total
	doc.IsCustomQuote = IsCustomQuote(order.Category, doc.Total)

	return doc
}

// resolveContact applies the per-field precedence chain: checkout contact
// satellite, then the fields embedded on the order row, then empty string.
func resolveContact(detail *entity.OrderCustomerDetail, order *entity.Order) (name, email, phone string) {
	if detail != nil {
		name = detail.Name
		email = detail.Email
		phone = detail.Phone
	}
	if name == "" {
		name = derefString(order.CustomerName)
	}
	if email == "" {
		email = derefString(order.CustomerEmail)
	}
	if phone == "" {
		phone = derefString(order.CustomerPhone)
	}
	return name, email, phone
}

func shippingToAddress(a *entity.OrderShippingAddress) *Address {
	if a == nil {
		return nil
	}
	return &Address{
		Line1:      a.Line1,
		Line2:      derefString(a.Line2),
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func billingToAddress(a *entity.OrderBillingAddress) *Address {
	if a == nil {
		return nil
	}
	return &Address{
		Line1:      a.Line1,
		Line2:      derefString(a.Line2),
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
