package document

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
)

func strPtr(s string) *string { return &s }

func testOrder() *entity.Order {
	return &entity.Order{
		ID:            uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef0123456789"),
		Category:      "catalog",
		Status:        enum.OrderStatusProcessing,
		CustomerName:  strPtr("Asha Deshmukh"),
		CustomerEmail: strPtr("asha@example.com"),
		CustomerPhone: strPtr("+91 98220 11223"),
		Items: json.RawMessage(`[
			{"id": "1", "name": "Teak Side Table", "quantity": 2, "unit_price": 4500},
			{"id": "2", "product_name": "Steel Frame", "unit_price": 1200}
		]`),
		CreatedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func testBilling(orderID uuid.UUID) *entity.OrderBillingAddress {
	return &entity.OrderBillingAddress{
		OrderID:    orderID,
		Line1:      "12 Main St",
		City:       "Pune",
		State:      "MH",
		PostalCode: "411001",
		Country:    "India",
	}
}

func testShipping(orderID uuid.UUID) *entity.OrderShippingAddress {
	return &entity.OrderShippingAddress{
		OrderID:    orderID,
		Line1:      "Warehouse 7, Phase II",
		City:       "Chakan",
		State:      "MH",
		PostalCode: "410501",
		Country:    "India",
	}
}

func TestNormalizeIdempotence(t *testing.T) {
	order := testOrder()
	in := Input{
		Order:          order,
		Billing:        testBilling(order.ID),
		Shipping:       testShipping(order.ID),
		CustomerDetail: &entity.OrderCustomerDetail{OrderID: order.ID, Name: "Asha D."},
		Payment:        &entity.OrderPaymentDetail{OrderID: order.ID, Status: "paid"},
	}

	first := Normalize(in)
	second := Normalize(in)
	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestNormalizeFallbackCompleteness(t *testing.T) {
	// Every combination of present/absent satellite records must still
	// resolve name and both addresses to a real value or a placeholder.
	order := testOrder()
	billing := testBilling(order.ID)
	shipping := testShipping(order.ID)
	detail := &entity.OrderCustomerDetail{OrderID: order.ID, Name: "Asha D.", Email: "a@d.in", Phone: "12345"}
	payment := &entity.OrderPaymentDetail{OrderID: order.ID, Status: "paid"}

	for mask := 0; mask < 16; mask++ {
		in := Input{Order: order}
		if mask&1 != 0 {
			in.Shipping = shipping
		}
		if mask&2 != 0 {
			in.Billing = billing
		}
		if mask&4 != 0 {
			in.CustomerDetail = detail
		}
		if mask&8 != 0 {
			in.Payment = payment
		}

		t.Run(fmt.Sprintf("mask_%04b", mask), func(t *testing.T) {
			doc := Normalize(in)
			assert.NotEmpty(t, doc.CustomerName)
			assert.NotEmpty(t, doc.BillingAddress)
			assert.NotEmpty(t, doc.ShippingAddress)
			assert.NotEmpty(t, doc.PaymentStatus)
		})
	}
}

func TestNormalizeContactPrecedence(t *testing.T) {
	order := testOrder()

	t.Run("satellite wins over embedded fields", func(t *testing.T) {
		doc := Normalize(Input{
			Order: order,
			CustomerDetail: &entity.OrderCustomerDetail{
				OrderID: order.ID,
				Name:    "Checkout Name",
				Email:   "checkout@example.com",
				Phone:   "+91 90000 00000",
			},
		})
		assert.Equal(t, "Checkout Name", doc.CustomerName)
		assert.Equal(t, "checkout@example.com", doc.Email)
		assert.Equal(t, "+91 90000 00000", doc.Phone)
	})

	t.Run("embedded fields fill satellite gaps", func(t *testing.T) {
		doc := Normalize(Input{
			Order:          order,
			CustomerDetail: &entity.OrderCustomerDetail{OrderID: order.ID, Name: "Checkout Name"},
		})
		assert.Equal(t, "Checkout Name", doc.CustomerName)
		assert.Equal(t, "asha@example.com", doc.Email)
	})

	t.Run("no satellite falls back to embedded fields", func(t *testing.T) {
		doc := Normalize(Input{Order: order})
		assert.Equal(t, "Asha Deshmukh", doc.CustomerName)
	})

	t.Run("nothing anywhere resolves to empty string", func(t *testing.T) {
		bare := testOrder()
		bare.CustomerName = nil
		bare.CustomerEmail = nil
		bare.CustomerPhone = nil
		doc := Normalize(Input{Order: bare})
		assert.Equal(t, "", doc.CustomerName)
		assert.Equal(t, "", doc.Email)
		assert.Equal(t, "", doc.Phone)
	})
}

func TestNormalizeShippingFallsBackToBilling(t *testing.T) {
	// Scenario: no shipping satellite row, billing present.
	order := testOrder()
	doc := Normalize(Input{Order: order, Billing: testBilling(order.ID)})

	assert.Equal(t, "12 Main St\nPune, MH 411001\nIndia", doc.BillingAddress)
	assert.Equal(t, doc.BillingAddress, doc.ShippingAddress)
}

func TestNormalizeBothAddressesMissing(t *testing.T) {
	doc := Normalize(Input{Order: testOrder()})
	assert.Equal(t, AddressPending, doc.BillingAddress)
	assert.Equal(t, AddressPending, doc.ShippingAddress)
}

func TestNormalizePaymentStatus(t *testing.T) {
	order := testOrder()

	t.Run("defaults to pending without a payment record", func(t *testing.T) {
		doc := Normalize(Input{Order: order})
		assert.Equal(t, "pending", doc.PaymentStatus)
	})

	t.Run("uses the payment record status", func(t *testing.T) {
		doc := Normalize(Input{
			Order:   order,
			Payment: &entity.OrderPaymentDetail{OrderID: order.ID, Status: "paid"},
		})
		assert.Equal(t, "paid", doc.PaymentStatus)
	})
}

func TestNormalizeIdentifier(t *testing.T) {
	t.Run("synthesized from the internal id", func(t *testing.T) {
		doc := Normalize(Input{Order: testOrder()})
		assert.Equal(t, "ORD-A1B2C3D4", doc.ID)
	})

	t.Run("human order number used verbatim", func(t *testing.T) {
		order := testOrder()
		order.OrderNo = strPtr("ORD-2024-0042")
		doc := Normalize(Input{Order: order})
		assert.Equal(t, "ORD-2024-0042", doc.ID)
	})
}

func TestNormalizeTotals(t *testing.T) {
	order := testOrder()
	doc := Normalize(Input{Order: order})

	// 2 x 4500.00 + 1 x 1200.00, in cents
	assert.Equal(t, int64(1020000), doc.Subtotal)
	assert.Equal(t, int64(1020000), doc.Total)
	assert.False(t, doc.IsCustomQuote)
}

func TestNormalizeStoredTotalsNotConsulted(t *testing.T) {
	order := testOrder()
	order.SubTotal = 99
	order.Total = 99
	doc := Normalize(Input{Order: order})
	assert.Equal(t, int64(1020000), doc.Total)
}

func TestNormalizeCustomQuote(t *testing.T) {
	t.Run("rental category", func(t *testing.T) {
		order := testOrder()
		order.Category = "rental"
		doc := Normalize(Input{Order: order})
		assert.True(t, doc.IsCustomQuote)
	})

	t.Run("contract category", func(t *testing.T) {
		order := testOrder()
		order.Category = "contract"
		doc := Normalize(Input{Order: order})
		assert.True(t, doc.IsCustomQuote)
	})

	t.Run("zero total standard order is still a custom quote", func(t *testing.T) {
		order := testOrder()
		order.Category = "standard"
		order.Items = json.RawMessage(`[{"name": "Site Survey"}]`)
		doc := Normalize(Input{Order: order})
		assert.True(t, doc.IsCustomQuote)
	})

	t.Run("priced catalog order is not", func(t *testing.T) {
		doc := Normalize(Input{Order: testOrder()})
		assert.False(t, doc.IsCustomQuote)
	})
}

func TestArithmetic(t *testing.T) {
	for _, qty := range []int{0, 1, 2, 7} {
		for _, price := range []int64{0, 100, 4599} {
			payload, err := json.Marshal([]map[string]interface{}{
				{"name": "Item", "quantity": qty, "unit_price": float64(price) / 100},
			})
			require.NoError(t, err)

			order := testOrder()
			order.Items = payload
			doc := Normalize(Input{Order: order})

			require.Len(t, doc.Items, 1)
			assert.Equal(t, price*int64(qty), doc.Items[0].LineTotal)
			assert.Equal(t, doc.Items[0].LineTotal, doc.Total)
		}
	}
}
