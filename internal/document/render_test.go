package document

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
)

func testOrg() *entity.OrganizationSettings {
	return &entity.OrganizationSettings{
		Name:          "Fabworks Furniture & Fabrication",
		Address:       "Plot 14, MIDC Industrial Area\nPune, MH 411026",
		Email:         "orders@fabworks.example",
		Phone:         "+91 20 2712 0000",
		GSTIN:         "27AAACF0000A1Z5",
		Currency:      "INR",
		CurrencyGlyph: "Rs ",
		Locale:        "en-IN",
	}
}

func testDoc() OrderDocument {
	order := testOrder()
	return Normalize(Input{
		Order:    order,
		Billing:  testBilling(order.ID),
		Shipping: testShipping(order.ID),
	})
}

func TestRenderInvoice(t *testing.T) {
	org := testOrg()

	t.Run("carries the resolved identifier", func(t *testing.T) {
		out := RenderInvoice(testDoc(), org)
		assert.True(t, bytes.Contains(out, []byte("ORD-A1B2C3D4")))
	})

	t.Run("priced order shows totals", func(t *testing.T) {
		out := RenderInvoice(testDoc(), org)
		assert.True(t, bytes.Contains(out, []byte("Subtotal")))
		assert.True(t, bytes.Contains(out, []byte("TOTAL")))
		assert.True(t, bytes.Contains(out, []byte("Rs ")))
		assert.False(t, bytes.Contains(out, []byte(ContractPricingNotice)))
	})

	t.Run("custom quote suppresses all price content", func(t *testing.T) {
		order := testOrder()
		order.Category = "rental"
		doc := Normalize(Input{Order: order})

		out := RenderInvoice(doc, org)
		assert.True(t, bytes.Contains(out, []byte(ContractPricingNotice)))
		assert.False(t, bytes.Contains(out, []byte("Subtotal")))
		assert.False(t, bytes.Contains(out, []byte("TOTAL")))
		assert.False(t, bytes.Contains(out, []byte("Rs ")))
	})

	t.Run("address fallback reaches the invoice", func(t *testing.T) {
		out := RenderInvoice(Normalize(Input{Order: testOrder()}), org)
		assert.True(t, bytes.Contains(out, []byte("Address pending")))
	})
}

func TestRenderLabel(t *testing.T) {
	org := testOrg()

	t.Run("barcode and QR encode the invoice identifier", func(t *testing.T) {
		doc := testDoc()
		out := RenderLabel(doc, org)

		// CODE128 payload carries the code-set selector before the data.
		assert.True(t, bytes.Contains(out, []byte("{B"+doc.ID)))
		// The identifier appears exactly three times: the printed order
		// row, the barcode payload and the QR store-data payload.
		assert.Equal(t, 3, bytes.Count(out, []byte(doc.ID)))
	})

	t.Run("service level marker is present", func(t *testing.T) {
		out := RenderLabel(testDoc(), org)
		assert.True(t, bytes.Contains(out, []byte("STANDARD")))
	})

	t.Run("phone row renders even when empty", func(t *testing.T) {
		order := testOrder()
		order.CustomerPhone = nil
		doc := Normalize(Input{Order: order})

		out := RenderLabel(doc, org)
		assert.True(t, bytes.Contains(out, []byte("Phone: ")))
	})

	t.Run("destination never renders empty", func(t *testing.T) {
		out := RenderLabel(Normalize(Input{Order: testOrder()}), org)
		assert.True(t, bytes.Contains(out, []byte("Address pending")))
	})

	t.Run("label never carries price content", func(t *testing.T) {
		out := RenderLabel(testDoc(), org)
		assert.False(t, bytes.Contains(out, []byte("Rs ")))
	})
}

func TestBuildQuotation(t *testing.T) {
	q := &entity.RentalQuotation{
		QuotationRef:       "QTN-7F3A21BC",
		CustomerName:       "Meera Kulkarni",
		CompanyName:        strPtr("Kulkarni Interiors"),
		DeliveryLine1:      strPtr("Shop 4, FC Road"),
		DeliveryCity:       strPtr("Pune"),
		DeliveryState:      strPtr("MH"),
		DeliveryPostalCode: strPtr("411004"),
		ProductDescription: "Modular workstation set, 12 seats",
		RentalTermMonths:   12,
		Quantity:           12,
		MonthlyRental:      decimal.RequireFromString("18500.00"),
		SetupFee:           decimal.RequireFromString("5000.00"),
		DepositAmount:      decimal.RequireFromString("37000.00"),
		TotalAmount:        decimal.RequireFromString("42000.00"),
		CreatedAt:          time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("maps fields without recomputing money", func(t *testing.T) {
		doc := BuildQuotation(q)
		assert.Equal(t, "QTN-7F3A21BC", doc.Ref)
		assert.Equal(t, "Shop 4, FC Road\nPune, MH 411004", doc.DeliveryAddress)
		assert.True(t, doc.MonthlyRental.Equal(decimal.RequireFromString("18500.00")))
		assert.True(t, doc.TotalAmount.Equal(decimal.RequireFromString("42000.00")))
	})

	t.Run("missing expiry falls back to the default validity", func(t *testing.T) {
		doc := BuildQuotation(q)
		assert.Equal(t, "30 Days from Date", doc.ValidUntil)
	})

	t.Run("explicit expiry is formatted", func(t *testing.T) {
		until := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		withExpiry := *q
		withExpiry.ValidUntil = &until
		doc := BuildQuotation(&withExpiry)
		assert.Equal(t, "3 March, 2026", doc.ValidUntil)
	})
}

func TestRenderQuotation(t *testing.T) {
	q := &entity.RentalQuotation{
		QuotationRef:       "QTN-7F3A21BC",
		CustomerName:       "Meera Kulkarni",
		ProductDescription: "Modular workstation set",
		RentalTermMonths:   12,
		Quantity:           12,
		MonthlyRental:      decimal.RequireFromString("18500.00"),
		TotalAmount:        decimal.RequireFromString("42000.00"),
		CreatedAt:          time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}

	out := RenderQuotation(BuildQuotation(q), testOrg())
	assert.True(t, bytes.Contains(out, []byte("RENTAL QUOTATION")))
	assert.True(t, bytes.Contains(out, []byte("QTN-7F3A21BC")))
	assert.True(t, bytes.Contains(out, []byte("30 Days from Date")))
}
