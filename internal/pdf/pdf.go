// Package pdf builds the printable PDF artifacts: order invoices, 4x6
// shipping labels and rental quotations. Every artifact consumes the
// already-normalized document models, never raw storage rows.
package pdf

import (
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kipkoechd/fabworks-api/internal/document"
	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
)

// Label dimensions in millimeters: a 4x6 inch shipping label.
const (
	labelWidthMM  = 101.6
	labelHeightMM = 152.4
)

// Invoice renders an order invoice as an A4 PDF.
func Invoice(doc document.OrderDocument, org *entity.OrganizationSettings) ([]byte, error) {
	money := document.NewMoneyFormatter(org.CurrencyGlyph, org.Locale)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)

	addOrgHeader(m, org)

	m.AddRow(10, text.NewCol(12, "INVOICE", props.Text{
		Size: 14, Style: fontstyle.Bold, Align: align.Center, Top: 2,
	}))

	m.AddRow(6,
		text.NewCol(6, "Invoice No: "+doc.ID, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(6, "Date: "+document.FormatDate(doc.CreatedAt), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(6,
		text.NewCol(6, "Status: "+doc.Status.String(), props.Text{Size: 9}),
		text.NewCol(6, "Payment: "+doc.PaymentStatus, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(4, line.NewCol(12))

	m.AddRow(5,
		text.NewCol(6, "BILL TO", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(6, "SHIP TO", props.Text{Size: 9, Style: fontstyle.Bold}),
	)
	billing := strings.Split(doc.BillingAddress, "\n")
	shipping := strings.Split(doc.ShippingAddress, "\n")
	rows := len(billing)
	if len(shipping) > rows {
		rows = len(shipping)
	}
	for i := 0; i < rows; i++ {
		var b, s string
		if i < len(billing) {
			b = billing[i]
		}
		if i < len(shipping) {
			s = shipping[i]
		}
		m.AddRow(4,
			text.NewCol(6, b, props.Text{Size: 9}),
			text.NewCol(6, s, props.Text{Size: 9}),
		)
	}
	m.AddRow(5, text.NewCol(12, "Customer: "+doc.CustomerName, props.Text{Size: 9, Top: 1}))
	m.AddRow(4, line.NewCol(12))

	if doc.IsCustomQuote {
		for _, item := range doc.Items {
			m.AddRow(5, text.NewCol(12, itemQtyLabel(item), props.Text{Size: 9}))
			if item.CustomizationNote != "" {
				m.AddRow(4, text.NewCol(12, "   "+item.CustomizationNote, props.Text{Size: 8, Style: fontstyle.Italic}))
			}
		}
		m.AddRow(12, text.NewCol(12, document.ContractPricingNotice, props.Text{
			Size: 11, Style: fontstyle.Bold, Align: align.Center, Top: 4,
		}))
	} else {
		m.AddRow(6,
			text.NewCol(7, "Item", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.NewCol(1, "Qty", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "Unit Price", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "Amount", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		)
		for _, item := range doc.Items {
			m.AddRow(5,
				text.NewCol(7, item.Name, props.Text{Size: 9}),
				text.NewCol(1, strconv.Itoa(item.Quantity), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, money.Amount(item.UnitPrice), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, money.Amount(item.LineTotal), props.Text{Size: 9, Align: align.Right}),
			)
			if item.CustomizationNote != "" {
				m.AddRow(4, text.NewCol(12, "   "+item.CustomizationNote, props.Text{Size: 8, Style: fontstyle.Italic}))
			}
		}
		m.AddRow(4, line.NewCol(12))
		m.AddRow(5,
			text.NewCol(10, "Subtotal", props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money.Format(doc.Subtotal), props.Text{Size: 9, Align: align.Right}),
		)
		m.AddRow(6,
			text.NewCol(10, "TOTAL", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, money.Format(doc.Total), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		)
	}

	m.AddRow(10, text.NewCol(12, "Thank you for your business!", props.Text{
		Size: 9, Align: align.Center, Top: 5,
	}))

	return generate(m)
}

// Label renders a 4x6 shipping label PDF. The page itself is the fixed
// canvas, so overflow is impossible by construction; long values are
// clipped by their rows.
func Label(doc document.OrderDocument, org *entity.OrganizationSettings) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(labelWidthMM, labelHeightMM).
		WithLeftMargin(6).
		WithRightMargin(6).
		WithTopMargin(6).
		Build()
	m := maroto.New(cfg)

	// Sender zone
	m.AddRow(5, text.NewCol(12, "FROM: "+org.Name, props.Text{Size: 8, Style: fontstyle.Bold}))
	m.AddRow(7, text.NewCol(12, strings.ReplaceAll(org.Address, "\n", ", "), props.Text{Size: 7}))
	m.AddRow(3, line.NewCol(12))

	// Destination zone, largest type on the label
	m.AddRow(5, text.NewCol(12, "DELIVER TO:", props.Text{Size: 8, Style: fontstyle.Bold}))
	m.AddRow(9, text.NewCol(12, doc.CustomerName, props.Text{Size: 16, Style: fontstyle.Bold}))
	m.AddRow(16, text.NewCol(12, strings.ReplaceAll(doc.ShippingAddress, "\n", ", "), props.Text{Size: 11}))
	// Phone renders even when empty.
	m.AddRow(6, text.NewCol(12, "Phone: "+doc.Phone, props.Text{Size: 9}))
	m.AddRow(3, line.NewCol(12))

	// Order id and date zone
	m.AddRow(6,
		text.NewCol(6, "ORDER: "+doc.ID, props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(6, document.FormatDate(doc.CreatedAt), props.Text{Size: 9, Align: align.Right}),
	)

	// Barcode zone
	m.AddRow(18, code.NewBarCol(12, doc.ID, props.Barcode{
		Center: true, Percent: 90,
	}))

	// Footer zone: service marker plus the redundant QR encoding
	m.AddRow(10,
		text.NewCol(7, document.ServiceLevelMarker, props.Text{
			Size: 18, Style: fontstyle.Bold, Top: 4,
		}),
		code.NewQrCol(5, doc.ID, props.Rect{Center: true, Percent: 90}),
	)

	return generate(m)
}

// Quotation renders a rental quotation as an A4 PDF. The four monetary
// fields come straight from storage.
func Quotation(doc document.QuotationDocument, org *entity.OrganizationSettings) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)

	addOrgHeader(m, org)

	m.AddRow(10, text.NewCol(12, "RENTAL QUOTATION", props.Text{
		Size: 14, Style: fontstyle.Bold, Align: align.Center, Top: 2,
	}))

	m.AddRow(6,
		text.NewCol(6, "Quotation No: "+doc.Ref, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(6, "Date: "+document.FormatDate(doc.Date), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(6, text.NewCol(12, "Valid Until: "+doc.ValidUntil, props.Text{Size: 9}))
	m.AddRow(4, line.NewCol(12))

	m.AddRow(5, text.NewCol(12, "Customer: "+doc.CustomerName, props.Text{Size: 10}))
	if doc.CompanyName != "" {
		m.AddRow(5, text.NewCol(12, "Company: "+doc.CompanyName, props.Text{Size: 9}))
	}
	if doc.GSTIN != "" {
		m.AddRow(5, text.NewCol(12, "GSTIN: "+doc.GSTIN, props.Text{Size: 9}))
	}
	m.AddRow(5, text.NewCol(12, "Delivery: "+strings.ReplaceAll(doc.DeliveryAddress, "\n", ", "), props.Text{Size: 9}))
	m.AddRow(4, line.NewCol(12))

	m.AddRow(8, text.NewCol(12, doc.ProductDescription, props.Text{Size: 10}))
	m.AddRow(5,
		text.NewCol(6, "Quantity: "+strconv.Itoa(doc.Quantity), props.Text{Size: 9}),
		text.NewCol(6, "Rental Term: "+strconv.Itoa(doc.RentalTermMonths)+" months", props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(4, line.NewCol(12))

	quoteMoneyRow(m, "Monthly Rental", org.CurrencyGlyph+doc.MonthlyRental.StringFixed(2), false)
	quoteMoneyRow(m, "Setup Fee", org.CurrencyGlyph+doc.SetupFee.StringFixed(2), false)
	quoteMoneyRow(m, "Deposit", org.CurrencyGlyph+doc.DepositAmount.StringFixed(2), false)
	quoteMoneyRow(m, "TOTAL", org.CurrencyGlyph+doc.TotalAmount.StringFixed(2), true)

	if doc.Terms != "" {
		m.AddRow(4, line.NewCol(12))
		m.AddRow(12, text.NewCol(12, doc.Terms, props.Text{Size: 8}))
	}

	return generate(m)
}

func quoteMoneyRow(m core.Maroto, label, value string, bold bool) {
	style := fontstyle.Normal
	size := 9.0
	if bold {
		style = fontstyle.Bold
		size = 11
	}
	m.AddRow(6,
		text.NewCol(8, label, props.Text{Size: size, Style: style, Align: align.Right}),
		text.NewCol(4, value, props.Text{Size: size, Style: style, Align: align.Right}),
	)
}

func addOrgHeader(m core.Maroto, org *entity.OrganizationSettings) {
	m.AddRow(8, text.NewCol(12, org.Name, props.Text{
		Size: 16, Style: fontstyle.Bold, Align: align.Center,
	}))
	m.AddRow(8, text.NewCol(12, strings.ReplaceAll(org.Address, "\n", ", "), props.Text{
		Size: 8, Align: align.Center,
	}))
	contact := org.Phone
	if org.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += org.Email
	}
	if contact != "" {
		m.AddRow(5, text.NewCol(12, contact, props.Text{Size: 8, Align: align.Center}))
	}
	if org.GSTIN != "" {
		m.AddRow(5, text.NewCol(12, "GSTIN: "+org.GSTIN, props.Text{Size: 8, Align: align.Center}))
	}
	m.AddRow(3, line.NewCol(12))
}

func itemQtyLabel(item document.LineItem) string {
	if item.Quantity > 1 {
		return item.Name + "  x" + strconv.Itoa(item.Quantity)
	}
	return item.Name
}

func generate(m core.Maroto) ([]byte, error) {
	d, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return d.GetBytes(), nil
}
