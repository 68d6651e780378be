package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/pkg/printer"
)

// DefaultValidity is shown when a quotation has no explicit expiry date.
const DefaultValidity = "30 Days from Date"

// QuotationDocument is the flat render model for a rental quotation. The
// four monetary fields are carried over from storage exactly; nothing is
// recomputed.
type QuotationDocument struct {
	Ref                string          `json:"ref"`
	Date               time.Time       `json:"date"`
	Status             string          `json:"status"`
	CustomerName       string          `json:"customer_name"`
	CompanyName        string          `json:"company_name"`
	GSTIN              string          `json:"gstin"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	DeliveryAddress    string          `json:"delivery_address"`
	ProductDescription string          `json:"product_description"`
	RentalTermMonths   int             `json:"rental_term_months"`
	Quantity           int             `json:"quantity"`
	Terms              string          `json:"terms"`
	MonthlyRental      decimal.Decimal `json:"monthly_rental"`
	SetupFee           decimal.Decimal `json:"setup_fee"`
	DepositAmount      decimal.Decimal `json:"deposit_amount"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	ValidUntil         string          `json:"valid_until"`
}

// BuildQuotation maps a quotation record near 1:1 into its render model.
// There is no normalization stage; only the validity falls back to a
// default when the record has no expiry date.
func BuildQuotation(q *entity.RentalQuotation) QuotationDocument {
	doc := QuotationDocument{
		Ref:                q.QuotationRef,
		Date:               q.CreatedAt,
		Status:             q.Status.String(),
		CustomerName:       q.CustomerName,
		CompanyName:        derefString(q.CompanyName),
		GSTIN:              derefString(q.GSTIN),
		Email:              derefString(q.Email),
		Phone:              derefString(q.Phone),
		ProductDescription: q.ProductDescription,
		RentalTermMonths:   q.RentalTermMonths,
		Quantity:           q.Quantity,
		Terms:              derefString(q.Terms),
		MonthlyRental:      q.MonthlyRental,
		SetupFee:           q.SetupFee,
		DepositAmount:      q.DepositAmount,
		TotalAmount:        q.TotalAmount,
		ValidUntil:         DefaultValidity,
	}

	doc.DeliveryAddress = FormatAddress(&Address{
		Line1:      derefString(q.DeliveryLine1),
		Line2:      derefString(q.DeliveryLine2),
		City:       derefString(q.DeliveryCity),
		State:      derefString(q.DeliveryState),
		PostalCode: derefString(q.DeliveryPostalCode),
	})

	if q.ValidUntil != nil {
		doc.ValidUntil = FormatDate(*q.ValidUntil)
	}

	return doc
}

// RenderQuotation builds the ESC/POS byte stream for a rental quotation.
func RenderQuotation(doc QuotationDocument, org *entity.OrganizationSettings) []byte {
	d := printer.NewDocument(invoiceWidth)

	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(org.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	for _, line := range strings.Split(org.Address, "\n") {
		d.TextTruncated(line)
	}
	if org.GSTIN != "" {
		d.TextTruncated("GSTIN: " + org.GSTIN)
	}

	d.Separator('=').
		SetBold(true).
		Text("RENTAL QUOTATION").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		LineFeed().
		KeyValue("Quotation No", doc.Ref).
		KeyValue("Date", FormatDate(doc.Date)).
		KeyValue("Valid Until", doc.ValidUntil).
		Separator('-')

	d.KeyValue("Customer", doc.CustomerName)
	if doc.CompanyName != "" {
		d.KeyValue("Company", doc.CompanyName)
	}
	if doc.GSTIN != "" {
		d.KeyValue("GSTIN", doc.GSTIN)
	}
	if doc.Phone != "" {
		d.KeyValue("Phone", doc.Phone)
	}
	if doc.Email != "" {
		d.KeyValue("Email", doc.Email)
	}
	d.Text("Delivery:")
	for _, line := range strings.Split(doc.DeliveryAddress, "\n") {
		d.TextTruncated("  " + line)
	}
	d.Separator('-')

	d.TextWrapped(doc.ProductDescription, 4).
		KeyValue("Quantity", strconv.Itoa(doc.Quantity)).
		KeyValue("Rental Term", strconv.Itoa(doc.RentalTermMonths)+" months").
		Separator('-').
		KeyValue("Monthly Rental", moneyString(org, doc.MonthlyRental)).
		KeyValue("Setup Fee", moneyString(org, doc.SetupFee)).
		KeyValue("Deposit", moneyString(org, doc.DepositAmount)).
		SetBold(true).
		KeyValue("TOTAL", moneyString(org, doc.TotalAmount)).
		SetBold(false)

	if doc.Terms != "" {
		d.Separator('-').
			TextWrapped(doc.Terms, 6)
	}

	d.Separator('=').
		SetAlign(printer.AlignCenter).
		Text("We look forward to working with you.").
		FeedLines(3).
		Cut()

	return d.Bytes()
}

// moneyString renders a stored decimal amount with the organization glyph.
// Grouping follows the organization locale.
func moneyString(org *entity.OrganizationSettings, amount decimal.Decimal) string {
	f := NewMoneyFormatter(org.CurrencyGlyph, org.Locale)
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return f.Format(cents)
}
