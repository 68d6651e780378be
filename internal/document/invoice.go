package document

import (
	"strconv"
	"strings"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/pkg/printer"
)

// invoiceWidth is the character width of an 80mm thermal invoice.
const invoiceWidth = 48

// RenderInvoice builds the ESC/POS byte stream for an order invoice.
// Custom-quote orders suppress every numeric price column and carry the
// contract pricing notice instead.
func RenderInvoice(doc OrderDocument, org *entity.OrganizationSettings) []byte {
	d := printer.NewDocument(invoiceWidth)
	money := NewMoneyFormatter(org.CurrencyGlyph, org.Locale)

	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(org.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	for _, line := range strings.Split(org.Address, "\n") {
		d.TextTruncated(line)
	}
	if org.Phone != "" {
		d.TextTruncated("Tel: " + org.Phone)
	}
	if org.Email != "" {
		d.TextTruncated(org.Email)
	}
	if org.GSTIN != "" {
		d.TextTruncated("GSTIN: " + org.GSTIN)
	}

	d.Separator('=').
		SetBold(true).
		Text("INVOICE").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		LineFeed().
		KeyValue("Invoice No", doc.ID).
		KeyValue("Date", FormatDate(doc.CreatedAt)).
		KeyValue("Status", doc.Status.String()).
		KeyValue("Payment", doc.PaymentStatus).
		Separator('-')

	d.TwoColumnBlock(
		append([]string{"BILL TO:"}, strings.Split(doc.BillingAddress, "\n")...),
		append([]string{"SHIP TO:"}, strings.Split(doc.ShippingAddress, "\n")...),
	)
	d.KeyValue("Customer", doc.CustomerName)
	if doc.Phone != "" {
		d.KeyValue("Phone", doc.Phone)
	}
	if doc.Email != "" {
		d.KeyValue("Email", doc.Email)
	}
	d.Separator('-')

	if doc.IsCustomQuote {
		for _, item := range doc.Items {
			d.TextTruncated(itemLabel(item))
			if item.CustomizationNote != "" {
				d.TextWrapped("  * "+item.CustomizationNote, 2)
			}
		}
		d.LineFeed().
			SetAlign(printer.AlignCenter).
			SetBold(true).
			TextWrapped(ContractPricingNotice, 2).
			SetBold(false).
			SetAlign(printer.AlignLeft)
	} else {
		for _, item := range doc.Items {
			d.ItemLine(item.Quantity, item.Name, money.Format(item.LineTotal))
			if item.CustomizationNote != "" {
				d.TextWrapped("  * "+item.CustomizationNote, 2)
			}
		}
		d.Separator('-').
			KeyValue("Subtotal", money.Format(doc.Subtotal)).
			SetBold(true).
			KeyValue("TOTAL", money.Format(doc.Total)).
			SetBold(false)
	}

	d.Separator('=').
		SetAlign(printer.AlignCenter).
		Text("Thank you for your business!").
		TextTruncated(org.Name).
		FeedLines(3).
		Cut()

	return d.Bytes()
}

func itemLabel(item LineItem) string {
	if item.Quantity > 1 {
		return printer.Truncate(item.Name, invoiceWidth-6) + "  x" + strconv.Itoa(item.Quantity)
	}
	return item.Name
}
