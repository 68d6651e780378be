package document

import (
	"strings"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/pkg/printer"
)

// Label canvas constants. The 4x6 inch label is a fixed physical canvas:
// every zone has a hard line budget and content is wrapped or truncated to
// fit, never allowed to grow the canvas.
const (
	labelWidth = 32 // characters at normal font on a 4 inch label

	senderAddressLines      = 2
	destinationNameLines    = 2
	destinationAddressLines = 4

	// ServiceLevelMarker is the static service level printed in the
	// label footer.
	ServiceLevelMarker = "STANDARD"
)

// RenderLabel builds the ESC/POS byte stream for a 4x6 shipping label.
// Four fixed zones top to bottom: sender, destination, order-id/date,
// barcode, then the footer with the service marker and a QR code. The
// barcode and QR encode the same identifier so either scan path resolves
// to the same order.
func RenderLabel(doc OrderDocument, org *entity.OrganizationSettings) []byte {
	d := printer.NewDocument(labelWidth)

	// Sender zone
	d.SetAlign(printer.AlignLeft).
		SetBold(true).
		TextTruncated("FROM: " + org.Name).
		SetBold(false).
		TextWrapped(strings.ReplaceAll(org.Address, "\n", ", "), senderAddressLines)
	if org.Phone != "" {
		d.TextTruncated("Tel: " + org.Phone)
	}
	d.Separator('=')

	// Destination zone, the visually dominant block
	d.SetBold(true).
		Text("DELIVER TO:").
		SetFontSize(printer.FontDouble)
	name := doc.CustomerName
	if name == "" {
		name = "Customer"
	}
	for _, line := range printer.Wrap(name, labelWidth/2, destinationNameLines) {
		d.Text(line)
	}
	d.SetFontSize(printer.FontTall)
	for _, line := range printer.Wrap(strings.ReplaceAll(doc.ShippingAddress, "\n", ", "), labelWidth, destinationAddressLines) {
		d.Text(line)
	}
	d.SetFontSize(printer.FontNormal).
		SetBold(false)

	// Phone is printed even when empty. Receiving crews key on the row
	// being present, so an absent number still shows the label.
	d.TextTruncated("Phone: " + doc.Phone)
	d.Separator('-')

	// Order id and date zone
	d.TwoColumnBlock(
		[]string{"ORDER", doc.ID},
		[]string{"DATE", FormatDate(doc.CreatedAt)},
	)
	d.Separator('-')

	// Barcode zone
	d.SetAlign(printer.AlignCenter).
		Barcode(doc.ID, 80).
		LineFeed()

	// Footer zone: service marker and redundant QR encoding
	d.SetBold(true).
		SetFontSize(printer.FontWide).
		Text(ServiceLevelMarker).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		QRCode(doc.ID, 4, printer.QRCorrectionM).
		FeedLines(2).
		Cut()

	return d.Bytes()
}
