package document

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DateLayout is the long-form date used on invoices, labels and quotations.
const DateLayout = "2 January, 2006"

// MoneyFormatter renders cent amounts as locale-grouped currency strings,
// e.g. "Rs 1,04,500.00" under en-IN.
type MoneyFormatter struct {
	glyph   string
	printer *message.Printer
}

// NewMoneyFormatter builds a formatter for the given currency glyph and
// BCP 47 locale tag. An unparseable tag falls back to en-IN.
func NewMoneyFormatter(glyph, locale string) *MoneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("en-IN")
	}
	return &MoneyFormatter{
		glyph:   glyph,
		printer: message.NewPrinter(tag),
	}
}

// Format renders a cent amount with the currency glyph and grouping.
func (f *MoneyFormatter) Format(cents int64) string {
	return f.glyph + f.Amount(cents)
}

// Amount renders a cent amount with grouping but no glyph.
func (f *MoneyFormatter) Amount(cents int64) string {
	return f.printer.Sprintf("%v", number.Decimal(
		float64(cents)/100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatDate renders a timestamp in the document date style.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
