package document

import "strings"

// ContractPricingNotice replaces all numeric price content on documents for
// custom-quote orders.
const ContractPricingNotice = "Pricing determined by contract terms"

// Totals holds the arithmetic sums over normalized line items, in cents.
// No tax or discount lines are wired in; the order row's discount field is
// reserved.
type Totals struct {
	Subtotal int64
	Total    int64
}

// SumLineItems computes subtotal and total as the sum of line totals.
// Stored totals on the order row are not consulted.
func SumLineItems(items []LineItem) Totals {
	var sum int64
	for _, item := range items {
		sum += item.LineTotal
	}
	return Totals{Subtotal: sum, Total: sum}
}

// IsCustomQuote reports whether an order is a non-catalog arrangement:
// either its category marks a rental/contract deal, or its computed total
// is exactly zero. A zero-total catalog order is therefore treated as a
// custom quote as well.
func IsCustomQuote(category string, total int64) bool {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "rental", "contract":
		return true
	}
	return total == 0
}
