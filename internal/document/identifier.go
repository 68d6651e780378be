package document

import "strings"

// OrderNoPrefix is the organization's canonical order number prefix.
const OrderNoPrefix = "ORD-"

// ResolveIdentifier produces the single display identifier used on the
// invoice header, the shipping label and both scannable codes. A
// human-assigned number that already carries the canonical prefix is used
// verbatim; anything else falls back to the prefix plus the first eight
// characters of the internal id, uppercased.
func ResolveIdentifier(orderNo, internalID string) string {
	if strings.HasPrefix(orderNo, OrderNoPrefix) {
		return orderNo
	}
	short := internalID
	if len(short) > 8 {
		short = short[:8]
	}
	return OrderNoPrefix + strings.ToUpper(short)
}
