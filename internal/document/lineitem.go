package document

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is a normalized order line. Monetary values are in cents.
type LineItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	UnitPrice         int64  `json:"unit_price"`
	LineTotal         int64  `json:"line_total"`
	CustomizationNote string `json:"customization_note,omitempty"`
}

// rawLineItem mirrors the loosely-typed storage payload. Historical records
// keep the display name under either "name" or "product_name", and omit
// quantity and price fields freely.
type rawLineItem struct {
	ID                json.RawMessage `json:"id"`
	Name              *string         `json:"name"`
	ProductName       *string         `json:"product_name"`
	Quantity          *json.Number    `json:"quantity"`
	UnitPrice         *json.Number    `json:"unit_price"`
	LineTotal         *json.Number    `json:"line_total"`
	CustomizationNote *string         `json:"customization_note"`
}

// ParseLineItems decodes the stored line-item payload into normalized items.
// Missing quantity defaults to 1, missing unit price to 0, and a missing
// line total is computed as unitPrice * quantity. A payload that cannot be
// decoded yields no items rather than an error.
func ParseLineItems(payload json.RawMessage) []LineItem {
	if len(payload) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var raw []rawLineItem
	if err := dec.Decode(&raw); err != nil {
		return nil
	}

	items := make([]LineItem, 0, len(raw))
	for _, r := range raw {
		item := LineItem{
			ID:       rawID(r.ID),
			Name:     itemName(r),
			Quantity: 1,
		}
		if r.Quantity != nil {
			if q, err := r.Quantity.Int64(); err == nil {
				item.Quantity = int(q)
			}
		}
		item.UnitPrice = toCents(r.UnitPrice)
		if r.LineTotal != nil {
			item.LineTotal = toCents(r.LineTotal)
		} else {
			item.LineTotal = item.UnitPrice * int64(item.Quantity)
		}
		if r.CustomizationNote != nil {
			item.CustomizationNote = *r.CustomizationNote
		}
		items = append(items, item)
	}
	return items
}

// itemName reads the display name from whichever legacy key is present.
func itemName(r rawLineItem) string {
	if r.Name != nil && *r.Name != "" {
		return *r.Name
	}
	if r.ProductName != nil {
		return *r.ProductName
	}
	return ""
}

// rawID accepts either a string or numeric id from legacy payloads.
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

// toCents converts a stored decimal amount to integer cents.
func toCents(n *json.Number) int64 {
	if n == nil {
		return 0
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
