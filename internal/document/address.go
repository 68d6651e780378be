package document

import "strings"

// AddressPending is rendered wherever an address is wholly missing. Labels
// and invoices must never show an empty address block.
const AddressPending = "Address pending"

// Address is the shape shared by the shipping and billing satellites.
type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// FormatAddress joins the non-empty components of an address into a
// multi-line block in fixed order: line1, line2, "city, state postalCode",
// country. A nil or fully-empty address yields AddressPending. Absence is
// data here, not an error.
func FormatAddress(a *Address) string {
	if a == nil {
		return AddressPending
	}

	var lines []string
	if a.Line1 != "" {
		lines = append(lines, a.Line1)
	}
	if a.Line2 != "" {
		lines = append(lines, a.Line2)
	}

	locality := a.City
	tail := strings.TrimSpace(a.State + " " + a.PostalCode)
	if tail != "" {
		if locality != "" {
			locality += ", " + tail
		} else {
			locality = tail
		}
	}
	if locality != "" {
		lines = append(lines, locality)
	}
	if a.Country != "" {
		lines = append(lines, a.Country)
	}

	if len(lines) == 0 {
		return AddressPending
	}
	return strings.Join(lines, "\n")
}
