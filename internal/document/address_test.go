package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name string
		addr *Address
		want string
	}{
		{
			name: "nil address yields placeholder",
			addr: nil,
			want: "Address pending",
		},
		{
			name: "all fields",
			addr: &Address{
				Line1:      "12 Main St",
				Line2:      "Behind City Mall",
				City:       "Pune",
				State:      "MH",
				PostalCode: "411001",
				Country:    "India",
			},
			want: "12 Main St\nBehind City Mall\nPune, MH 411001\nIndia",
		},
		{
			name: "no second line",
			addr: &Address{
				Line1:      "12 Main St",
				City:       "Pune",
				State:      "MH",
				PostalCode: "411001",
				Country:    "India",
			},
			want: "12 Main St\nPune, MH 411001\nIndia",
		},
		{
			name: "city only",
			addr: &Address{Line1: "12 Main St", City: "Pune"},
			want: "12 Main St\nPune",
		},
		{
			name: "state and postal code without city",
			addr: &Address{Line1: "12 Main St", State: "MH", PostalCode: "411001"},
			want: "12 Main St\nMH 411001",
		},
		{
			name: "postal code only in locality line",
			addr: &Address{Line1: "12 Main St", PostalCode: "411001"},
			want: "12 Main St\n411001",
		},
		{
			name: "empty record yields placeholder",
			addr: &Address{},
			want: "Address pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAddress(tt.addr))
		})
	}
}
