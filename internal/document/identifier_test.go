package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		orderNo    string
		internalID string
		want       string
	}{
		{
			name:       "prefixed order number used verbatim",
			orderNo:    "ORD-2024-0042",
			internalID: "a1b2c3d4-e5f6-7890-abcd-ef0123456789",
			want:       "ORD-2024-0042",
		},
		{
			name:       "missing order number synthesized from internal id",
			orderNo:    "",
			internalID: "a1b2c3d4-e5f6-7890-abcd-ef0123456789",
			want:       "ORD-A1B2C3D4",
		},
		{
			name:       "unprefixed order number is ignored",
			orderNo:    "42",
			internalID: "a1b2c3d4-e5f6-7890-abcd-ef0123456789",
			want:       "ORD-A1B2C3D4",
		},
		{
			name:       "short internal id is used whole",
			orderNo:    "",
			internalID: "ab12",
			want:       "ORD-AB12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIdentifier(tt.orderNo, tt.internalID))
		})
	}
}
