package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueAlignment(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("Subtotal:", "4,500.00")

	out := string(d.Bytes())
	idx := strings.Index(out, "Subtotal:")
	require.GreaterOrEqual(t, idx, 0)

	lineEnd := strings.IndexByte(out[idx:], LF)
	require.Greater(t, lineEnd, 0)
	line := out[idx : idx+lineEnd]
	assert.Len(t, line, 32)
	assert.True(t, strings.HasSuffix(line, "4,500.00"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abcde", Pad("abcdefgh", 5))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		width    int
		maxLines int
		want     []string
	}{
		{
			name:  "simple wrap",
			in:    "oak dining table with bench",
			width: 12,
			want:  []string{"oak dining", "table with", "bench"},
		},
		{
			name:  "long word hard split",
			in:    "abcdefghijklmno",
			width: 5,
			want:  []string{"abcde", "fghij", "klmno"},
		},
		{
			name:     "max lines clips",
			in:       "one two three four five six",
			width:    8,
			maxLines: 2,
			want:     []string{"one two", "three"},
		},
		{
			name:  "preserves blank lines",
			in:    "a\n\nb",
			width: 10,
			want:  []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.width, tt.maxLines))
		})
	}
}

func TestTwoColumnBlock(t *testing.T) {
	d := NewDocument(32)
	d.TwoColumnBlock(
		[]string{"BILL TO", "Asha Traders"},
		[]string{"SHIP TO", "12 Main St"},
	)

	out := string(d.Bytes())
	assert.Contains(t, out, "BILL TO")
	assert.Contains(t, out, "SHIP TO")

	// Both headers must share one physical line.
	for _, line := range strings.Split(out, string(rune(LF))) {
		if strings.Contains(line, "BILL TO") {
			assert.Contains(t, line, "SHIP TO")
		}
	}
}

func TestBarcodeEncodesPayload(t *testing.T) {
	d := NewDocument(32)
	d.Barcode("ORD-A1B2C3D4", 80)

	out := d.Bytes()
	// GS k 73 selects CODE128; the {B prefix selects code set B.
	marker := []byte{GS, 'k', 73}
	idx := bytes.Index(out, marker)
	require.GreaterOrEqual(t, idx, 0)
	payload := "{BORD-A1B2C3D4"
	assert.Equal(t, byte(len(payload)), out[idx+3])
	assert.Contains(t, string(out), payload)
}

func TestQRCodeEncodesPayload(t *testing.T) {
	d := NewDocument(32)
	d.QRCode("ORD-A1B2C3D4", 4, QRCorrectionM)

	out := d.Bytes()
	assert.Contains(t, string(out), "ORD-A1B2C3D4")
	// Store-data function header: GS ( k pL pH 49 80 48.
	n := len("ORD-A1B2C3D4") + 3
	header := []byte{GS, '(', 'k', byte(n), 0, 49, 80, 48}
	assert.True(t, bytes.Contains(out, header))
	// Print function must follow.
	assert.True(t, bytes.Contains(out, []byte{GS, '(', 'k', 3, 0, 49, 81, 48}))
}

func TestResetClearsBuffer(t *testing.T) {
	d := NewDocument(32)
	d.Text("hello")
	d.Reset()
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	assert.NoError(t, p.Print([]byte("x")))
	assert.False(t, p.IsConnected())

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	assert.Error(t, err)
}
