package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
	FontWide   = 0x10 // Double width only
	FontTall   = 0x01 // Double height only
)

// QR error correction levels (GS ( k fn 69)
const (
	QRCorrectionL = 48
	QRCorrectionM = 49
	QRCorrectionQ = 50
	QRCorrectionH = 51
)

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm, 48 for 80mm)
}

// NewDocument creates a new ESC/POS document with the given character width.
// Common widths: 32 for 58mm paper, 48 for 80mm paper.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the document's character width.
func (d *Document) Width() int {
	return d.width
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, FontWide, or FontTall.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte(LF)
	return d
}

// TextTruncated writes a line clipped to the document width.
func (d *Document) TextTruncated(s string) *Document {
	return d.Text(Truncate(s, d.width))
}

// TextWrapped word-wraps s to the document width, emitting at most maxLines
// lines. Overflow past the last line is clipped.
func (d *Document) TextWrapped(s string, maxLines int) *Document {
	for _, line := range Wrap(s, d.width, maxLines) {
		d.Text(line)
	}
	return d
}

// Separator prints a full-width separator line (e.g. "--------------------------------").
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "Subtotal           Rs 100.00"
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// Columns prints cells padded to the given widths on one line. The last cell
// is clipped to its width so the line never exceeds the sum of widths.
func (d *Document) Columns(widths []int, cells ...string) *Document {
	var line strings.Builder
	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		line.WriteString(Pad(cell, w))
	}
	d.buf.WriteString(strings.TrimRight(line.String(), " "))
	d.buf.WriteByte(LF)
	return d
}

// TwoColumnBlock renders two multi-line blocks side by side, each in half the
// document width with a two-space gutter.
func (d *Document) TwoColumnBlock(left, right []string) *Document {
	colWidth := (d.width - 2) / 2
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		d.buf.WriteString(Pad(l, colWidth))
		d.buf.WriteString("  ")
		d.buf.WriteString(Truncate(r, colWidth))
		d.buf.WriteByte(LF)
	}
	return d
}

// ItemLine prints a receipt item line: qty x name, then right-aligned total.
// Example: "2x Teak Side Table      4,500.00"
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	spaces := d.width - len(prefix) - len(total)
	if spaces < 1 {
		prefix = Truncate(prefix, d.width-len(total)-1)
		spaces = 1
	}
	d.buf.WriteString(prefix)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(total)
	d.buf.WriteByte(LF)
	return d
}

// Barcode prints a CODE128 barcode with the HRI text below it.
// height is in dots; a zero or negative height uses 80.
func (d *Document) Barcode(data string, height int) *Document {
	if height <= 0 {
		height = 80
	}
	// HRI below, module width 2, bar height.
	d.buf.Write([]byte{GS, 'H', 2})
	d.buf.Write([]byte{GS, 'w', 2})
	d.buf.Write([]byte{GS, 'h', byte(height)})
	// GS k 73 n: CODE128 with explicit length. The {B prefix selects code set B.
	payload := "{B" + data
	d.buf.Write([]byte{GS, 'k', 73, byte(len(payload))})
	d.buf.WriteString(payload)
	d.buf.WriteByte(LF)
	return d
}

// QRCode prints a QR code carrying data. moduleSize is the dot size of one
// module (1-16); correction is one of the QRCorrection constants.
func (d *Document) QRCode(data string, moduleSize byte, correction byte) *Document {
	if moduleSize < 1 || moduleSize > 16 {
		moduleSize = 4
	}
	// Model 2.
	d.buf.Write([]byte{GS, '(', 'k', 4, 0, 49, 65, 50, 0})
	// Module size.
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 67, moduleSize})
	// Error correction.
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 69, correction})
	// Store data.
	n := len(data) + 3
	d.buf.Write([]byte{GS, '(', 'k', byte(n & 0xFF), byte(n >> 8), 49, 80, 48})
	d.buf.WriteString(data)
	// Print.
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 81, 48})
	return d
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}

// Truncate clips s to at most width characters.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	return s[:width]
}

// Pad right-pads s with spaces to exactly width characters, clipping longer
// strings.
func Pad(s string, width int) string {
	if len(s) >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Wrap word-wraps s to the given width, returning at most maxLines lines.
// A maxLines of zero or less means unlimited. Words longer than the width are
// hard-split.
func Wrap(s string, width int, maxLines int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			for len(word) > width {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				lines = append(lines, word[:width])
				word = word[width:]
			}
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
