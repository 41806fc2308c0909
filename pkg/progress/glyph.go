package progress

import (
	"math"
	"strings"

	"github.com/github/gh-progress/pkg/stringutil"
)

// glyphs are the characters a bar is drawn with.
type glyphs struct {
	complete   string
	incomplete string
	head       string
}

// lastColumnReserver is implemented by streams whose terminal moves the
// cursor to the next row when the last column is written, as the Windows
// console does. One column is left free on such streams.
type lastColumnReserver interface {
	ReservesLastColumn() bool
}

// glyph sizes the bar for a line whose other content is rest.
func (b *Bar) glyph(rest string, ratio float64) string {
	available := max(0, b.stream.Columns()-stringutil.DisplayWidth(rest))
	if r, ok := b.stream.(lastColumnReserver); ok && r.ReservesLastColumn() {
		available = max(0, available-1)
	}
	return buildGlyph(min(b.width, available), ratio, b.chars)
}

// buildGlyph returns width glyphs, round(width*ratio) of them complete with
// the last complete glyph replaced by the head.
func buildGlyph(width int, ratio float64, chars glyphs) string {
	if width <= 0 {
		return ""
	}
	completeLength := int(math.Round(float64(width) * ratio))

	var sb strings.Builder
	if completeLength > 0 {
		sb.WriteString(strings.Repeat(chars.complete, completeLength-1))
		sb.WriteString(chars.head)
	}
	sb.WriteString(strings.Repeat(chars.incomplete, width-completeLength))
	return sb.String()
}
