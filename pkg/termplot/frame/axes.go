package frame

import (
	"github.com/ukaji3/termplot-go/pkg/termplot/canvas"
)

// Axis glyphs. Major ticks fall on every tickEvery-th row or column.
const (
	tickEvery = 5

	GlyphCross      = '+'
	GlyphVertical   = '|'
	GlyphHorizontal = '-'
	GlyphSynthetic  = '.'
	GlyphBlank      = ' '
)

// Axis describes where one coordinate axis is drawn.
type Axis struct {
	// Zero is true when the axis is the data value 0 itself. Otherwise the
	// axis sits on the data boundary nearest to 0.
	Zero bool
	// Anchor is the data value the axis is drawn at.
	Anchor float64
	// Index is the column (vertical axis) or row (horizontal axis).
	Index int
}

// Axes returns the placement of the vertical (x = anchor) and horizontal
// (y = anchor) axes.
func (f *Frame) Axes() (vertical, horizontal Axis) {
	vertical = axisFor(f.b.MinX, f.b.MaxX)
	horizontal = axisFor(f.b.MinY, f.b.MaxY)

	_, vertical.Index = f.PointToCell(vertical.Anchor, 0)
	horizontal.Index, _ = f.PointToCell(0, horizontal.Anchor)
	return vertical, horizontal
}

// axisFor places an axis at 0 when 0 is within [lo, hi], else at the bound
// closest to 0.
func axisFor(lo, hi float64) Axis {
	if lo <= 0 && hi >= 0 {
		return Axis{Zero: true}
	}
	if lo > 0 {
		return Axis{Anchor: lo}
	}
	return Axis{Anchor: hi}
}

// glyph returns the character for position i along an axis.
func (a Axis) glyph(i int, line byte) byte {
	major := i%tickEvery == 0
	switch {
	case a.Zero && major:
		return GlyphCross
	case a.Zero:
		return line
	case major:
		return GlyphSynthetic
	default:
		return GlyphBlank
	}
}

// DrawInto draws both axes onto c and marks their intersection with '+'.
// A target cell outside c is reported as an *AxisError.
func (f *Frame) DrawInto(c *canvas.Canvas) error {
	vertical, horizontal := f.Axes()

	for row := 0; row < f.height; row++ {
		if !c.Set(row, vertical.Index, vertical.glyph(row, GlyphVertical)) {
			return &AxisError{Axis: "vertical", Row: row, Column: vertical.Index, Anchor: vertical.Anchor}
		}
	}
	for col := 0; col < f.width; col++ {
		if !c.Set(horizontal.Index, col, horizontal.glyph(col, GlyphHorizontal)) {
			return &AxisError{Axis: "horizontal", Row: horizontal.Index, Column: col, Anchor: horizontal.Anchor}
		}
	}

	c.Set(horizontal.Index, vertical.Index, GlyphCross)
	return nil
}
