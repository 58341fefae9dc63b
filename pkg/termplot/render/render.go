// Package render fills a canvas with data markers once the axes are drawn.
//
// Dot mode marks presence only. Count mode accumulates the number of points
// per cell and picks a glyph from a DensityScale. Both write over whatever
// is already in the cell, so markers take precedence over axis ticks.
package render

import (
	"github.com/ukaji3/termplot-go/pkg/termplot/canvas"
	"github.com/ukaji3/termplot-go/pkg/termplot/frame"
	"github.com/ukaji3/termplot-go/pkg/termplot/models"
)

// DotGlyph marks a cell holding at least one point in dot mode.
const DotGlyph = '*'

// Stats summarizes one rendering pass.
type Stats struct {
	// Plotted counts points written to the canvas.
	Plotted int
	// Skipped counts points with a non-finite coordinate.
	Skipped int
	// Dropped counts finite points that mapped outside the canvas.
	Dropped int
	// Cells counts distinct cells holding a marker.
	Cells int
}

// Renderer plots the points of a dataset onto a canvas through a frame.
type Renderer interface {
	Render(f *frame.Frame, c *canvas.Canvas, ds models.Dataset) Stats
}

// DotRenderer implements dot mode.
type DotRenderer struct {
	// Glyph overrides DotGlyph when non-zero.
	Glyph byte
}

// CountRenderer implements count mode.
type CountRenderer struct {
	// Scale maps counts to glyphs. A nil scale uses DefaultDensityScale.
	Scale DensityScale
}

// Render marks every cell that at least one point maps to.
func (r DotRenderer) Render(f *frame.Frame, c *canvas.Canvas, ds models.Dataset) Stats {
	glyph := r.Glyph
	if glyph == 0 {
		glyph = DotGlyph
	}

	var st Stats
	marked := make(map[int]struct{})
	forEachCell(f, c, ds, &st, func(row, col int) {
		c.Set(row, col, glyph)
		marked[row*c.Width()+col] = struct{}{}
	})
	st.Cells = len(marked)
	return st
}

// Render counts the points per cell and then writes one glyph per non-empty
// cell.
func (r CountRenderer) Render(f *frame.Frame, c *canvas.Canvas, ds models.Dataset) Stats {
	scale := r.Scale
	if scale == nil {
		scale = DefaultDensityScale()
	}

	var st Stats
	counts := make([]int, c.Width()*c.Height())
	forEachCell(f, c, ds, &st, func(row, col int) {
		counts[row*c.Width()+col]++
	})

	for i, n := range counts {
		if n == 0 {
			continue
		}
		st.Cells++
		if g, ok := scale.Glyph(n); ok {
			c.Set(i/c.Width(), i%c.Width(), g)
		}
	}
	return st
}

// Dot plots ds onto c in dot mode.
func Dot(f *frame.Frame, c *canvas.Canvas, ds models.Dataset) Stats {
	return DotRenderer{}.Render(f, c, ds)
}

// Count plots ds onto c in count mode using scale.
func Count(f *frame.Frame, c *canvas.Canvas, ds models.Dataset, scale DensityScale) Stats {
	return CountRenderer{Scale: scale}.Render(f, c, ds)
}

// forEachCell maps every finite point of ds and calls fn for those that land
// inside c. Skipped and dropped points are tallied in st.
func forEachCell(f *frame.Frame, c *canvas.Canvas, ds models.Dataset, st *Stats, fn func(row, col int)) {
	for _, p := range ds.Points() {
		if !p.Finite() {
			st.Skipped++
			continue
		}
		row, col := f.PointToCell(p.X, p.Y)
		if !c.InBounds(row, col) {
			st.Dropped++
			continue
		}
		st.Plotted++
		fn(row, col)
	}
}
