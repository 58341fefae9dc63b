// Package frame maps data coordinates onto a character grid and draws the
// coordinate axes.
//
// A Frame is computed once per dataset and canvas size and never changes.
// Columns grow to the right from min_x. Rows are flipped so that min_y lands
// on the bottom row of the canvas.
package frame

import (
	"fmt"
	"math"

	"github.com/ukaji3/termplot-go/pkg/termplot/models"
)

// PAD is the number of cells subtracted from each dimension before mapping.
const PAD = 2

// Bounds holds the axis extents of a dataset. RangeX and RangeY are always
// positive once returned by ComputeBounds.
type Bounds struct {
	MinX, MaxX, RangeX float64
	MinY, MaxY, RangeY float64
}

// Frame is the immutable mapping between a dataset's bounds and a canvas.
type Frame struct {
	width  int
	height int
	b      Bounds
}

// ComputeBounds returns the bounds of the finite values of ds.
//
// A zero-width range is widened to 1 above its single value. When every
// finite y is strictly positive, MinY is pulled down to 0 so the baseline
// stays visible.
func ComputeBounds(ds models.Dataset) (Bounds, error) {
	minX, maxX, ok := finiteExtent(ds.Xs)
	if !ok {
		return Bounds{}, ErrNoFiniteX
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	found := false
	for _, series := range ds.Ys {
		lo, hi, ok := finiteExtent(series)
		if !ok {
			continue
		}
		found = true
		minY = math.Min(minY, lo)
		maxY = math.Max(maxY, hi)
	}
	if !found {
		return Bounds{}, ErrNoFiniteY
	}

	b := Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	b.RangeX, b.MaxX = widen(b.MinX, b.MaxX)
	b.RangeY, b.MaxY = widen(b.MinY, b.MaxY)

	if b.MinY > 0 {
		b.MinY = 0
		b.RangeY, b.MaxY = widen(b.MinY, b.MaxY)
	}
	return b, nil
}

// New computes the frame of ds for a width×height canvas.
// Both dimensions must exceed PAD.
func New(width, height int, ds models.Dataset) (*Frame, error) {
	if width <= PAD || height <= PAD {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrDimensionsTooSmall, width, height, PAD+1, PAD+1)
	}
	b, err := ComputeBounds(ds)
	if err != nil {
		return nil, err
	}
	return &Frame{width: width, height: height, b: b}, nil
}

// Width returns the canvas width the frame maps onto.
func (f *Frame) Width() int { return f.width }

// Height returns the canvas height the frame maps onto.
func (f *Frame) Height() int { return f.height }

// Bounds returns a copy of the frame's bounds.
func (f *Frame) Bounds() Bounds { return f.b }

// XBounds returns (min_x, max_x).
func (f *Frame) XBounds() (float64, float64) { return f.b.MinX, f.b.MaxX }

// YBounds returns (min_y, max_y).
func (f *Frame) YBounds() (float64, float64) { return f.b.MinY, f.b.MaxY }

// Ranges returns (range_x, range_y).
func (f *Frame) Ranges() (float64, float64) { return f.b.RangeX, f.b.RangeY }

// XToColumn maps x to a column. Rounding is half away from zero, so min_x
// maps to column 0 and max_x to column width-PAD.
func (f *Frame) XToColumn(x float64) int {
	plotWidth := float64(f.width - PAD)
	frac := (x - f.b.MinX) / f.b.RangeX
	return roundToInt(plotWidth * frac)
}

// YToRow maps y to a row, flipped so that min_y maps to row height-1 and
// max_y to row 1.
func (f *Frame) YToRow(y float64) int {
	plotHeight := float64(f.height - PAD)
	frac := (y - f.b.MinY) / f.b.RangeY
	fromBottom := roundToInt(plotHeight * frac)
	return f.height - fromBottom - 1
}

// PointToCell returns the (row, column) of (x, y). The cell may lie outside
// the canvas; callers bounds-check before writing.
func (f *Frame) PointToCell(x, y float64) (row, col int) {
	return f.YToRow(y), f.XToColumn(x)
}

// roundToInt rounds half away from zero. Non-finite or huge input maps to
// math.MinInt32 so it is never mistaken for a valid cell.
func roundToInt(v float64) int {
	r := math.Round(v)
	if math.IsNaN(r) || r >= math.MaxInt32 || r <= math.MinInt32 {
		return math.MinInt32
	}
	return int(r)
}

// widen returns the range of [lo, hi], widening a zero range to 1.
func widen(lo, hi float64) (rng, newHi float64) {
	rng = hi - lo
	if rng == 0 {
		rng = 1
		hi = lo + rng
	}
	return rng, hi
}

// finiteExtent returns the minimum and maximum finite values of vs.
func finiteExtent(vs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		ok = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}
