// Package models defines data structures shared by the plotting pipeline.
package models

import "math"

// Dataset holds the x values and one or more y series aligned to them.
type Dataset struct {
	// Xs holds one x value per data row.
	Xs []float64 `json:"xs"`
	// Ys holds the y series. Ys[k][i] pairs with Xs[i].
	Ys [][]float64 `json:"ys"`
}

// Point is a single (x, y) pair taken from a Dataset.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Finite reports whether both coordinates are finite.
func (p Point) Finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Points returns the aligned (x, y) pairs of every series, series by series.
// Values of a series past the end of Xs have no x and are left out.
func (d Dataset) Points() []Point {
	var pts []Point
	for _, series := range d.Ys {
		n := len(series)
		if n > len(d.Xs) {
			n = len(d.Xs)
		}
		for i := 0; i < n; i++ {
			pts = append(pts, Point{X: d.Xs[i], Y: series[i]})
		}
	}
	return pts
}

// Len returns the number of x rows.
func (d Dataset) Len() int {
	return len(d.Xs)
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	out := Dataset{Xs: append([]float64(nil), d.Xs...)}
	if d.Ys != nil {
		out.Ys = make([][]float64, len(d.Ys))
		for i, s := range d.Ys {
			out.Ys[i] = append([]float64(nil), s...)
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
