package frame

import (
	"errors"
	"fmt"
)

// ErrNoPlottableData indicates the dataset has no finite value on some axis.
var ErrNoPlottableData = errors.New("no plottable data")

// ErrNoFiniteX indicates no x value is finite.
var ErrNoFiniteX = fmt.Errorf("%w: no finite x-values found in data", ErrNoPlottableData)

// ErrNoFiniteY indicates no y value in any series is finite.
var ErrNoFiniteY = fmt.Errorf("%w: no finite y-values found in data", ErrNoPlottableData)

// ErrDimensionsTooSmall indicates a width or height that leaves no room inside the margin.
var ErrDimensionsTooSmall = errors.New("dimensions too small")

// ErrAxisOutOfBounds indicates an axis was mapped to a cell outside the canvas.
// It signals a mapping bug rather than bad input.
var ErrAxisOutOfBounds = errors.New("axis cell out of canvas bounds")

// AxisError reports the offending cell of an axis that could not be drawn.
type AxisError struct {
	Axis   string // "vertical" or "horizontal"
	Row    int
	Column int
	Anchor float64 // data value the axis is drawn at
}

func (e *AxisError) Error() string {
	component := "x"
	if e.Axis == "horizontal" {
		component = "y"
	}
	return fmt.Sprintf("invalid cell (%d, %d) for %s axis component (%s=%g)",
		e.Row, e.Column, e.Axis, component, e.Anchor)
}

func (e *AxisError) Unwrap() error {
	return ErrAxisOutOfBounds
}
