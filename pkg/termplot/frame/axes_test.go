package frame_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/termplot-go/pkg/termplot/canvas"
	"github.com/ukaji3/termplot-go/pkg/termplot/frame"
)

func TestAxes_Placement(t *testing.T) {
	cases := []struct {
		name      string
		xs, ys    []float64
		vertical  frame.Axis
		horizontal frame.Axis
	}{
		{
			name:      "ZeroInsideBoth",
			xs:        []float64{-5, 5},
			ys:        []float64{-4, 4},
			vertical:  frame.Axis{Zero: true, Anchor: 0, Index: 5},
			horizontal: frame.Axis{Zero: true, Anchor: 0, Index: 5},
		},
		{
			name:      "PositiveX",
			xs:        []float64{1, 10},
			ys:        []float64{-4, 4},
			vertical:  frame.Axis{Zero: false, Anchor: 1, Index: 0},
			horizontal: frame.Axis{Zero: true, Anchor: 0, Index: 5},
		},
		{
			name:      "NegativeX",
			xs:        []float64{-10, -1},
			ys:        []float64{-4, 4},
			vertical:  frame.Axis{Zero: false, Anchor: -1, Index: 10},
			horizontal: frame.Axis{Zero: true, Anchor: 0, Index: 5},
		},
		{
			name:      "PositiveYIsAnchored",
			xs:        []float64{-5, 5},
			ys:        []float64{3, 9},
			vertical:  frame.Axis{Zero: true, Anchor: 0, Index: 5},
			horizontal: frame.Axis{Zero: true, Anchor: 0, Index: 9},
		},
		{
			name:      "NegativeY",
			xs:        []float64{-5, 5},
			ys:        []float64{-3, -1},
			vertical:  frame.Axis{Zero: true, Anchor: 0, Index: 5},
			horizontal: frame.Axis{Zero: false, Anchor: -1, Index: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// 12x10 gives a 10x8 plot area.
			f, err := frame.New(12, 10, dataset(tc.xs, tc.ys))
			require.NoError(t, err)
			v, h := f.Axes()
			assert.Equal(t, tc.vertical, v, "vertical")
			assert.Equal(t, tc.horizontal, h, "horizontal")
		})
	}
}

func TestDrawInto_TrueAxes(t *testing.T) {
	f, err := frame.New(10, 10, dataset([]float64{-5, 5}, []float64{-4, 4}))
	require.NoError(t, err)
	c := canvas.New(10, 10)
	require.NoError(t, f.DrawInto(c))

	want := []string{
		"    +     ",
		"    |     ",
		"    |     ",
		"    |     ",
		"    |     ",
		"+---++----",
		"    |     ",
		"    |     ",
		"    |     ",
		"    |     ",
	}
	assert.Equal(t, strings.Join(want, "\n"), c.String())
}

func TestDrawInto_SyntheticVertical(t *testing.T) {
	f, err := frame.New(10, 10, dataset([]float64{1, 10}, []float64{-4, 4}))
	require.NoError(t, err)
	c := canvas.New(10, 10)
	require.NoError(t, f.DrawInto(c))

	want := []string{
		".         ",
		"          ",
		"          ",
		"          ",
		"          ",
		"+----+----",
		"          ",
		"          ",
		"          ",
		"          ",
	}
	assert.Equal(t, strings.Join(want, "\n"), c.String())
}

func TestDrawInto_SyntheticHorizontal(t *testing.T) {
	f, err := frame.New(12, 6, dataset([]float64{-5, 5}, []float64{-3, -1}))
	require.NoError(t, err)
	c := canvas.New(12, 6)
	require.NoError(t, f.DrawInto(c))

	want := []string{
		"     +      ",
		".    +    . ",
		"     |      ",
		"     |      ",
		"     |      ",
		"     +      ",
	}
	assert.Equal(t, strings.Join(want, "\n"), c.String())
}

func TestDrawInto_TickSpacing(t *testing.T) {
	f, err := frame.New(23, 17, dataset([]float64{-1, 1}, []float64{-1, 1}))
	require.NoError(t, err)
	c := canvas.New(23, 17)
	require.NoError(t, f.DrawInto(c))

	v, h := f.Axes()
	for row := 0; row < f.Height(); row++ {
		got, _ := c.Get(row, v.Index)
		switch {
		case row == h.Index || row%5 == 0:
			assert.Equal(t, byte('+'), got, "row %d", row)
		default:
			assert.Equal(t, byte('|'), got, "row %d", row)
		}
	}
	for col := 0; col < f.Width(); col++ {
		got, _ := c.Get(h.Index, col)
		switch {
		case col == v.Index || col%5 == 0:
			assert.Equal(t, byte('+'), got, "col %d", col)
		default:
			assert.Equal(t, byte('-'), got, "col %d", col)
		}
	}
}

func TestDrawInto_OutOfBoundsIsInternalError(t *testing.T) {
	f, err := frame.New(10, 10, dataset([]float64{-5, 5}, []float64{-4, 4}))
	require.NoError(t, err)

	err = f.DrawInto(canvas.New(5, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, frame.ErrAxisOutOfBounds)

	var axisErr *frame.AxisError
	require.True(t, errors.As(err, &axisErr))
	assert.Equal(t, "vertical", axisErr.Axis)
	assert.Equal(t, 5, axisErr.Row)
	assert.Equal(t, 4, axisErr.Column)
	assert.Contains(t, err.Error(), "(5, 4)")
}
