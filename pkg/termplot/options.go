// Package termplot renders numeric (x, y) data as a character-grid plot.
package termplot

import (
	"io"
	"log/slog"

	"github.com/ukaji3/termplot-go/pkg/termplot/render"
)

// Mode represents the rendering mode.
type Mode string

const (
	// ModeCount draws a density glyph reflecting how many points share a cell.
	ModeCount Mode = "count"
	// ModeDot marks cells holding at least one point.
	ModeDot Mode = "dot"
)

// Default plot size in columns and rows.
const (
	DefaultWidth  = 90
	DefaultHeight = 25
)

// Options configures a plot.
type Options struct {
	// Width and Height are the canvas size in columns and rows.
	Width  int
	Height int
	// Mode selects count or dot rendering.
	Mode Mode
	// Scale maps counts to glyphs in count mode. If nil, render.DefaultDensityScale is used.
	Scale render.DensityScale
	// LogX and LogY apply a base-10 logarithm to the x or y values.
	LogX bool
	LogY bool
	// CDF replaces the y values with their cumulative distribution.
	CDF bool
	// Logger receives debug output. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default plot options.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mode:   ModeCount,
	}
}

// renderer returns the renderer for the selected mode.
func (o Options) renderer() (render.Renderer, error) {
	switch o.Mode {
	case ModeCount, "":
		scale := o.Scale
		if scale == nil {
			scale = render.DefaultDensityScale()
		}
		if err := scale.Validate(); err != nil {
			return nil, err
		}
		return render.CountRenderer{Scale: scale}, nil
	case ModeDot:
		return render.DotRenderer{}, nil
	default:
		return nil, ErrUnknownMode
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
