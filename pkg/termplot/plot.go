package termplot

import (
	"github.com/ukaji3/termplot-go/pkg/termplot/canvas"
	"github.com/ukaji3/termplot-go/pkg/termplot/frame"
	"github.com/ukaji3/termplot-go/pkg/termplot/models"
	"github.com/ukaji3/termplot-go/pkg/termplot/render"
	"github.com/ukaji3/termplot-go/pkg/termplot/transform"
)

// Result is a finished plot.
type Result struct {
	// Canvas holds the rendered grid.
	Canvas *canvas.Canvas
	// Frame is the mapping the grid was drawn with.
	Frame *frame.Frame
	// Stats summarizes the rendering pass.
	Stats render.Stats
}

// String returns the plot as text, one line per row.
func (r *Result) String() string {
	return r.Canvas.String()
}

// Plot transforms ds as requested by opts, computes its frame, draws the
// axes and renders the points on a fresh canvas.
// Errors are *PlotError values classified by ErrConfig and ErrInternal.
func Plot(ds models.Dataset, opts Options) (*Result, error) {
	log := opts.logger()

	r, err := opts.renderer()
	if err != nil {
		return nil, NewPlotError("options", err)
	}

	data, err := transform.Apply(ds, transform.Options{LogX: opts.LogX, LogY: opts.LogY, CDF: opts.CDF})
	if err != nil {
		return nil, NewPlotError("transform", err)
	}

	f, err := frame.New(opts.Width, opts.Height, data)
	if err != nil {
		return nil, NewPlotError("frame", err)
	}
	b := f.Bounds()
	log.Debug("frame computed",
		"width", f.Width(), "height", f.Height(),
		"min_x", b.MinX, "max_x", b.MaxX,
		"min_y", b.MinY, "max_y", b.MaxY)

	c := canvas.New(f.Width(), f.Height())
	if err := f.DrawInto(c); err != nil {
		return nil, NewPlotError("axes", err)
	}

	st := r.Render(f, c, data)
	log.Debug("points rendered",
		"mode", string(opts.Mode),
		"plotted", st.Plotted, "skipped", st.Skipped,
		"dropped", st.Dropped, "cells", st.Cells)

	return &Result{Canvas: c, Frame: f, Stats: st}, nil
}
