package termplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/termplot-go/pkg/termplot/frame"
	"github.com/ukaji3/termplot-go/pkg/termplot/parser"
	"github.com/ukaji3/termplot-go/pkg/termplot/render"
	"github.com/ukaji3/termplot-go/pkg/termplot/transform"
)

// ErrConfig matches every error caused by the input or the options.
var ErrConfig = errors.New("invalid configuration")

// ErrInternal matches errors that indicate a bug in the coordinate mapping.
var ErrInternal = errors.New("internal inconsistency")

// ErrUnknownMode indicates a Mode other than ModeCount or ModeDot.
var ErrUnknownMode = errors.New("unknown rendering mode")

// Errors re-exported from the packages that produce them.
var (
	ErrNoPlottableData    = frame.ErrNoPlottableData
	ErrDimensionsTooSmall = frame.ErrDimensionsTooSmall
	ErrInvalidScale       = render.ErrInvalidScale
	ErrInvalidDimensions  = parser.ErrInvalidDimensions
)

// configErrors are the causes classified as ErrConfig.
var configErrors = []error{
	frame.ErrNoPlottableData,
	frame.ErrDimensionsTooSmall,
	render.ErrInvalidScale,
	transform.ErrNoSamples,
	parser.ErrInvalidDimensions,
	parser.ErrInvalidRegion,
	parser.ErrFileNotFound,
	parser.ErrInvalidFormat,
	ErrUnknownMode,
}

// PlotError represents an error in one stage of the plotting pipeline.
type PlotError struct {
	Stage string // "options", "transform", "frame" or "axes"
	Err   error
}

func (e *PlotError) Error() string {
	return fmt.Sprintf("plot failed at %s: %v", e.Stage, e.Err)
}

func (e *PlotError) Unwrap() error {
	return e.Err
}

// Is classifies the cause as ErrConfig or ErrInternal.
func (e *PlotError) Is(target error) bool {
	switch target {
	case ErrConfig:
		return IsConfig(e.Err)
	case ErrInternal:
		return IsInternal(e.Err)
	}
	return false
}

// NewPlotError creates a new PlotError.
func NewPlotError(stage string, err error) *PlotError {
	return &PlotError{
		Stage: stage,
		Err:   err,
	}
}

// IsConfig reports whether err was caused by bad input or options.
func IsConfig(err error) bool {
	if errors.Is(err, ErrConfig) {
		return true
	}
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsInternal reports whether err indicates a mapping bug.
func IsInternal(err error) bool {
	return err != nil && errors.Is(err, frame.ErrAxisOutOfBounds)
}
