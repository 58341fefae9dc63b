// Package transform turns raw input into the dataset that gets plotted.
// Every function returns a new dataset and leaves its input untouched.
package transform

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/ukaji3/termplot-go/pkg/termplot/models"
)

// ErrNoSamples indicates CDF found no finite y-value to build a distribution from.
var ErrNoSamples = errors.New("no finite samples for cumulative distribution")

// Options selects the transforms applied by Apply.
type Options struct {
	LogX bool
	LogY bool
	CDF  bool
}

// Apply runs the selected transforms: CDF first, then log10 of each axis.
func Apply(ds models.Dataset, opts Options) (models.Dataset, error) {
	out := ds
	if opts.CDF {
		var err error
		if out, err = CDF(out); err != nil {
			return models.Dataset{}, err
		}
	}
	if opts.LogX {
		out = Log10X(out)
	}
	if opts.LogY {
		out = Log10Y(out)
	}
	return out, nil
}

// Log10X replaces every x with its base-10 logarithm. Zero maps to -Inf and
// negative values to NaN; both are ignored downstream.
func Log10X(ds models.Dataset) models.Dataset {
	out := ds.Clone()
	log10All(out.Xs)
	return out
}

// Log10Y replaces every y of every series with its base-10 logarithm.
func Log10Y(ds models.Dataset) models.Dataset {
	out := ds.Clone()
	for _, s := range out.Ys {
		log10All(s)
	}
	return out
}

// CDF pools the finite y-values of all series into one empirical cumulative
// distribution. The result has one x per distinct sample value, ascending,
// and a single series holding the fraction of samples at or below it.
func CDF(ds models.Dataset) (models.Dataset, error) {
	var samples []float64
	for _, s := range ds.Ys {
		for _, v := range s {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				samples = append(samples, v)
			}
		}
	}
	n := len(samples)
	if n == 0 {
		return models.Dataset{}, ErrNoSamples
	}
	sort.Float64s(samples)

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	cum := floats.CumSum(make([]float64, n), ones)
	floats.Scale(1/float64(n), cum)

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i, v := range samples {
		// ties keep the fraction of their last occurrence
		if i+1 < n && samples[i+1] == v {
			continue
		}
		xs = append(xs, v)
		ys = append(ys, cum[i])
	}
	return models.Dataset{Xs: xs, Ys: [][]float64{ys}}, nil
}

func log10All(vs []float64) {
	for i, v := range vs {
		vs[i] = math.Log10(v)
	}
}
