package render

import (
	"errors"
	"fmt"
)

// ErrInvalidScale indicates a density scale that cannot map counts to glyphs.
var ErrInvalidScale = errors.New("invalid density scale")

// Threshold assigns Glyph to every count of at least MinCount.
type Threshold struct {
	MinCount int
	Glyph    byte
}

// DensityScale is an ordered list of thresholds with strictly increasing
// MinCount. A count takes the glyph of the last threshold it reaches.
type DensityScale []Threshold

// DefaultDensityScale returns the scale used by count mode unless overridden.
func DefaultDensityScale() DensityScale {
	return DensityScale{
		{MinCount: 1, Glyph: '.'},
		{MinCount: 2, Glyph: ':'},
		{MinCount: 3, Glyph: 'o'},
		{MinCount: 5, Glyph: 'x'},
		{MinCount: 10, Glyph: '%'},
		{MinCount: 20, Glyph: '#'},
		{MinCount: 50, Glyph: '@'},
	}
}

// Validate checks that s is non-empty, starts at a positive count and
// increases strictly.
func (s DensityScale) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no thresholds", ErrInvalidScale)
	}
	prev := 0
	for i, th := range s {
		if th.MinCount <= prev {
			return fmt.Errorf("%w: threshold %d has count %d, want more than %d",
				ErrInvalidScale, i, th.MinCount, prev)
		}
		prev = th.MinCount
	}
	return nil
}

// Rank returns the index of the threshold count falls into, or -1 when count
// is below the first threshold.
func (s DensityScale) Rank(count int) int {
	rank := -1
	for i, th := range s {
		if count < th.MinCount {
			break
		}
		rank = i
	}
	return rank
}

// Glyph returns the glyph for count. It returns false when count is below
// every threshold.
func (s DensityScale) Glyph(count int) (byte, bool) {
	r := s.Rank(count)
	if r < 0 {
		return 0, false
	}
	return s[r].Glyph, true
}
