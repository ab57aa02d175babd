package course

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid brick parameters")

// Params is a consistent snapshot of brick parameters. Dimensions are in
// world units.
type Params struct {
	Length  float64 // brick length, along the curve
	Width   float64 // brick width, across the curve
	Height  float64 // brick height, one course
	Rows    int     // number of courses
	Gap     float64 // mortar gap, subtracted from every dimension
	Falloff float64 // falloff strength in [0,1]
	Flip    bool    // thin out near the anchor instead of far from it
}

// DefaultParams returns the parameters a parameter source may seed its
// controls with.
func DefaultParams() Params {
	return Params{
		Length:  2.0,
		Width:   1.0,
		Height:  0.6,
		Rows:    8,
		Gap:     0.05,
		Falloff: 0,
	}
}

// Validate checks p at the boundary of a parameter source. The placement
// functions themselves assume valid parameters.
func (p Params) Validate() error {
	positive := func(name string, v float64) error {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive, is %g", ErrInvalidParams, name, v)
		}
		return nil
	}
	if err := positive("length", p.Length); err != nil {
		return err
	}
	if err := positive("width", p.Width); err != nil {
		return err
	}
	if err := positive("height", p.Height); err != nil {
		return err
	}
	if p.Rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, is %d", ErrInvalidParams, p.Rows)
	}
	if !(p.Gap >= 0) || p.Gap >= p.MinDimension() {
		return fmt.Errorf("%w: gap must be in [0,%g), is %g", ErrInvalidParams, p.MinDimension(), p.Gap)
	}
	if !(p.Falloff >= 0 && p.Falloff <= 1) {
		return fmt.Errorf("%w: falloff must be in [0,1], is %g", ErrInvalidParams, p.Falloff)
	}
	return nil
}

// MinDimension is the smallest of length, width and height.
func (p Params) MinDimension() float64 {
	return math.Min(p.Length, math.Min(p.Width, p.Height))
}

func (p Params) String() string {
	return fmt.Sprintf("brick %gx%gx%g, %d rows, gap %g, falloff %g (flip=%v)",
		p.Length, p.Width, p.Height, p.Rows, p.Gap, p.Falloff, p.Flip)
}
