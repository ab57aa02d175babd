/*
Package curve builds the space curve a wall follows.

Editor points are normalized pairs in [0,1]². Build centers them at their
centroid, scales them into world units and interpolates them with a
Catmull-Rom spline (package spline). The resulting curve lies flat on the
ground plane: editor x maps to world X, editor y maps to world Z, and the
vertical world axis Y is always 0.

A Curve is immutable. It is parameterized by the fraction u ∈ [0,1] of its
arc length, or by the absolute distance d ∈ [0,Length()] from its start.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"errors"
	"fmt"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curve'
func tracer() tracing.Trace {
	return tracing.Select("curve")
}

// DefaultDivisions is the default resolution of the arc-length table.
const DefaultDivisions = 200

// The arc-length table has at least this many entries per spline segment.
const minDivisionsPerSegment = 8

var (
	// ErrTooFewPoints indicates that fewer than 2 distinct points were given.
	// Callers should skip any further processing.
	ErrTooFewPoints = errors.New("curve needs at least 2 distinct points")
	// ErrInvalidPoint indicates a point coordinate contains NaN/Inf.
	ErrInvalidPoint = errors.New("curve point is not finite")
)

// Options control curve interpolation. The zero value selects an open,
// centripetal spline with the default arc-length resolution.
type Options struct {
	Kind      spline.Kind // knot parameterization
	Closed    bool        // connect the last point back to the first one
	Divisions int         // arc-length table resolution, 0 for DefaultDivisions
}

// Curve is a smooth, flat path through a sequence of points in world space.
type Curve struct {
	knots  []brickpath.Pair // interpolated plan positions (X,Z)
	segs   []spline.Bezier  // spline segments in plan coordinates
	closed bool
	width  float64   // world units per editor unit, horizontally
	height float64   // world units per editor unit, vertically
	cum    []float64 // cumulative arc length at t = k/(len(cum)-1)
	length float64
}

// Build creates a curve through points, which are expected to be in
// normalized editor coordinates. The points are centered around their
// centroid, then x is scaled by worldWidth and y by worldHeight.
//
// Consecutive duplicate points are dropped. If fewer than 2 distinct points
// remain, Build returns ErrTooFewPoints. A closed curve needs 3 distinct
// points; with only 2 an open curve is built.
func Build(points []brickpath.Pair, worldWidth, worldHeight float64, opts Options) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: point %d = %v", ErrInvalidPoint, i, p)
		}
	}
	center := brickpath.Centroid(points)
	knots := make([]brickpath.Pair, 0, len(points))
	for _, p := range points {
		k := (p - center).XYScaled(worldWidth, worldHeight)
		if len(knots) > 0 && k.Equal(knots[len(knots)-1]) {
			tracer().Debugf("dropping duplicate point %v", p)
			continue
		}
		knots = append(knots, k)
	}
	closed := opts.Closed
	if closed && len(knots) > 1 && knots[0].Equal(knots[len(knots)-1]) {
		knots = knots[:len(knots)-1]
	}
	if len(knots) < 2 {
		return nil, fmt.Errorf("%w: %d of %d points are distinct", ErrTooFewPoints, len(knots), len(points))
	}
	if closed && len(knots) < 3 {
		tracer().Infof("cannot close a curve through 2 points, building an open one")
		closed = false
	}
	path := spline.Through(knots)
	if closed {
		path.Cycle()
	}
	controls, err := spline.FindControls(path, opts.Kind, path.Controls)
	if err != nil {
		return nil, err
	}
	c := &Curve{
		knots:  knots,
		segs:   spline.Segments(path, controls),
		closed: closed,
		width:  worldWidth,
		height: worldHeight,
	}
	c.measure(opts.Divisions)
	tracer().Debugf("curve through %d knots, length = %.4f", len(knots), c.length)
	return c, nil
}

// BuildToLength builds a curve like Build and, if targetLength is positive,
// rescales it uniformly so that its arc length equals targetLength. The
// shape of the curve is preserved; both world scale factors are multiplied
// by targetLength/baseLength.
//
// If the base curve has zero or non-finite length, it is returned unscaled.
func BuildToLength(points []brickpath.Pair, worldWidth, worldHeight, targetLength float64,
	opts Options) (*Curve, error) {
	//
	base, err := Build(points, worldWidth, worldHeight, opts)
	if err != nil || targetLength <= 0 || !brickpath.IsFinite(targetLength) {
		return base, err
	}
	L := base.Length()
	if L <= 0 || !brickpath.IsFinite(L) {
		tracer().Infof("curve has length %g, cannot rescale to %g", L, targetLength)
		return base, nil
	}
	k := targetLength / L
	tracer().P("op", "rescale").Debugf("base length %.4f, factor %.6f", L, k)
	return Build(points, worldWidth*k, worldHeight*k, opts)
}

// Length is the arc length of the curve.
func (c *Curve) Length() float64 {
	return c.length
}

// IsClosed is a predicate: does the curve return to its start?
func (c *Curve) IsClosed() bool {
	return c.closed
}

// Scale returns the world units per editor unit used for x and y.
func (c *Curve) Scale() (float64, float64) {
	return c.width, c.height
}

// Knots returns the points the curve passes through, in world space.
func (c *Curve) Knots() []brickpath.Vec3 {
	v := make([]brickpath.Vec3, len(c.knots))
	for i, k := range c.knots {
		v[i] = onGround(k)
	}
	return v
}

func onGround(p brickpath.Pair) brickpath.Vec3 {
	return brickpath.V(p.X(), 0, p.Y())
}

func (c *Curve) String() string {
	return fmt.Sprintf("curve{%d knots, length %.4g, closed=%v}", len(c.knots), c.length, c.closed)
}
