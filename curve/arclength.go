package curve

import (
	"math"
	"sort"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/spline"
)

// measure fills the arc-length table by summing chords at uniform steps of
// the spline parameter.
func (c *Curve) measure(divisions int) {
	if divisions <= 0 {
		divisions = DefaultDivisions
	}
	if m := minDivisionsPerSegment * len(c.segs); divisions < m {
		divisions = m
	}
	c.cum = make([]float64, divisions+1)
	prev := c.planAt(0)
	for k := 1; k <= divisions; k++ {
		p := c.planAt(float64(k) / float64(divisions))
		c.cum[k] = c.cum[k-1] + (p - prev).Abs()
		prev = p
	}
	c.length = c.cum[divisions]
}

// Position in plan coordinates at spline parameter t ∈ [0,1].
func (c *Curve) planAt(t float64) brickpath.Pair {
	i, w := spline.Locate(t, len(c.segs))
	return c.segs[i].Point(w)
}

// Derivative in plan coordinates at spline parameter t ∈ [0,1].
func (c *Curve) planDerivativeAt(t float64) brickpath.Pair {
	i, w := spline.Locate(t, len(c.segs))
	return c.segs[i].Derivative(w)
}

// paramAt maps an arc-length fraction u to the spline parameter t.
func (c *Curve) paramAt(u float64) float64 {
	u = brickpath.Clamp(u, 0, 1)
	if c.length <= 0 {
		return u
	}
	n := len(c.cum) - 1
	target := u * c.length
	// first table index with cum[k] >= target
	k := sort.SearchFloat64s(c.cum, target)
	if k == 0 {
		return 0
	}
	if k > n {
		return 1
	}
	lo, hi := c.cum[k-1], c.cum[k]
	frac := 0.0
	if hi > lo {
		frac = (target - lo) / (hi - lo)
	}
	return (float64(k-1) + frac) / float64(n)
}

// PointAt returns the world position at arc-length fraction u ∈ [0,1].
// u is clamped.
func (c *Curve) PointAt(u float64) brickpath.Vec3 {
	return onGround(c.planAt(c.paramAt(u)))
}

// TangentAt returns the unit direction of the curve at arc-length fraction
// u ∈ [0,1]. The tangent is horizontal. Where the curve has no direction,
// brickpath.XAxis is returned.
func (c *Curve) TangentAt(u float64) brickpath.Vec3 {
	d := onGround(c.planDerivativeAt(c.paramAt(u))).Flat()
	if d.Len() < brickpath.Epsilon || !d.IsFinite() {
		return brickpath.XAxis
	}
	return d.Normalized()
}

// fraction converts a distance along the curve into an arc-length fraction.
func (c *Curve) fraction(d float64) float64 {
	if c.length <= 0 {
		return 0
	}
	return math.Min(d/c.length, 1)
}

// PointAtDistance returns the world position at distance d from the start.
func (c *Curve) PointAtDistance(d float64) brickpath.Vec3 {
	return c.PointAt(c.fraction(d))
}

// TangentAtDistance returns the unit tangent at distance d from the start.
func (c *Curve) TangentAtDistance(d float64) brickpath.Vec3 {
	return c.TangentAt(c.fraction(d))
}

// Samples returns n+1 points at equidistant arc-length fractions 0, 1/n, …, 1.
func (c *Curve) Samples(n int) []brickpath.Vec3 {
	if n < 1 {
		n = 1
	}
	pts := make([]brickpath.Vec3, n+1)
	for k := 0; k <= n; k++ {
		pts[k] = c.PointAt(float64(k) / float64(n))
	}
	return pts
}
