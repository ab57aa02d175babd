package spline

import (
	"github.com/npillmayer/brickpath"
)

// Bezier is a cubic Bézier segment from P0 to P3 with control points P1
// and P2.
type Bezier struct {
	P0, P1, P2, P3 brickpath.Pair
}

// Segments returns the Bézier segments of a solved path, in path order.
func Segments(path *Path, controls *Controls) []Bezier {
	n := path.SegmentCount()
	segs := make([]Bezier, n)
	for i := 0; i < n; i++ {
		segs[i] = Bezier{
			P0: path.Z(i),
			P1: controls.PostControl(i),
			P2: controls.PreControl((i + 1) % path.N()),
			P3: path.Z(i + 1),
		}
	}
	return segs
}

// Point evaluates the segment at t ∈ [0,1].
func (b Bezier) Point(t float64) brickpath.Pair {
	s := 1 - t
	return b.P0.Scaled(s*s*s) + b.P1.Scaled(3*s*s*t) + b.P2.Scaled(3*s*t*t) + b.P3.Scaled(t*t*t)
}

// Derivative is the first derivative of the segment at t ∈ [0,1].
func (b Bezier) Derivative(t float64) brickpath.Pair {
	s := 1 - t
	return (b.P1 - b.P0).Scaled(3*s*s) + (b.P2 - b.P1).Scaled(6*s*t) + (b.P3 - b.P2).Scaled(3*t*t)
}

// Locate maps a global parameter t ∈ [0,1] over n segments to a segment
// index and a local parameter. t = 1 maps to the end of the last segment.
func Locate(t float64, n int) (int, float64) {
	if n <= 0 {
		return 0, 0
	}
	t = brickpath.Clamp(t, 0, 1)
	p := t * float64(n)
	i := int(p)
	w := p - float64(i)
	if i >= n {
		i, w = n-1, 1
	}
	return i, w
}
