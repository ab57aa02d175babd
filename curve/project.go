package curve

import (
	"math"

	"github.com/npillmayer/brickpath"
)

// DefaultProjectionResolution is the number of uniform steps used to
// project a point onto a curve.
const DefaultProjectionResolution = 256

// Project finds the point of c closest to p on the ground plane. c is
// sampled at resolution+1 equidistant arc-length fractions; the sample with
// the smallest squared planar distance wins (the first one on ties).
// Project returns its arc-length fraction u and the distance u·Length().
//
// This is a nearest-point-on-polyline approximation with fixed resolution.
func (c *Curve) Project(p brickpath.Vec3, resolution int) (float64, float64) {
	if resolution < 1 {
		resolution = DefaultProjectionResolution
	}
	best, bestU := math.Inf(1), 0.0
	for k := 0; k <= resolution; k++ {
		u := float64(k) / float64(resolution)
		if d := c.PointAt(u).PlanDistSq(p); d < best {
			best, bestU = d, u
		}
	}
	tracer().P("op", "project").Debugf("%v -> u = %.4f", p, bestU)
	return bestU, bestU * c.length
}
