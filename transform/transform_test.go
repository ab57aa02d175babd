package transform

import (
	"math"
	"testing"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/course"
	"github.com/npillmayer/brickpath/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straight(t *testing.T) *curve.Curve {
	pts := []brickpath.Pair{
		brickpath.P(0, 0), brickpath.P(0.33, 0), brickpath.P(0.66, 0), brickpath.P(1, 0),
	}
	c, err := curve.Build(pts, 10.5, 10, curve.Options{})
	require.NoError(t, err)
	return c
}

func TestStraightCourse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := straight(t)
	p := course.DefaultParams()
	p.Rows, p.Length, p.Gap = 1, 2, 0
	transforms := Map(c, course.Compute(c, p), p)
	require.Len(t, transforms, 5)
	for i, tr := range transforms {
		d := (float64(i) + 0.5) * 2
		assert.Equal(t, d, tr.Distance)
		assert.InDelta(t, c.PointAt(0).X+d, tr.Position.X, 1e-3)
		assert.InDelta(t, 0.0, tr.Position.Z, 1e-9)
		assert.InDelta(t, p.Height/2, tr.Position.Y, 1e-12)
		assert.InDelta(t, 1.0, tr.Tangent.X, 1e-9)
		assert.True(t, tr.Rotation.Equal(brickpath.IdentityRotation), "brick %d rotated: %v", i, tr.Rotation)
		assert.Equal(t, brickpath.V(2, p.Height, p.Width), tr.Size)
	}
}

func TestRowsStackByNominalHeight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := straight(t)
	p := course.DefaultParams()
	p.Rows, p.Height, p.Gap = 4, 0.5, 0.1
	for _, tr := range Map(c, course.Compute(c, p), p) {
		assert.InDelta(t, float64(tr.Row)*0.5+0.25, tr.Position.Y, 1e-12)
		assert.InDelta(t, 0.4, tr.Size.Y, 1e-12)
	}
}

func TestGapEqualToSmallestDimension(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := course.DefaultParams()
	p.Length, p.Width, p.Height = 2, 1, 0.6
	p.Gap = 0.6
	assert.InDelta(t, 0.6-MinDimension, ClampedGap(p), 1e-12)
	size := EffectiveSize(p)
	assert.InDelta(t, MinDimension, size.Y, 1e-12)
	assert.Greater(t, size.Y, 0.0)
	assert.InDelta(t, 2-0.599, size.X, 1e-12)
	assert.InDelta(t, 1-0.599, size.Z, 1e-12)
}

func TestEffectiveSizeNeverBelowMinimum(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := course.DefaultParams()
	for _, gap := range []float64{-1, 0, 0.1, 0.3, 0.5999, 0.6, 0.7, 5, math.Inf(1)} {
		p.Gap = gap
		size := EffectiveSize(p)
		for _, d := range []float64{size.X, size.Y, size.Z} {
			assert.GreaterOrEqual(t, d, MinDimension, "gap %g", gap)
		}
		g := ClampedGap(p)
		assert.GreaterOrEqual(t, g, 0.0)
		assert.LessOrEqual(t, g, p.MinDimension()-MinDimension)
	}
	p.Gap = -1
	assert.Equal(t, brickpath.V(p.Length, p.Height, p.Width), EffectiveSize(p))
}

func TestOrderFollowsInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := straight(t)
	p := course.DefaultParams()
	placements := []course.Placement{{Distance: 7, Row: 2}, {Distance: 1, Row: 0}, {Distance: 30, Row: 1}}
	transforms := Map(c, placements, p)
	require.Len(t, transforms, 3)
	for i, pl := range placements {
		assert.Equal(t, pl.Row, transforms[i].Row)
		assert.Equal(t, pl.Distance, transforms[i].Distance)
	}
	// beyond the end of the curve the last point is used
	assert.InDelta(t, c.PointAt(1).X, transforms[2].Position.X, 1e-9)
}

func TestRotationFollowsTangent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []brickpath.Pair{
		brickpath.P(0.1, 0.2), brickpath.P(0.4, 0.8), brickpath.P(0.7, 0.3), brickpath.P(0.9, 0.6),
	}
	c, err := curve.Build(pts, 10, 10, curve.Options{})
	require.NoError(t, err)
	p := course.DefaultParams()
	p.Length = 0.5
	for _, tr := range Map(c, course.Compute(c, p), p) {
		x := tr.Rotation.Rotate(brickpath.XAxis)
		assert.InDelta(t, tr.Tangent.X, x.X, 1e-9)
		assert.InDelta(t, 0.0, x.Y, 1e-9)
		assert.InDelta(t, tr.Tangent.Z, x.Z, 1e-9)
		assert.InDelta(t, 1.0, tr.Tangent.Len(), 1e-9)
	}
}

func TestFootprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := Transform{
		Position: brickpath.V(3, 0.3, 4),
		Tangent:  brickpath.V(0, 0, 1),
		Rotation: brickpath.RotationBetween(brickpath.XAxis, brickpath.V(0, 0, 1)),
		Size:     brickpath.V(2, 0.6, 1),
	}
	assert.InDelta(t, math.Pi/2, tr.Heading(), 1e-12)
	fp := tr.Footprint()
	require.Len(t, fp, 4)
	for _, corner := range fp {
		assert.InDelta(t, 0.5, math.Abs(corner.X()-3), 1e-9)
		assert.InDelta(t, 1.0, math.Abs(corner.Y()-4), 1e-9)
	}
	// the box corners project onto the footprint
	for _, c := range tr.Corners() {
		found := false
		for _, corner := range fp {
			if c.Plan().Equal(corner) {
				found = true
			}
		}
		assert.True(t, found, "corner %v not in footprint %v", c, fp)
		assert.InDelta(t, 0.3, math.Abs(c.Y-0.3), 1e-9)
	}
}
