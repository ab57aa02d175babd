/*
Package transform turns brick placements into positioned, rotated boxes.

A Transform is what a renderer needs to draw one brick instance: a world
position, a rotation aligning the brick's long axis (brickpath.XAxis) with
the curve tangent, and the brick dimensions after subtracting the mortar gap.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package transform

import (
	"fmt"
	"math"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/course"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'transform'
func tracer() tracing.Trace {
	return tracing.Select("transform")
}

// MinDimension is the smallest effective brick dimension a gap may leave.
const MinDimension = 0.001

// Transform positions one brick in world space.
type Transform struct {
	Position brickpath.Vec3 // center of the brick
	Rotation brickpath.Quat // maps brickpath.XAxis onto Tangent
	Size     brickpath.Vec3 // effective length (X), height (Y) and width (Z)
	Tangent  brickpath.Vec3 // horizontal unit direction of the curve
	Row      int
	Distance float64 // along the curve
}

func (t Transform) String() string {
	return fmt.Sprintf("brick{row %d @ %.4g: %v %v}", t.Row, t.Distance, t.Position, t.Rotation)
}

// Curve is what Map needs to know about a curve, usually a *curve.Curve.
type Curve interface {
	Length() float64
	PointAt(u float64) brickpath.Vec3
	TangentAt(u float64) brickpath.Vec3
}

// ClampedGap restricts the gap of p to [0, min(dimensions) - MinDimension].
func ClampedGap(p course.Params) float64 {
	hi := math.Max(p.MinDimension()-MinDimension, 0)
	return brickpath.Clamp(p.Gap, 0, hi)
}

// EffectiveSize returns the brick dimensions reduced by the clamped gap, as
// length (X), height (Y) and width (Z). No dimension drops below
// MinDimension.
func EffectiveSize(p course.Params) brickpath.Vec3 {
	gap := ClampedGap(p)
	shrink := func(d float64) float64 {
		return math.Max(d-gap, MinDimension)
	}
	return brickpath.V(shrink(p.Length), shrink(p.Height), shrink(p.Width))
}

// Map converts placements into transforms, in input order. Rows are stacked
// by the nominal brick height, so the gap opens evenly above and below each
// brick.
func Map(c Curve, placements []course.Placement, p course.Params) []Transform {
	size := EffectiveSize(p)
	total := c.Length()
	transforms := make([]Transform, len(placements))
	for i, pl := range placements {
		u := 0.0
		if total > 0 {
			u = math.Min(pl.Distance/total, 1)
		}
		pos := c.PointAt(u)
		pos.Y = float64(pl.Row)*p.Height + p.Height/2
		tangent := c.TangentAt(u).Flat()
		rot := brickpath.IdentityRotation
		if tangent.Len() < brickpath.Epsilon || !tangent.IsFinite() {
			tangent = brickpath.XAxis
		} else {
			tangent = tangent.Normalized()
			rot = brickpath.RotationBetween(brickpath.XAxis, tangent)
		}
		transforms[i] = Transform{
			Position: pos,
			Rotation: rot,
			Size:     size,
			Tangent:  tangent,
			Row:      pl.Row,
			Distance: pl.Distance,
		}
	}
	tracer().Debugf("mapped %d placements, brick size %v", len(transforms), size)
	return transforms
}

// Heading is the direction of the brick's long axis on the ground plane,
// in radians, measured from X towards Z.
func (t Transform) Heading() float64 {
	return t.Tangent.Plan().Angle()
}

// Footprint returns the corners of the brick projected onto the ground
// plane, as (X,Z) pairs in counter-clockwise order of the plan.
func (t Transform) Footprint() []brickpath.Pair {
	l, w := t.Size.X/2, t.Size.Z/2
	local := []brickpath.Pair{
		brickpath.P(-l, -w), brickpath.P(l, -w), brickpath.P(l, w), brickpath.P(-l, w),
	}
	m := brickpath.Rotation(t.Heading()).Combine(brickpath.Translation(t.Position.Plan()))
	return m.TransformAll(local)
}

// Corners returns the 8 corners of the brick in world space. Corner i has
// its local x at +length/2 if bit 0 of i is set, y at +height/2 for bit 1
// and z at +width/2 for bit 2.
func (t Transform) Corners() [8]brickpath.Vec3 {
	var c [8]brickpath.Vec3
	half := t.Size.Scaled(0.5)
	for i := range c {
		local := brickpath.V(-half.X, -half.Y, -half.Z)
		if i&1 != 0 {
			local.X = half.X
		}
		if i&2 != 0 {
			local.Y = half.Y
		}
		if i&4 != 0 {
			local.Z = half.Z
		}
		c[i] = t.Rotation.Rotate(local).Add(t.Position)
	}
	return c
}
