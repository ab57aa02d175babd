package brickpath

import (
	"fmt"
	"math"
)

// === 3D Vectors ============================================================

// Vec3 is a point or direction in world space. Y is the vertical axis; the
// ground plane is spanned by X and Z.
type Vec3 struct {
	X, Y, Z float64
}

// XAxis is the reference direction bricks are aligned to before rotation.
var XAxis = Vec3{1, 0, 0}

// V is a quick notation for constructing a vector.
func V(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scaled returns v scaled by a.
func (v Vec3) Scaled(a float64) Vec3 {
	return Vec3{v.X * a, v.Y * a, v.Z * a}
}

// Dot is the scalar product.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross is the vector product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Len is the euclidian length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v with length 1. The zero vector stays zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scaled(1 / l)
}

// Flat removes the vertical component of v.
func (v Vec3) Flat() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// Plan projects v onto the ground plane, as pair (X,Z).
func (v Vec3) Plan() Pair {
	return P(v.X, v.Z)
}

// PlanDistSq is the squared distance of v and w on the ground plane.
func (v Vec3) PlanDistSq(w Vec3) float64 {
	dx, dz := v.X-w.X, v.Z-w.Z
	return dx*dx + dz*dz
}

// IsFinite is a predicate: are all components finite numbers?
func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// === Rotations =============================================================

// Quat is a unit quaternion representing a rotation in world space.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityRotation does not rotate anything.
var IdentityRotation = Quat{0, 0, 0, 1}

func (q Quat) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g]", q.X, q.Y, q.Z, q.W)
}

// RotationBetween returns the shortest rotation mapping the unit vector
// from onto the unit vector to. For opposite vectors a half turn around an
// axis perpendicular to from is chosen.
func RotationBetween(from, to Vec3) Quat {
	r := from.Dot(to) + 1
	var q Quat
	if r < Epsilon {
		if math.Abs(from.X) > math.Abs(from.Z) {
			q = Quat{-from.Y, from.X, 0, 0}
		} else {
			q = Quat{0, -from.Z, from.Y, 0}
		}
	} else {
		c := from.Cross(to)
		q = Quat{c.X, c.Y, c.Z, r}
	}
	return q.Normalized()
}

// Normalized returns q with norm 1.
func (q Quat) Normalized() Quat {
	l := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return IdentityRotation
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scaled(2)
	return v.Add(t.Scaled(q.W)).Add(u.Cross(t))
}

// Equal compares two rotations. q and -q denote the same rotation.
func (q Quat) Equal(r Quat) bool {
	d := q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
	return Is1(math.Abs(d))
}
