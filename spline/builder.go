package spline

import (
	"github.com/npillmayer/brickpath"
)

func newSkeletonPath(points []brickpath.Pair) *Path {
	path := &Path{}
	path.points = make([]brickpath.Pair, len(points), len(points)*2)
	copy(path.points, points)
	path.Controls = &Controls{}
	return path
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds an open path of three knots:
//
//	var path *Path
//	path = Nullpath().Knot(P(0,0)).Knot(P(3,2)).Knot(P(5,2.5)).End()
//
// Calling Cycle() or End() returns a path. Its control point container
// (path.Controls) is empty and to be filled by FindControls(...).
func Nullpath() *Path {
	return newSkeletonPath(nil)
}

// Through creates an open path with knots pts. pts is copied.
func Through(pts []brickpath.Pair) *Path {
	return newSkeletonPath(pts)
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. The first knot must not be repeated as the
// last one. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Knot adds a knot to a path. Part of builder functionality.
func (path *Path) Knot(pr brickpath.Pair) *Path {
	path.points = append(path.points, pr)
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N).
func (path *Path) Z(i int) brickpath.Pair {
	n := path.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return path.points[i]
}

// Knots returns a copy of the knots of path.
func (path *Path) Knots() []brickpath.Pair {
	pts := make([]brickpath.Pair, path.N())
	copy(pts, path.points)
	return pts
}

// SegmentCount is the number of spline segments connecting the knots:
// N-1 for open paths, N for cycles.
func (path *Path) SegmentCount() int {
	if path.N() < 2 {
		return 0
	}
	if path.cycle {
		return path.N()
	}
	return path.N() - 1
}

// Neighbour knots of segment i: z.[i-1], z.i, z.[i+1], z.[i+2].
// Open paths are extended by mirroring the second and the second-to-last
// knot across the end knots.
func (path *Path) neighbours(i int) (p0, p1, p2, p3 brickpath.Pair) {
	p1, p2 = path.Z(i), path.Z(i+1)
	if path.cycle {
		return path.Z(i - 1), p1, p2, path.Z(i + 2)
	}
	last := path.N() - 1
	if i > 0 {
		p0 = path.Z(i - 1)
	} else {
		p0 = 2*path.Z(0) - path.Z(1)
	}
	if i+2 <= last {
		p3 = path.Z(i + 2)
	} else {
		p3 = 2*path.Z(last) - path.Z(last-1)
	}
	return
}
