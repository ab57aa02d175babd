/*
Package polygon handles plan-view outlines made of closed contours.

A Polygon is a set of contours, built knot by knot or from brick footprints.
Polygons are merged with a boolean union, which is how the ground plan of a
wall is derived from the footprints of its bricks. Contours lying inside
other contours are holes.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"bytes"
	"fmt"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polygon'
func tracer() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a set of closed contours.
type Polygon struct {
	contours polyclip.Polygon
	open     bool // last contour still takes knots
}

// NullPolygon creates an empty polygon.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a vertex to the current contour. After Cycle, the next knot
// starts a new contour.
func (pg *Polygon) Knot(p brickpath.Pair) *Polygon {
	if !pg.open {
		pg.contours.Add(polyclip.Contour{})
		pg.open = true
	}
	last := len(pg.contours) - 1
	pg.contours[last].Add(point(p))
	return pg
}

// Cycle closes the current contour.
func (pg *Polygon) Cycle() *Polygon {
	pg.open = false
	return pg
}

// FromPairs creates a polygon with a single contour through pts.
func FromPairs(pts []brickpath.Pair) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg.Cycle()
}

// Box creates a rectangle from two opposite corners.
func Box(p, q brickpath.Pair) *Polygon {
	x0, x1 := math.Min(p.X(), q.X()), math.Max(p.X(), q.X())
	y0, y1 := math.Min(p.Y(), q.Y()), math.Max(p.Y(), q.Y())
	return NullPolygon().Knot(brickpath.P(x0, y0)).Knot(brickpath.P(x1, y0)).
		Knot(brickpath.P(x1, y1)).Knot(brickpath.P(x0, y1)).Cycle()
}

// N is the number of vertices over all contours.
func (pg *Polygon) N() int {
	return pg.contours.NumVertices()
}

// IsEmpty is true for a polygon without any vertices.
func (pg *Polygon) IsEmpty() bool {
	return pg == nil || pg.N() == 0
}

// Contours returns the vertices of every contour. Holes are included; see
// IsHole.
func (pg *Polygon) Contours() [][]brickpath.Pair {
	cs := make([][]brickpath.Pair, len(pg.contours))
	for i, c := range pg.contours {
		cs[i] = make([]brickpath.Pair, len(c))
		for j, pt := range c {
			cs[i][j] = brickpath.P(pt.X, pt.Y)
		}
	}
	return cs
}

// IsHole is true if contour i lies inside an odd number of other contours.
func (pg *Polygon) IsHole(i int) bool {
	c := pg.contours[i]
	if len(c) == 0 {
		return false
	}
	depth := 0
	for j, other := range pg.contours {
		if j != i && other.Contains(c[0]) {
			depth++
		}
	}
	return depth%2 == 1
}

// Area is the covered area: the area of outer contours minus the area of
// holes.
func (pg *Polygon) Area() float64 {
	a := 0.0
	for i, c := range pg.contours {
		if pg.IsHole(i) {
			a -= contourArea(c)
		} else {
			a += contourArea(c)
		}
	}
	return a
}

// BoundingBox returns the lower left and upper right corner enclosing all
// contours.
func (pg *Polygon) BoundingBox() (brickpath.Pair, brickpath.Pair) {
	if pg.IsEmpty() {
		return brickpath.Origin, brickpath.Origin
	}
	r := pg.contours.BoundingBox()
	return brickpath.P(r.Min.X, r.Min.Y), brickpath.P(r.Max.X, r.Max.Y)
}

// Union merges polygons into one. Inputs are not modified.
func Union(pgs ...*Polygon) *Polygon {
	parts := make([]polyclip.Polygon, 0, len(pgs))
	for _, pg := range pgs {
		if !pg.IsEmpty() {
			parts = append(parts, pg.contours)
		}
	}
	if len(parts) == 0 {
		return NullPolygon()
	}
	// merge pairwise, halving the number of parts in each round
	for len(parts) > 1 {
		merged := make([]polyclip.Polygon, 0, (len(parts)+1)/2)
		for i := 0; i+1 < len(parts); i += 2 {
			merged = append(merged, parts[i].Construct(polyclip.UNION, parts[i+1]))
		}
		if len(parts)%2 == 1 {
			merged = append(merged, parts[len(parts)-1])
		}
		parts = merged
	}
	tracer().Debugf("union of %d polygons has %d contours", len(pgs), len(parts[0]))
	return &Polygon{contours: parts[0].Clone()}
}

// AsString returns a polygon in MetaPost-like notation, one contour per line.
func AsString(pg *Polygon) string {
	var s bytes.Buffer
	for i, c := range pg.contours {
		if i > 0 {
			s.WriteString(",\n")
		}
		for _, pt := range c {
			s.WriteString(fmt.Sprintf("(%.4g,%.4g) -- ", pt.X, pt.Y))
		}
		s.WriteString("cycle")
	}
	return s.String()
}

func point(p brickpath.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

// unsigned shoelace area
func contourArea(c polyclip.Contour) float64 {
	a := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return math.Abs(a) / 2
}
