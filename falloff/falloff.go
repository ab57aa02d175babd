/*
Package falloff thins out the courses of a wall relative to an anchor point.

The anchor is projected onto the curve. In every row but the first, a
contiguous run of bricks around the brick closest to the projected anchor
is selected. The share of bricks kept shrinks linearly with the row index,
so the wall tapers off towards its top like a triangle standing on row 0.

With Params.Flip unset the run around the anchor is kept. With Flip set it
is removed instead, and the bricks at both ends of the row remain.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package falloff

import (
	"math"
	"sort"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/course"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'falloff'
func tracer() tracing.Trace {
	return tracing.Select("falloff")
}

// Resolution is the number of steps used to project the anchor onto the
// curve.
const Resolution = 256

// Fractions at or above this keep a row completely.
const fullRow = 0.999

// Projector finds the point on a curve closest to a point in space, usually
// a *curve.Curve. It returns the arc-length fraction and the distance along
// the curve.
type Projector interface {
	Project(p brickpath.Vec3, resolution int) (float64, float64)
}

// KeepFraction is the share of bricks kept in a row, 1 - strength·row/(rows-1).
// strength is clamped to [0,1]. Row 0 and walls of a single row are kept
// completely.
func KeepFraction(row, rows int, strength float64) float64 {
	if rows <= 1 || row <= 0 {
		return 1
	}
	s := brickpath.Clamp(strength, 0, 1)
	return 1 - s*float64(row)/float64(rows-1)
}

// KeepCount is the number of bricks kept in a row of n bricks for a given
// keep fraction. At least one brick survives in a non-empty row.
func KeepCount(n int, fraction float64) int {
	if fraction >= fullRow {
		return n
	}
	k := int(math.Round(float64(n) * fraction))
	return min(max(k, 1), n)
}

// Apply thins out placements. It returns placements unchanged if the
// falloff strength is not positive, there is no anchor, or the wall has a
// single row. Otherwise the result is ordered by row, and by distance within
// each row.
func Apply(placements []course.Placement, p course.Params, c Projector,
	anchor *brickpath.Vec3) []course.Placement {
	//
	if p.Falloff <= 0 || anchor == nil || p.Rows <= 1 {
		return placements
	}
	_, anchorDist := c.Project(*anchor, Resolution)
	tracer().P("op", "falloff").Debugf("anchor %v projects to distance %.4f", *anchor, anchorDist)
	kept := make([]course.Placement, 0, len(placements))
	rows := course.ByRow(placements)
	for it := rows.Iterator(); it.Next(); {
		r := it.Key().(int)
		row := sortedRow(it.Value().([]course.Placement))
		n := len(row)
		k := KeepCount(n, KeepFraction(r, p.Rows, p.Falloff))
		if k == n {
			kept = append(kept, row...)
			continue
		}
		closest := closestIndex(row, anchorDist)
		if p.Flip {
			start, end := window(n, n-k, closest)
			kept = append(kept, row[:start]...)
			kept = append(kept, row[end:]...)
		} else {
			start, end := window(n, k, closest)
			kept = append(kept, row[start:end]...)
		}
		tracer().Debugf("row %d: keeping %d of %d around #%d", r, k, n, closest)
	}
	return kept
}

func sortedRow(row []course.Placement) []course.Placement {
	sorted := make([]course.Placement, len(row))
	copy(sorted, row)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Distance < sorted[j].Distance
	})
	return sorted
}

// Index of the placement closest to distance d. The first one wins on ties.
func closestIndex(row []course.Placement, d float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, pl := range row {
		if dist := math.Abs(pl.Distance - d); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// window returns [start,end) of a run of size elements out of n, centered
// on index center as far as the row ends permit.
func window(n, size, center int) (int, int) {
	start := center - (size-1)/2
	start = min(max(start, 0), n-size)
	return start, start + size
}
