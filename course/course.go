/*
Package course distributes bricks along a curve, course by course.

Every row is tiled greedily with bricks of fixed length, starting at the
beginning of the curve. Odd rows start half a brick later (running bond), so
vertical joints of neighbouring rows never line up. Bricks are not
stretched and the remainder at the end of a row stays empty.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package course

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'course'
func tracer() tracing.Trace {
	return tracing.Select("course")
}

// Placement identifies a candidate brick by the distance of its center
// from the start of the curve, measured along the curve, and its row.
type Placement struct {
	Distance float64
	Row      int
}

func (pl Placement) String() string {
	return fmt.Sprintf("<row %d @ %.4g>", pl.Row, pl.Distance)
}

// Measured is anything with an arc length, usually a *curve.Curve.
type Measured interface {
	Length() float64
}

// Offset returns the stagger of a row: half a brick for odd rows, nothing
// for even ones.
func Offset(row int, brickLength float64) float64 {
	if row%2 == 1 {
		return brickLength / 2
	}
	return 0
}

// Compute returns the placements of all rows, row after row, each row in
// ascending order of distance. If c has no positive, finite length, the
// result is empty.
func Compute(c Measured, p Params) []Placement {
	total := c.Length()
	if !(total > 0) || math.IsInf(total, 0) {
		tracer().Infof("no placements for curve length %g", total)
		return nil
	}
	if !(p.Length > 0) {
		return nil
	}
	var placements []Placement
	for row := 0; row < p.Rows; row++ {
		offset := Offset(row, p.Length)
		usable := math.Max(total-offset, p.Length)
		count := max(1, int(math.Floor(usable/p.Length)))
		for i := 0; i < count; i++ {
			d := offset + (float64(i)+0.5)*p.Length
			if d > total {
				continue
			}
			placements = append(placements, Placement{Distance: d, Row: row})
		}
	}
	tracer().Debugf("%d placements in %d rows along %.4f", len(placements), p.Rows, total)
	return placements
}
