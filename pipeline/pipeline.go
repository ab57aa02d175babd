/*
Package pipeline runs one recomputation of a brick wall from a snapshot of
its inputs.

The stages are

 1. curve: interpolate the editor points and scale the curve to its target length
 2. course: distribute bricks along the curve, row by row
 3. falloff: thin out the rows relative to the anchor
 4. transform: position and orient the surviving bricks

Every call of Run is independent. A host application calls Run again
whenever one of the inputs changes, and replaces its previous Result.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/course"
	"github.com/npillmayer/brickpath/curve"
	"github.com/npillmayer/brickpath/falloff"
	"github.com/npillmayer/brickpath/polygon"
	"github.com/npillmayer/brickpath/transform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pipeline'
func tracer() tracing.Trace {
	return tracing.Select("pipeline")
}

// Default world dimensions an editor square is mapped to.
const (
	DefaultWorldWidth  = 10.0
	DefaultWorldHeight = 10.0
)

// snapshotSpace namespaces result IDs.
var snapshotSpace = uuid.MustParse("5b0f3c1e-8a4d-4f63-9a7e-2c1d0b8e6f41")

// Snapshot is a consistent set of inputs for one run.
type Snapshot struct {
	Points       []brickpath.Pair // editor points in [0,1]²
	Params       course.Params
	Anchor       *brickpath.Vec3 // nil: no falloff
	TargetLength float64         // 0: keep the length from the world dimensions
	WorldWidth   float64
	WorldHeight  float64
	Curve        curve.Options
}

// NewSnapshot returns a snapshot with default parameters and world size.
func NewSnapshot(points []brickpath.Pair) Snapshot {
	return Snapshot{
		Points:      points,
		Params:      course.DefaultParams(),
		WorldWidth:  DefaultWorldWidth,
		WorldHeight: DefaultWorldHeight,
	}
}

// Key is a canonical text form of the snapshot. Equal snapshots have equal
// keys.
func (s Snapshot) Key() string {
	var b strings.Builder
	for _, p := range s.Points {
		fmt.Fprintf(&b, "%v;", p)
	}
	fmt.Fprintf(&b, "|%v|", s.Params)
	if s.Anchor != nil {
		fmt.Fprintf(&b, "%v", *s.Anchor)
	}
	fmt.Fprintf(&b, "|%g|%g|%g|%v|%v|%d",
		s.TargetLength, s.WorldWidth, s.WorldHeight, s.Curve.Kind, s.Curve.Closed, s.Curve.Divisions)
	return b.String()
}

// ID identifies the snapshot. It is derived from Key, so a recomputation
// from equal inputs carries the same ID.
func (s Snapshot) ID() uuid.UUID {
	return uuid.NewSHA1(snapshotSpace, []byte(s.Key()))
}

// Stats counts bricks and measures the run.
type Stats struct {
	Placed   int // before falloff
	Kept     int
	Duration time.Duration
}

// Result holds everything derived from a snapshot.
type Result struct {
	ID         uuid.UUID
	Curve      *curve.Curve
	Placements []course.Placement // all placements
	Kept       []course.Placement // placements surviving the falloff
	Transforms []transform.Transform
	Rows       []course.RowSummary
	Stats      Stats
}

// Run derives the brick wall for a snapshot. It fails if the parameters are
// invalid or the points do not describe a curve; in the latter case the
// error wraps curve.ErrTooFewPoints or curve.ErrInvalidPoint, and callers
// are expected to skip the update.
func Run(s Snapshot) (*Result, error) {
	start := time.Now()
	if err := s.Params.Validate(); err != nil {
		return nil, err
	}
	c, err := curve.BuildToLength(s.Points, s.WorldWidth, s.WorldHeight, s.TargetLength, s.Curve)
	if err != nil {
		if errors.Is(err, curve.ErrTooFewPoints) {
			tracer().Debugf("skipping recomputation: %v", err)
		}
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	r := &Result{ID: s.ID(), Curve: c}
	r.Placements = course.Compute(c, s.Params)
	r.Kept = falloff.Apply(r.Placements, s.Params, c, s.Anchor)
	r.Transforms = transform.Map(c, r.Kept, s.Params)
	r.Rows = course.Summarize(r.Placements, r.Kept, s.Params.Rows)
	r.Stats = Stats{
		Placed:   len(r.Placements),
		Kept:     len(r.Kept),
		Duration: time.Since(start),
	}
	tracer().P("id", r.ID.String()[:8]).Infof("curve length %.4f, %d of %d bricks kept",
		c.Length(), r.Stats.Kept, r.Stats.Placed)
	return r, nil
}

// Outline unites the footprints of the kept bricks of a row, or of all rows
// for polygon.AllRows.
func (r *Result) Outline(row int) *polygon.Polygon {
	return polygon.Plan(r.Transforms, row)
}
