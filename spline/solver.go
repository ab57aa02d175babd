package spline

import (
	"fmt"
	"math/cmplx"
)

// ValidateForSolve checks if a path is solvable by Catmull-Rom interpolation.
func (path *Path) ValidateForSolve() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if path.IsCycle() {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs at least 3 knots, got %d", ErrTooFewKnots, n)
		}
	} else if n < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		if !path.points[i].IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < path.SegmentCount(); i++ {
		j := (i + 1) % n
		if cmplx.Abs((path.points[j] - path.points[i]).C()) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}

// FindControls finds the Bézier control points of the Catmull-Rom spline
// of the given kind through the knots of path.
// Clients may provide a container for the spline control points. If none
// is provided, i.e. controls == nil, this function will allocate one.
// It validates the path and returns an error for empty/invalid geometry.
//
// FindControls will trace the calculated final path using log-level INFO.
func FindControls(path *Path, kind Kind, controls *Controls) (*Controls, error) {
	if err := path.ValidateForSolve(); err != nil {
		return nil, err
	}
	if controls == nil {
		controls = &Controls{}
	}
	alpha := kind.Alpha()
	n := path.N()
	for i := 0; i < path.SegmentCount(); i++ {
		p0, p1, p2, p3 := path.neighbours(i)
		dt0 := knotInterval(p0, p1, alpha)
		dt1 := knotInterval(p1, p2, alpha)
		dt2 := knotInterval(p2, p3, alpha)
		m1, m2 := tangents(p0, p1, p2, p3, dt0, dt1, dt2)
		tracer().Debugf("segment %d: dt = %.4g, %.4g, %.4g", i, dt0, dt1, dt2)
		controls.SetPostControl(i, p1+m1.Scaled(1.0/3))
		controls.SetPreControl((i+1)%n, p2-m2.Scaled(1.0/3))
	}
	tracer().P("kind", kind.String()).Infof("%s", AsString(path, controls))
	return controls, nil
}

// MustFindControls is a helper which panics on validation errors.
func MustFindControls(path *Path, kind Kind, controls *Controls) *Controls {
	c, err := FindControls(path, kind, controls)
	if err != nil {
		panic(err)
	}
	return c
}
