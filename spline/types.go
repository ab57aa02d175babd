package spline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

const _epsilon = 0.0000001

// Knot intervals below this are considered collapsed.
const _minInterval = 0.0001

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewKnots indicates path knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
	// ErrUnknownKind indicates an unsupported parameterization name.
	ErrUnknownKind = errors.New("unknown spline kind")
)

// Kind selects the knot parameterization of a Catmull-Rom spline. The
// parameter interval between knots z.i and z.[i+1] is |z.[i+1]-z.i|^alpha.
type Kind int

const (
	// Centripetal uses alpha = 0.5. It never produces cusps or
	// self-intersections within a segment.
	Centripetal Kind = iota
	// Chordal uses alpha = 1.
	Chordal
	// Uniform uses alpha = 0, i.e. the classic Catmull-Rom spline with
	// tension 0.5.
	Uniform
)

// Alpha returns the exponent used for knot intervals.
func (k Kind) Alpha() float64 {
	switch k {
	case Chordal:
		return 1.0
	case Uniform:
		return 0.0
	}
	return 0.5
}

func (k Kind) String() string {
	switch k {
	case Centripetal:
		return "centripetal"
	case Chordal:
		return "chordal"
	case Uniform:
		return "uniform"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind for a name as printed by Kind.String.
// The empty string selects Centripetal.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "centripetal":
		return Centripetal, nil
	case "chordal":
		return Chordal, nil
	case "uniform":
		return Uniform, nil
	}
	return Centripetal, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Path is the concrete type for building Catmull-Rom splines.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points   []brickpath.Pair // point i
	cycle    bool             // is this path cyclic ?
	Controls *Controls        // control points to be calculated
}

// Controls collects calculated spline control points. Between knots z.i
// and z.[i+1] the spline is the cubic Bézier curve
//
//	z.i .. controls PostControl(i) and PreControl(i+1) .. z.[i+1]
type Controls struct {
	prec  []brickpath.Pair // control point i-, to be calculated
	postc []brickpath.Pair // control point i+, to be calculated
}
