package spline

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func mustFindControls(t *testing.T, path *Path, kind Kind) *Controls {
	t.Helper()
	c, err := FindControls(path, kind, nil)
	if err != nil {
		t.Fatalf("FindControls failed: %v", err)
	}
	return c
}

func testpath() *Path {
	return Nullpath().Knot(brickpath.P(1, 1)).Knot(brickpath.P(2, 2)).
		Knot(brickpath.P(3, 1)).Knot(brickpath.P(5, 1.5)).End()
}

func near(a, b brickpath.Pair, tol float64) bool {
	return (a - b).Abs() <= tol
}

func TestSliceEnlargement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arr := make([]brickpath.Pair, 0)
	arr = extendC(arr, 3, 2+1i)
	if arr[3] != 2+1i {
		t.Fail()
	}
	if getC(arr, 7, 5) != 5 || getC(arr, -1, 5) != 5 {
		t.Fail()
	}
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	if path.N() != 4 || path.SegmentCount() != 3 {
		t.Errorf("expected 4 knots and 3 segments, have %d and %d", path.N(), path.SegmentCount())
	}
	path.Cycle()
	if path.SegmentCount() != 4 {
		t.Errorf("expected cycle to have 4 segments, has %d", path.SegmentCount())
	}
}

func TestPadding(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath().Cycle()
	if path.Z(1) != path.Z(path.N()+1) || path.Z(-1) != path.Z(path.N()-1) {
		t.Fail()
	}
}

func TestThroughCopiesKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []brickpath.Pair{brickpath.P(0, 0), brickpath.P(1, 0)}
	path := Through(pts)
	pts[0] = brickpath.P(9, 9)
	if path.Z(0) != brickpath.P(0, 0) {
		t.Errorf("expected path to own its knots")
	}
}

func TestAsStringSnapshots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	openPath := Nullpath().
		Knot(brickpath.P(1, 1)).
		Knot(brickpath.P(2, 2)).
		Knot(brickpath.P(3, 1)).End()
	if got, want := AsString(openPath, nil), "(1,1) .. (2,2) .. (3,1)"; got != want {
		t.Fatalf("open AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	cyclePath := Nullpath().
		Knot(brickpath.P(1, 1)).
		Knot(brickpath.P(2, 2)).
		Knot(brickpath.P(3, 1)).
		Knot(brickpath.P(2, 0)).Cycle()
	if got, want := AsString(cyclePath, nil), "(1,1) .. (2,2) .. (3,1) .. (2,0) .. cycle"; got != want {
		t.Fatalf("cycle AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var nilpath *Path
	if err := nilpath.ValidateForSolve(); !errors.Is(err, ErrNilPath) {
		t.Errorf("expected ErrNilPath, got %v", err)
	}
	if _, err := FindControls(Nullpath().Knot(1).End(), Centripetal, nil); !errors.Is(err, ErrTooFewKnots) {
		t.Errorf("expected ErrTooFewKnots, got %v", err)
	}
	if _, err := FindControls(Nullpath().Knot(0).Knot(1).Cycle(), Centripetal, nil); !errors.Is(err, ErrTooFewKnots) {
		t.Errorf("expected ErrTooFewKnots for short cycle, got %v", err)
	}
	nan := brickpath.P(math.NaN(), 0)
	if _, err := FindControls(Nullpath().Knot(0).Knot(nan).End(), Centripetal, nil); !errors.Is(err, ErrInvalidKnot) {
		t.Errorf("expected ErrInvalidKnot, got %v", err)
	}
	dup := Nullpath().Knot(0).Knot(1).Knot(1).Knot(2).End()
	if _, err := FindControls(dup, Centripetal, nil); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("expected ErrDegenerateSegment, got %v", err)
	}
	mustPanic(t, func() { MustFindControls(dup, Centripetal, nil) })
}

func TestParseKind(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, k := range []Kind{Centripetal, Chordal, Uniform} {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("expected %v to parse back, got %v (%v)", k, parsed, err)
		}
	}
	if k, err := ParseKind(""); err != nil || k != Centripetal {
		t.Errorf("expected empty name to select centripetal")
	}
	if _, err := ParseKind("hobby"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
	if Centripetal.Alpha() != 0.5 || Chordal.Alpha() != 1 || Uniform.Alpha() != 0 {
		t.Errorf("unexpected alpha values")
	}
}

func TestStraightLineControlsAtThirds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(brickpath.P(0, 0)).Knot(brickpath.P(3, 0)).Knot(brickpath.P(6, 0)).End()
	for _, kind := range []Kind{Centripetal, Chordal, Uniform} {
		controls := mustFindControls(t, path, kind)
		if !near(controls.PostControl(0), brickpath.P(1, 0), 1e-9) {
			t.Errorf("%v: expected post control (1,0), is %v", kind, controls.PostControl(0))
		}
		if !near(controls.PreControl(1), brickpath.P(2, 0), 1e-9) {
			t.Errorf("%v: expected pre control (2,0), is %v", kind, controls.PreControl(1))
		}
		if !near(controls.PreControl(2), brickpath.P(5, 0), 1e-9) {
			t.Errorf("%v: expected pre control (5,0), is %v", kind, controls.PreControl(2))
		}
	}
}

func TestInterpolatesKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, path := range []*Path{testpath(), testpath().Cycle()} {
		controls := mustFindControls(t, path, Centripetal)
		segs := Segments(path, controls)
		for i, seg := range segs {
			if !near(seg.Point(0), path.Z(i), 1e-12) || !near(seg.Point(1), path.Z(i+1), 1e-12) {
				t.Errorf("segment %d does not interpolate its knots", i)
			}
		}
	}
}

func TestTangentContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	segs := Segments(path, mustFindControls(t, path, Centripetal))
	for i := 0; i+1 < len(segs); i++ {
		in, out := segs[i].Derivative(1), segs[i+1].Derivative(0)
		if math.Abs(in.Angle()-out.Angle()) > 1e-9 {
			t.Errorf("tangent direction jumps at knot %d: %v vs %v", i+1, in, out)
		}
	}
}

func TestLocate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		t    float64
		i    int
		w    float64
		segs int
	}{
		{0, 0, 0, 3}, {0.5, 1, 0.5, 3}, {1, 2, 1, 3}, {2, 2, 1, 3}, {-1, 0, 0, 3}, {0.3, 0, 0, 0},
	}
	for _, c := range cases {
		i, w := Locate(c.t, c.segs)
		if i != c.i || math.Abs(w-c.w) > 1e-12 {
			t.Errorf("Locate(%g, %d) = %d, %g; expected %d, %g", c.t, c.segs, i, w, c.i, c.w)
		}
	}
}

// Build a smooth open path through three knots and print it with its
// Bézier control points.
func ExampleFindControls() {
	path := Nullpath().Knot(brickpath.P(0, 0)).Knot(brickpath.P(3, 0)).Knot(brickpath.P(6, 0)).End()
	controls, err := FindControls(path, Centripetal, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(AsString(path, controls))
	// Output:
	// (0,0) .. controls (1.0000,0.0000) and (2.0000,0.0000)
	//   .. (3,0) .. controls (4.0000,0.0000) and (5.0000,0.0000)
	//   .. (6,0)
}
