package brickpath

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Clamp(3, 0, 1) != 1 || Clamp(-3, 0, 1) != 0 {
		t.Errorf("Expected clamp to [0,1]")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Errorf("Expected NaN and -Inf to be non-finite")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	if c := Centroid([]Pair{P(0, 0), P(2, 0), P(2, 2), P(0, 2)}); !c.Equal(P(1, 1)) {
		t.Errorf("Expected centroid (1,1), is %v", c)
	}
	if c := Centroid(nil); !c.Equal(Origin) {
		t.Errorf("Expected centroid of nothing to be origin, is %v", c)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Translation(P(-1, -1)).Transform(P(1, 1)).Zap().Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	m := Rotation(180 * Deg2Rad).Combine(Translation(P(1, 0)))
	if z := m.Transform(P(1, 0)).Zap(); !z.Equal(Origin) {
		t.Errorf("Expected result to be origin, is %v", z)
	}
}

func TestScalingCombined(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Scaling(2, -1).Combine(Translation(P(10, 10)))
	pts := m.TransformAll([]Pair{P(1, 1), P(0, 0)})
	if !pts[0].Equal(P(12, 9)) || !pts[1].Equal(P(10, 10)) {
		t.Errorf("Expected (12,9) and (10,10), have %v", pts)
	}
}

func TestRotationBetween(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, to := range []Vec3{
		V(1, 0, 0), V(0, 0, 1), V(0, 0, -1), V(-1, 0, 0), V(1, 0, 1).Normalized(),
	} {
		q := RotationBetween(XAxis, to)
		r := q.Rotate(XAxis)
		if r.Sub(to).Len() > 1e-9 {
			t.Errorf("Expected X rotated onto %v, is %v", to, r)
		}
	}
	if !RotationBetween(XAxis, XAxis).Equal(IdentityRotation) {
		t.Errorf("Expected identity rotation for equal vectors")
	}
}

func TestVecFlat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := V(3, 5, 4).Flat()
	if v.Y != 0 || v.Len() != 5 {
		t.Errorf("Expected flat vector of length 5, is %v", v)
	}
	if !v.Plan().Equal(P(3, 4)) {
		t.Errorf("Expected plan (3,4), is %v", v.Plan())
	}
	if (Vec3{}).Normalized() != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero")
	}
}
