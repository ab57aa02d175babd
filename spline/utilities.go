package spline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/brickpath"
)

// Parameter interval between two knots, |b-a|^alpha.
func knotInterval(a, b brickpath.Pair, alpha float64) float64 {
	return math.Pow(cmplx.Abs((b - a).C()), alpha)
}

// Tangents at z.i and z.[i+1] for segment i, given the neighbouring knots
// p0..p3 and their intervals. Tangents are scaled for a segment parameter
// running from 0 to 1.
func tangents(p0, p1, p2, p3 brickpath.Pair, dt0, dt1, dt2 float64) (brickpath.Pair, brickpath.Pair) {
	if dt1 < _minInterval {
		dt1 = 1.0
	}
	if dt0 < _minInterval {
		dt0 = dt1
	}
	if dt2 < _minInterval {
		dt2 = dt1
	}
	m1 := (p1-p0).Scaled(1/dt0) - (p2-p0).Scaled(1/(dt0+dt1)) + (p2-p1).Scaled(1/dt1)
	m2 := (p2-p1).Scaled(1/dt1) - (p3-p1).Scaled(1/(dt1+dt2)) + (p3-p2).Scaled(1/dt2)
	return m1.Scaled(dt1), m2.Scaled(dt1)
}

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []brickpath.Pair, i int, deflt brickpath.Pair) []brickpath.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]brickpath.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []brickpath.Pair, i int, deflt brickpath.Pair) brickpath.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

func ptstring(p brickpath.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
