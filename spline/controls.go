package spline

import (
	"math/cmplx"

	"github.com/npillmayer/brickpath"
)

// SetPreControl sets the control point before knot i.
func (ctrls *Controls) SetPreControl(i int, c brickpath.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, brickpath.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

// SetPostControl sets the control point after knot i.
func (ctrls *Controls) SetPostControl(i int, c brickpath.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, brickpath.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

// PreControl is the control point before knot i, or NaN if unknown.
func (ctrls *Controls) PreControl(i int) brickpath.Pair {
	return getC(ctrls.prec, i, brickpath.Pair(cmplx.NaN()))
}

// PostControl is the control point after knot i, or NaN if unknown.
func (ctrls *Controls) PostControl(i int) brickpath.Pair {
	return getC(ctrls.postc, i, brickpath.Pair(cmplx.NaN()))
}
