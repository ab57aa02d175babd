// Package spline interpolates a sequence of knots with a Catmull-Rom spline
// and expresses the result as a chain of cubic Bézier segments.
/*

A Catmull-Rom spline passes through every knot of a path, in order, and is
C¹-continuous at the knots. The tangent at a knot depends on its two
neighbours and on the parameter intervals between them. With intervals of
|z.[i+1]-z.i|^alpha we get the family described in

   On the Parameterization of Catmull-Rom Curves
   Cem Yuksel, Scott Schaefer, John Keyser
   2009 SIAM/ACM Joint Conference on Geometric and Physical Modeling

alpha = 0.5 ("centripetal") is the default. It never forms cusps or loops
within a segment and follows the knots tightly. Open paths are extended at
both ends by mirroring the neighbouring knot across the end knot.

Usage

Clients build a "skeleton" path and let FindControls(...) compute the
control points:

   path := Nullpath().Knot(P(0,0)).Knot(P(2,3)).Knot(P(5,3)).End()
   controls, err := FindControls(path, Centripetal, nil)

Segments(path, controls) then returns the Bézier segments for evaluation.
AsString prints a path in a notation close to MetaPost's:

   (0,0) .. controls (x,y) and (x,y)
    .. (2,3) .. controls (x,y) and (x,y)
    .. (5,3)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import "fmt"

// AsString returns
// a path -- optionally including spline control points -- as a (debugging)
// string. The string contains newlines if control point information is present.
// Otherwise it will include the knot coordinates in one line.
func AsString(path *Path, contr *Controls) string {
	var s string
	for i := 0; i < path.N(); i++ {
		pt := path.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && (i < path.N()-1 || path.IsCycle()) {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	if path.IsCycle() {
		if contr != nil {
			s += fmt.Sprintf(" and %s\n ", ptstring(contr.PreControl(0), true))
		}
		s += " .. cycle"
	}
	return s
}
