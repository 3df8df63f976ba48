package engine

import "math"

// Deflection formulas for a simply-supported beam. All arguments are in
// the internal millimetre/Newton space: positions and span in mm, UDL
// intensities in N/mm, point loads in N, moments in N·mm, ei in N·mm².
// Results are midspan/critical-point deflections in mm.

// udlDeflection returns the deflection contribution of a distributed load
// over [a, b]. The full-span case is the closed form 5wL⁴/384EI; partial
// loads use the Macaulay double-integration solution evaluated at midspan,
// with the absolute value taken since the integration sign carries no
// physical meaning here.
func udlDeflection(w, a, b, span, ei float64) float64 {
	if w == 0 || b <= a || ei <= 0 {
		return 0
	}
	if a <= 0 && b >= span {
		return 5 * w * math.Pow(span, 4) / (384 * ei)
	}
	return math.Abs(partialUDLDeflection(w, a, b, span, ei, span/2))
}

// partialUDLDeflection evaluates the Macaulay deflection curve for a UDL
// over [a, b] at position x.
//
//	EI·v(x) = R1·x³/6 − w·⟨x−a⟩⁴/24 + w·⟨x−b⟩⁴/24 + C1·x
//
// with C1 fixed by v(L) = 0.
func partialUDLDeflection(w, a, b, span, ei, x float64) float64 {
	r1 := w * (b - a) * (span - (a+b)/2) / span
	c1 := -(r1*math.Pow(span, 3)/6 - w*math.Pow(span-a, 4)/24 + w*math.Pow(span-b, 4)/24) / span
	v := r1*math.Pow(x, 3)/6 - w*math.Pow(macaulay(x-a), 4)/24 + w*math.Pow(macaulay(x-b), 4)/24 + c1*x
	return v / ei
}

// macaulay is the singularity-function bracket ⟨x⟩ = max(x, 0).
func macaulay(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// pointDeflection returns the deflection contribution of a point load P
// at distance a from the left support: P·a·b·(L+b−a)/(6·EI·L) with
// b = L − a.
func pointDeflection(p, a, span, ei float64) float64 {
	if p == 0 || ei <= 0 {
		return 0
	}
	b := span - a
	return p * a * b * (span + b - a) / (6 * ei * span)
}

// PointLoadPeakPosition returns the location (m from the left support) of
// the maximum deflection caused by a point load at location (m). Used only
// for reporting; the magnitude formula does not need it.
func PointLoadPeakPosition(location, span float64) float64 {
	return pointMaxDeflectionX(location*mmPerM, span*mmPerM) / mmPerM
}

// pointMaxDeflectionX is the mm-space form of PointLoadPeakPosition.
func pointMaxDeflectionX(a, span float64) float64 {
	b := span - a
	if a >= b {
		// load in the right half: x = √((L²−b²)/3) from the left
		return math.Sqrt((span*span - b*b) / 3)
	}
	// mirrored for a load in the left half
	return span - math.Sqrt((span*span-a*a)/3)
}

// momentDeflection returns the deflection contribution of an applied
// moment M at distance a: M·a·b²/(6·EI·L), with a and b swapped when the
// moment sits past midspan.
func momentDeflection(m, a, span, ei float64) float64 {
	if m == 0 || ei <= 0 {
		return 0
	}
	b := span - a
	if a <= span/2 {
		return m * a * b * b / (6 * ei * span)
	}
	return m * b * a * a / (6 * ei * span)
}
