package engine

import "math"

// Curves holds sampled response curves along the span for diagram
// rendering. X is in metres; Moment in kN·m, Shear in kN, Deflection in
// mm. The curves are built from the exact statically-determinate Macaulay
// expressions so the plots are smooth; the governing actions reported by
// Analyze use the published simplified formulas and may differ slightly
// for partial loads.
type Curves struct {
	X          []float64
	Moment     []float64
	Shear      []float64
	Deflection []float64
}

// SampleCurves samples factored moment/shear for one combination and the
// unfactored dead-load deflected shape at n+1 stations along the span.
func SampleCurves(in Input, comboIdx, n int) Curves {
	if n < 2 {
		n = 2
	}
	span := clampSpan(in.Span)
	loads := in.Loads.clamped(span)
	spanMM := span * mmPerM

	combos := combinations(in)
	if comboIdx < 0 || comboIdx >= len(combos) {
		comboIdx = 0
	}
	c := combos[comboIdx]

	var sw float64
	if loads.includeSelfWeight() && in.Section != nil {
		sw = SelfWeight(*in.Section)
	}
	var ei float64
	if in.Section != nil {
		ei = in.Section.E * in.Section.Ix
	}

	cv := Curves{
		X:          make([]float64, n+1),
		Moment:     make([]float64, n+1),
		Shear:      make([]float64, n+1),
		Deflection: make([]float64, n+1),
	}
	for i := 0; i <= n; i++ {
		x := spanMM * float64(i) / float64(n)
		cv.X[i] = x / mmPerM

		var m, v, d float64
		for _, u := range loads.UDLs {
			a, b := u.Start*mmPerM, u.Finish*mmPerM
			wf := c.Factor(u.Dead, u.Live)
			mm, vv := udlActionsAt(wf, a, b, spanMM, x)
			m += mm
			v += vv
			if ei > 0 {
				d += partialUDLDeflection(u.Dead, a, b, spanMM, ei, x)
			}
		}
		for _, t := range loads.Tributary {
			wf := c.Factor(t.Dead*t.Width, t.Live*t.Width)
			mm, vv := udlActionsAt(wf, 0, spanMM, spanMM, x)
			m += mm
			v += vv
			if ei > 0 {
				d += partialUDLDeflection(t.Dead*t.Width, 0, spanMM, spanMM, ei, x)
			}
		}
		if sw != 0 {
			mm, vv := udlActionsAt(sw*c.Dead, 0, spanMM, spanMM, x)
			m += mm
			v += vv
			if ei > 0 {
				d += partialUDLDeflection(sw, 0, spanMM, spanMM, ei, x)
			}
		}
		for _, p := range loads.Points {
			a := p.Location * mmPerM
			pf := c.Factor(p.Dead, p.Live) * nPerKN
			mm, vv := pointActionsAt(pf, a, spanMM, x)
			m += mm
			v += vv
			if ei > 0 {
				d += pointDeflectionAt(p.Dead*nPerKN, a, spanMM, ei, x)
			}
		}
		for _, am := range loads.Moments {
			a := am.Location * mmPerM
			mf := c.Factor(am.Dead, am.Live) * nmmPerKNm
			mm, vv := momentActionsAt(mf, a, spanMM, x)
			m += mm
			v += vv
		}

		cv.Moment[i] = m / nmmPerKNm
		cv.Shear[i] = v / nPerKN
		cv.Deflection[i] = d
	}
	return cv
}

func udlActionsAt(w, a, b, span, x float64) (moment, shear float64) {
	if w == 0 || b <= a {
		return 0, 0
	}
	r1 := w * (b - a) * (span - (a+b)/2) / span
	shear = r1 - w*(macaulay(x-a)-macaulay(x-b))
	moment = r1*x - w*(math.Pow(macaulay(x-a), 2)-math.Pow(macaulay(x-b), 2))/2
	return moment, shear
}

func pointActionsAt(p, a, span, x float64) (moment, shear float64) {
	if p == 0 {
		return 0, 0
	}
	r1 := p * (span - a) / span
	shear = r1
	if x > a {
		shear -= p
	}
	moment = r1*x - p*macaulay(x-a)
	return moment, shear
}

func momentActionsAt(m0, a, span, x float64) (moment, shear float64) {
	if m0 == 0 {
		return 0, 0
	}
	r1 := -m0 / span
	shear = r1
	moment = r1 * x
	if x >= a {
		moment += m0
	}
	return moment, shear
}

// pointDeflectionAt evaluates the Macaulay deflection curve of a point
// load at position x, for plotting the deflected shape.
func pointDeflectionAt(p, a, span, ei, x float64) float64 {
	if p == 0 || ei <= 0 {
		return 0
	}
	r1 := p * (span - a) / span
	c1 := -(r1*math.Pow(span, 3)/6 - p*math.Pow(span-a, 3)/6) / span
	v := r1*math.Pow(x, 3)/6 - p*math.Pow(macaulay(x-a), 3)/6 + c1*x
	return v / ei
}
