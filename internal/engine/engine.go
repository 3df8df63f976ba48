package engine

import (
	"math"

	"github.com/structcalc/gobeam/internal/as1170"
	"github.com/structcalc/gobeam/internal/catalog"
)

// Unit conversions between the boundary units (kN, m, kPa, kN·m) and the
// internal millimetre/Newton space every formula is evaluated in. EI comes
// from the catalog in N·mm², so spans go to mm, point loads to N and
// moments to N·mm; a kN/m intensity is already a N/mm intensity.
const (
	mmPerM    = 1000.0
	nPerKN    = 1000.0
	nmmPerKNm = 1e6
)

// Input is one immutable analysis snapshot. The engine reads it and
// nothing else; calling Analyze twice with the same Input yields the same
// Result.
type Input struct {
	Span  float64 // m
	Loads LoadSet

	// Serviceability factors
	Ws float64 // short-term live factor
	Wl float64 // long-term live factor
	J2 float64 // creep factor, forced to 1.0 for steel

	// Section under consideration; nil means analysis is not possible yet.
	Section *catalog.Section

	// Strength combinations to scan. Defaults to as1170.ULSCombinations.
	Combinations []as1170.Combination
}

// Result holds the governing design actions and the three deflection
// categories. It is fully derived: every field is recomputed on every
// call, never patched incrementally.
type Result struct {
	InitialDeflection   float64 // dead-load deflection (mm)
	ShortTermDeflection float64 // ws-weighted live deflection (mm)
	LongTermDeflection  float64 // creep-adjusted total deflection (mm)

	MaxMoment  float64 // governing factored moment (kN·m)
	MaxShear   float64 // governing factored shear (kN)
	MomentCase string  // combination producing MaxMoment
	ShearCase  string  // combination producing MaxShear

	SelfWeight  float64 // dead UDL added for self-weight (kN/m), 0 when disabled
	EffectiveJ2 float64 // creep factor actually applied
}

// ComboAction is the factored action pair for one combination, for
// reporting every row of the combination scan.
type ComboAction struct {
	Name   string
	Moment float64 // kN·m
	Shear  float64 // kN
}

// Analyze runs one full analysis pass. It returns nil when no usable
// section is attached - analysis is meaningless without stiffness - and
// never returns a partial result. The function is pure: no caching, no
// mutation of its inputs, no hidden state between invocations.
func Analyze(in Input) *Result {
	if in.Section == nil || in.Section.E <= 0 || in.Section.Ix <= 0 {
		return nil
	}

	span := clampSpan(in.Span)
	loads := in.Loads.clamped(span)
	spanMM := span * mmPerM
	ei := in.Section.E * in.Section.Ix // N·mm²

	var sw float64 // kN/m
	if loads.includeSelfWeight() {
		sw = SelfWeight(*in.Section)
	}

	// Steel does not creep: the supplied J2 is ignored outright, not just
	// defaulted, regardless of what the catalog or caller provided.
	effJ2 := in.J2
	if in.Section.Material == catalog.Steel || effJ2 < 1 {
		effJ2 = 1
	}

	res := &Result{SelfWeight: sw, EffectiveJ2: effJ2}

	// Deflection categories. Contributions are summed algebraically so
	// opposing loads may cancel; only the category total is reported as a
	// magnitude.
	initial := deflectionSum(loads, sw, spanMM, ei, 1, 0)
	short := deflectionSum(loads, sw, spanMM, ei, 0, in.Ws)
	long := initial*effJ2 + deflectionSum(loads, sw, spanMM, ei, 0, in.Wl)*effJ2
	res.InitialDeflection = math.Abs(initial)
	res.ShortTermDeflection = math.Abs(short)
	res.LongTermDeflection = math.Abs(long)

	// Strength scan. Strictly-greater comparison: the first combination to
	// reach the maximum stays the controlling case for that action, and
	// moment and shear are tracked independently.
	for _, c := range combinations(in) {
		m, v := combinationActions(loads, sw, spanMM, c)
		if m > res.MaxMoment {
			res.MaxMoment = m
			res.MomentCase = c.Name
		}
		if v > res.MaxShear {
			res.MaxShear = v
			res.ShearCase = c.Name
		}
	}

	return res
}

// CombinationActions returns the factored moment/shear for every strength
// combination, in table order, for display alongside the governing pair.
func CombinationActions(in Input) []ComboAction {
	span := clampSpan(in.Span)
	loads := in.Loads.clamped(span)
	spanMM := span * mmPerM

	var sw float64
	if loads.includeSelfWeight() && in.Section != nil {
		sw = SelfWeight(*in.Section)
	}

	combos := combinations(in)
	out := make([]ComboAction, 0, len(combos))
	for _, c := range combos {
		m, v := combinationActions(loads, sw, spanMM, c)
		out = append(out, ComboAction{Name: c.Name, Moment: m, Shear: v})
	}
	return out
}

func combinations(in Input) []as1170.Combination {
	if len(in.Combinations) > 0 {
		return in.Combinations
	}
	return as1170.ULSCombinations
}

// combinationActions sums factored moment and shear contributions over
// every load for one combination. Zero-magnitude contributions are
// skipped. Results in kN·m and kN.
func combinationActions(loads LoadSet, sw, spanMM float64, c as1170.Combination) (float64, float64) {
	var m, v float64 // N·mm, N

	for _, u := range loads.UDLs {
		w := c.Factor(u.Dead, u.Live)
		if w == 0 {
			continue
		}
		a, b := u.Start*mmPerM, u.Finish*mmPerM
		m += udlMoment(w, a, b, spanMM)
		v += udlShear(w, a, b, spanMM)
	}
	for _, t := range loads.Tributary {
		w := c.Factor(t.Dead*t.Width, t.Live*t.Width)
		if w == 0 {
			continue
		}
		m += udlMoment(w, 0, spanMM, spanMM)
		v += udlShear(w, 0, spanMM, spanMM)
	}
	// Self-weight rides along as an extra full-span dead UDL, summed with
	// any tributary dead load rather than replacing it.
	if sw != 0 && c.Dead != 0 {
		w := sw * c.Dead
		m += udlMoment(w, 0, spanMM, spanMM)
		v += udlShear(w, 0, spanMM, spanMM)
	}
	for _, p := range loads.Points {
		pn := c.Factor(p.Dead, p.Live) * nPerKN
		if pn == 0 {
			continue
		}
		a := p.Location * mmPerM
		m += pointMoment(pn, a, spanMM)
		v += pointShear(pn, a, spanMM)
	}
	for _, am := range loads.Moments {
		mu := c.Factor(am.Dead, am.Live) * nmmPerKNm
		if mu == 0 {
			continue
		}
		// An applied moment adds its factored magnitude to the bending
		// demand; it has no shear formula in this method.
		m += math.Abs(mu)
	}

	return m / nmmPerKNm, v / nPerKN
}

// deflectionSum adds the deflection contribution of every load, each
// weighted by the given dead/live factors, in mm.
func deflectionSum(loads LoadSet, sw, spanMM, ei, deadF, liveF float64) float64 {
	var total float64

	for _, u := range loads.UDLs {
		w := deadF*u.Dead + liveF*u.Live
		total += udlDeflection(w, u.Start*mmPerM, u.Finish*mmPerM, spanMM, ei)
	}
	for _, t := range loads.Tributary {
		w := deadF*t.Dead*t.Width + liveF*t.Live*t.Width
		total += udlDeflection(w, 0, spanMM, spanMM, ei)
	}
	if sw != 0 && deadF != 0 {
		total += udlDeflection(sw*deadF, 0, spanMM, spanMM, ei)
	}
	for _, p := range loads.Points {
		pn := (deadF*p.Dead + liveF*p.Live) * nPerKN
		total += pointDeflection(pn, p.Location*mmPerM, spanMM, ei)
	}
	for _, am := range loads.Moments {
		mu := (deadF*am.Dead + liveF*am.Live) * nmmPerKNm
		total += momentDeflection(mu, am.Location*mmPerM, spanMM, ei)
	}

	return total
}
