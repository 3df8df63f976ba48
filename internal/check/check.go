// Package check compares analysis results against deflection limits and
// section capacities. Pure presentation logic: it evaluates, it never
// recomputes.
package check

import (
	"math"

	"github.com/structcalc/gobeam/internal/capacity"
	"github.com/structcalc/gobeam/internal/engine"
)

// LimitRule is one deflection limit: a span-ratio divisor and/or an
// absolute cap in mm. When both are set the governing allowable is the
// smaller of the two; a zero rule means the category is not checked.
type LimitRule struct {
	SpanRatio float64 `yaml:"span_ratio"`
	Absolute  float64 `yaml:"absolute_mm"`
}

// Allowable returns the governing deflection limit (mm) for a span in
// metres, or 0 when the rule is empty.
func (r LimitRule) Allowable(span float64) float64 {
	var fromRatio, abs float64
	if r.SpanRatio > 0 {
		fromRatio = span * 1000 / r.SpanRatio
	}
	abs = r.Absolute

	switch {
	case fromRatio > 0 && abs > 0:
		return math.Min(fromRatio, abs)
	case fromRatio > 0:
		return fromRatio
	default:
		return abs
	}
}

// Limits holds one rule per deflection category.
type Limits struct {
	Initial   LimitRule `yaml:"initial"`
	ShortTerm LimitRule `yaml:"short_term"`
	LongTerm  LimitRule `yaml:"long_term"`
}

// DefaultLimits are the usual serviceability ratios for floor members.
var DefaultLimits = Limits{
	Initial:   LimitRule{SpanRatio: 300},
	ShortTerm: LimitRule{SpanRatio: 250},
	LongTerm:  LimitRule{SpanRatio: 200},
}

// Item is one pass/fail row of the design check.
type Item struct {
	Name        string
	Actual      float64
	Allowable   float64
	Unit        string
	Checked     bool // false when no limit/capacity was available
	Pass        bool
	Utilization float64 // Actual/Allowable, 0 when unchecked
}

// Report is the full design check for one beam.
type Report struct {
	Items []Item
	Pass  bool // true when every checked item passes
}

// Evaluate builds the design check report from an analysis result, the
// section capacities and the deflection limits. A nil result (no section
// selected) yields an empty, non-passing report.
func Evaluate(res *engine.Result, cap capacity.Capacity, span float64, lim Limits) Report {
	if res == nil {
		return Report{}
	}

	items := []Item{
		item("Bending moment", res.MaxMoment, cap.PhiM, "kN·m"),
		item("Shear force", res.MaxShear, cap.PhiV, "kN"),
		item("Initial deflection", res.InitialDeflection, lim.Initial.Allowable(span), "mm"),
		item("Short-term deflection", res.ShortTermDeflection, lim.ShortTerm.Allowable(span), "mm"),
		item("Long-term deflection", res.LongTermDeflection, lim.LongTerm.Allowable(span), "mm"),
	}

	rep := Report{Items: items, Pass: true}
	for _, it := range items {
		if it.Checked && !it.Pass {
			rep.Pass = false
		}
	}
	return rep
}

func item(name string, actual, allowable float64, unit string) Item {
	it := Item{Name: name, Actual: actual, Allowable: allowable, Unit: unit}
	if allowable <= 0 {
		// No capacity or limit available. A loaded member with zero
		// capacity is still a failure, not an unchecked row.
		if actual > 0 {
			it.Checked = true
		}
		return it
	}
	it.Checked = true
	it.Utilization = actual / allowable
	it.Pass = actual <= allowable
	return it
}
