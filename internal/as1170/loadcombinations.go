package as1170

// Combination is one named linear load-combination rule applying a dead
// (G) and live (Q) factor.
// Based on AS/NZS 1170.0 Section 4.2 - Combinations of actions.
type Combination struct {
	Name string
	Dead float64 // factor on permanent actions (G)
	Live float64 // factor on imposed actions (Q)
}

// Factor applies the combination to unfactored dead and live magnitudes.
func (c Combination) Factor(dead, live float64) float64 {
	return c.Dead*dead + c.Live*live
}

// ULSCombinations are the gravity strength-design combinations
// (AS/NZS 1170.0 Clause 4.2.2). The table is read-only and its order is
// significant: the first combination reaching the maximum action governs.
var ULSCombinations = []Combination{
	{Name: "1.35G", Dead: 1.35},
	{Name: "1.2G + 1.5Q", Dead: 1.2, Live: 1.5},
}

// SLSCombinations are the serviceability combinations
// (AS/NZS 1170.0 Clause 4.3). Surfaced for reference output; the
// deflection categories weight live load by the usage factors directly.
var SLSCombinations = []Combination{
	{Name: "G", Dead: 1.0},
	{Name: "G + ψsQ (short-term)", Dead: 1.0, Live: 0.7},
	{Name: "G + ψlQ (long-term)", Dead: 1.0, Live: 0.4},
}

// Governing scans combinations for the maximum factored value of the given
// unfactored dead/live pair. Strictly-greater comparison: the first
// combination to reach the maximum is kept when later ones tie it.
func Governing(dead, live float64, combinations []Combination) (float64, Combination) {
	var maxValue float64
	var governing Combination

	for _, combo := range combinations {
		v := combo.Factor(dead, live)
		if v > maxValue {
			maxValue = v
			governing = combo
		}
	}

	return maxValue, governing
}
