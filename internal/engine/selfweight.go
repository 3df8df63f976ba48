package engine

import "github.com/structcalc/gobeam/internal/catalog"

// SelfWeight returns the section self-weight as a full-span dead UDL in
// kN/m. Steel sections (and any section whose catalog entry carries a
// mass per metre) use mass × g; everything else falls back to
// cross-sectional area × material density × g.
func SelfWeight(s catalog.Section) float64 {
	if s.Material == catalog.Steel || s.MassPerMetre > 0 {
		return s.MassPerMetre * catalog.Gravity / 1000
	}
	areaM2 := s.Area() * 1e-6
	return areaM2 * catalog.Density(s.Material) * catalog.Gravity / 1000
}
