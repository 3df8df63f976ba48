package catalog

// Physical constants used for self-weight calculations.

const (
	// Gravity is the gravitational acceleration (m/s²).
	Gravity = 9.81

	// Material densities (kg/m³)
	DensitySteel    = 7850.0
	DensityTimber   = 500.0
	DensityConcrete = 2400.0
	DensityDefault  = 1000.0
)

// Density returns the density (kg/m³) for a material family.
func Density(m Material) float64 {
	switch m {
	case Steel:
		return DensitySteel
	case Timber, LVL:
		return DensityTimber
	case Concrete:
		return DensityConcrete
	default:
		return DensityDefault
	}
}

// DefaultFy is the steel yield stress (MPa) assumed when the catalog does
// not supply one. Grade 300 is the common stock grade for universal beams.
const DefaultFy = 300.0
