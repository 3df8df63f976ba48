package catalog

// Material identifies the material family of a section. The capacity
// calculator and the self-weight model dispatch on this tag explicitly
// rather than probing which fields happen to be populated.
type Material string

const (
	Steel    Material = "steel"
	Timber   Material = "timber"
	LVL      Material = "lvl"
	Concrete Material = "concrete"
)

// IsTimber reports whether the material belongs to the timber family
// (sawn timber or engineered LVL).
func (m Material) IsTimber() bool {
	return m == Timber || m == LVL
}

// Section is an immutable property snapshot for one catalog designation,
// possibly scaled for a built-up member count. The analysis engine and the
// capacity calculator never mutate a Section; scaling returns a copy.
type Section struct {
	Designation string   `json:"designation"`
	Material    Material `json:"material"`
	Members     int      `json:"members"` // parallel members, >= 1

	// Geometry (mm)
	Depth        float64 `json:"depth"`
	Width        float64 `json:"width"`         // flange width (steel) or breadth (timber)
	WebThickness float64 `json:"web_thickness"` // steel only, 0 when unknown

	// Section properties
	MassPerMetre float64 `json:"mass_per_metre"` // kg/m
	Ix           float64 `json:"ix"`             // second moment of area (mm⁴)
	Zx           float64 `json:"zx"`             // elastic section modulus (mm³)
	E            float64 `json:"e"`              // elastic modulus (MPa)

	// Material strengths (MPa)
	Fy float64 `json:"fy,omitempty"` // steel yield stress
	Fb float64 `json:"fb,omitempty"` // timber bending strength
	Fs float64 `json:"fs,omitempty"` // timber shear strength
}

// Scaled returns the built-up section made of n identical parallel members.
// Mass, I, Z and width-like dimensions scale linearly; depth is unchanged.
func (s Section) Scaled(n int) Section {
	if n < 1 {
		n = 1
	}
	s.Members = n
	if n == 1 {
		return s
	}
	f := float64(n)
	s.MassPerMetre *= f
	s.Ix *= f
	s.Zx *= f
	s.Width *= f
	s.WebThickness *= f
	return s
}

// Area returns the nominal cross-sectional area (mm²) assuming a
// rectangular envelope. It is only consulted for self-weight when the
// catalog carries no mass per metre.
func (s Section) Area() float64 {
	return s.Width * s.Depth
}
