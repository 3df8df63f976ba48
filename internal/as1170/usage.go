package as1170

import "strings"

// UsageProfile maps an occupancy category to its default serviceability
// live-load factors (AS/NZS 1170.0 Table 4.1) and a default creep factor
// for creep-prone materials (AS 1720.1 j2, seasoned timber).
type UsageProfile struct {
	Name string
	Ws   float64 // short-term live factor ψs
	Wl   float64 // long-term live factor ψl
	J2   float64 // default creep factor (ignored for steel)
}

// UsageProfiles is the built-in usage table. Order matters only for
// display; lookups are by name.
var UsageProfiles = []UsageProfile{
	{Name: "residential-floor", Ws: 0.7, Wl: 0.4, J2: 2.0},
	{Name: "residential-roof", Ws: 0.7, Wl: 0.25, J2: 2.0},
	{Name: "office-floor", Ws: 0.7, Wl: 0.4, J2: 2.0},
	{Name: "deck", Ws: 0.7, Wl: 0.4, J2: 2.0},
	{Name: "storage", Ws: 1.0, Wl: 0.6, J2: 2.0},
}

// DefaultProfile is used when no usage category is selected.
var DefaultProfile = UsageProfiles[0]

// ProfileByName finds a usage profile by its (case-insensitive) name.
func ProfileByName(name string) (UsageProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range UsageProfiles {
		if p.Name == key {
			return p, true
		}
	}
	return UsageProfile{}, false
}
