package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in section tables. Steel properties follow the standard Australian
// open-section tables (Grade 300 universal beams and parallel flange
// channels); timber sections are generated from stock MGP and LVL sizes
// with rectangular section properties.

var steelSections = []Section{
	steelSection("150UB14.0", 150, 75, 5.0, 14.0, 6.66e6, 88.8e3),
	steelSection("180UB16.1", 173, 90, 4.5, 16.1, 12.1e6, 139e3),
	steelSection("200UB18.2", 198, 99, 4.5, 18.2, 15.8e6, 160e3),
	steelSection("200UB25.4", 203, 133, 5.8, 25.4, 23.6e6, 232e3),
	steelSection("250UB25.7", 248, 124, 5.0, 25.7, 35.4e6, 285e3),
	steelSection("250UB31.4", 252, 146, 6.1, 31.4, 44.5e6, 354e3),
	steelSection("310UB40.4", 304, 165, 6.1, 40.4, 86.4e6, 569e3),
	steelSection("310UB46.2", 307, 166, 6.7, 46.2, 100e6, 654e3),
	steelSection("360UB44.7", 352, 171, 6.9, 44.7, 121e6, 689e3),
	steelSection("410UB53.7", 403, 178, 7.6, 53.7, 188e6, 933e3),
	steelSection("460UB67.1", 454, 190, 8.5, 67.1, 296e6, 1300e3),
	steelSection("150PFC", 150, 75, 6.0, 17.7, 8.34e6, 111e3),
	steelSection("200PFC", 200, 75, 6.0, 22.9, 19.1e6, 191e3),
	steelSection("250PFC", 250, 90, 8.0, 35.5, 45.1e6, 361e3),
}

var timberSections = []Section{
	// MGP10 seasoned pine (AS 1720.1 characteristic values)
	timberSection("90x45 MGP10", Timber, 90, 45, 10000, 17, 2.6),
	timberSection("140x45 MGP10", Timber, 140, 45, 10000, 17, 2.6),
	timberSection("190x45 MGP10", Timber, 190, 45, 10000, 17, 2.6),
	timberSection("240x45 MGP10", Timber, 240, 45, 10000, 17, 2.6),
	timberSection("290x45 MGP10", Timber, 290, 45, 10000, 17, 2.6),
	// MGP12
	timberSection("140x45 MGP12", Timber, 140, 45, 12700, 28, 3.5),
	timberSection("190x45 MGP12", Timber, 190, 45, 12700, 28, 3.5),
	timberSection("240x45 MGP12", Timber, 240, 45, 12700, 28, 3.5),
	// Structural LVL
	timberSection("200x45 LVL13", LVL, 200, 45, 13200, 48, 4.6),
	timberSection("240x45 LVL13", LVL, 240, 45, 13200, 48, 4.6),
	timberSection("300x45 LVL13", LVL, 300, 45, 13200, 48, 4.6),
	timberSection("360x63 LVL13", LVL, 360, 63, 13200, 48, 4.6),
	timberSection("400x63 LVL13", LVL, 400, 63, 13200, 48, 4.6),
}

func steelSection(desig string, depth, flange, tw, mass, ix, zx float64) Section {
	return Section{
		Designation:  desig,
		Material:     Steel,
		Members:      1,
		Depth:        depth,
		Width:        flange,
		WebThickness: tw,
		MassPerMetre: mass,
		Ix:           ix,
		Zx:           zx,
		E:            200000,
		Fy:           DefaultFy,
	}
}

func timberSection(desig string, mat Material, depth, breadth, e, fb, fs float64) Section {
	density := DensityTimber
	if mat == LVL {
		density = 580
	}
	return Section{
		Designation:  desig,
		Material:     mat,
		Members:      1,
		Depth:        depth,
		Width:        breadth,
		MassPerMetre: breadth * depth * 1e-6 * density,
		Ix:           breadth * depth * depth * depth / 12,
		Zx:           breadth * depth * depth / 6,
		E:            e,
		Fb:           fb,
		Fs:           fs,
	}
}

// Lookup finds a section by designation (case-insensitive) and returns it
// scaled for the given number of parallel members.
func Lookup(designation string, members int) (Section, error) {
	key := strings.ToLower(strings.TrimSpace(designation))
	for _, s := range steelSections {
		if strings.ToLower(s.Designation) == key {
			return s.Scaled(members), nil
		}
	}
	for _, s := range timberSections {
		if strings.ToLower(s.Designation) == key {
			return s.Scaled(members), nil
		}
	}
	return Section{}, fmt.Errorf("unknown section designation %q", designation)
}

// Sections returns the built-in catalog, optionally filtered by material
// family ("" returns everything). The result is a copy sorted by
// designation; callers may not reach the underlying tables.
func Sections(mat Material) []Section {
	var out []Section
	for _, s := range steelSections {
		if mat == "" || mat == Steel {
			out = append(out, s)
		}
	}
	for _, s := range timberSections {
		if mat == "" || s.Material == mat || (mat == Timber && s.Material.IsTimber()) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Designation < out[j].Designation })
	return out
}
