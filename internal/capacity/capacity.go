// Package capacity computes design section capacities (φM, φV) for steel
// and timber sections. Missing data never raises an error: every branch
// that cannot be computed reports a zero capacity together with a
// human-readable note, so callers render "insufficient data" instead of
// crashing mid-edit.
package capacity

import (
	"fmt"

	"github.com/structcalc/gobeam/internal/catalog"
)

// Capacity reduction factors. Steel follows AS 4100 member bending;
// timber uses the AS 1720.1 category-1 factor.
const (
	PhiSteel  = 0.90
	PhiTimber = 0.60
)

// shearAreaFactor is the 2/3 effective-shear-area reduction for
// rectangular timber sections.
const shearAreaFactor = 2.0 / 3.0

// Capacity is the design capacity pair for a section, with explanatory
// notes for any value that could not be computed from the available data.
type Capacity struct {
	PhiM  float64  // design moment capacity (kN·m)
	PhiV  float64  // design shear capacity (kN)
	Notes []string // explanations for defaulted or unavailable values
}

// Compute dispatches on the section's material tag. Built-up sections
// must be scaled before calling (catalog.Lookup does this); the linear
// formula set then scales capacity linearly with the member count.
func Compute(s catalog.Section) Capacity {
	if s.Material == catalog.Steel {
		return steelCapacity(s)
	}
	return timberCapacity(s)
}

// steelCapacity: φM = φ·Z·fy, φV = φ·0.6fy·(d·tw) on the idealised web
// shear area.
func steelCapacity(s catalog.Section) Capacity {
	var c Capacity

	fy := s.Fy
	if fy <= 0 {
		fy = catalog.DefaultFy
		c.Notes = append(c.Notes, fmt.Sprintf("yield stress not supplied; assuming fy = %.0f MPa", fy))
	}

	if s.Zx > 0 {
		c.PhiM = PhiSteel * s.Zx * fy / 1e6
	} else {
		c.Notes = append(c.Notes, "section modulus unavailable; moment capacity not computed")
	}

	if s.WebThickness > 0 && s.Depth > 0 {
		c.PhiV = PhiSteel * 0.6 * fy * s.Depth * s.WebThickness / 1e3
	} else {
		c.Notes = append(c.Notes, "web thickness unavailable; shear capacity not computed")
	}

	return c
}

// timberCapacity: φM = φ·Z·fb with the rectangular fallback Z = b·d²/6,
// φV = φ·fs·(2/3)·b·d.
func timberCapacity(s catalog.Section) Capacity {
	var c Capacity

	z := s.Zx
	if z <= 0 {
		if s.Width > 0 && s.Depth > 0 {
			z = s.Width * s.Depth * s.Depth / 6
		} else {
			c.Notes = append(c.Notes, "no section modulus and no width/depth to derive one; moment capacity not computed")
		}
	}

	if z > 0 && s.Fb > 0 {
		c.PhiM = PhiTimber * z * s.Fb / 1e6
	} else if s.Fb <= 0 {
		c.Notes = append(c.Notes, "bending strength unavailable; moment capacity not computed")
	}

	if s.Width > 0 && s.Depth > 0 && s.Fs > 0 {
		c.PhiV = PhiTimber * s.Fs * shearAreaFactor * s.Width * s.Depth / 1e3
	} else {
		c.Notes = append(c.Notes, "width, depth or shear strength unavailable; shear capacity not computed")
	}

	return c
}
