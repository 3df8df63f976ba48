package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/structcalc/gobeam/internal/as1170"
	"github.com/structcalc/gobeam/internal/catalog"
	"github.com/structcalc/gobeam/internal/engine"
)

// Shared parsing for the repeatable load flags. Each flag value is a
// colon-separated float list:
//
//	--udl    start:finish:dead:live   (m, m, kN/m, kN/m)
//	--point  location:dead:live      (m, kN, kN)
//	--moment location:dead:live      (m, kN·m, kN·m)
//	--trib   width:dead:live[:sw]    (m, kPa, kPa, sw=1 adds self-weight)

func parseLoadFlags(udls, points, moments, tribs []string) (engine.LoadSet, error) {
	var ls engine.LoadSet

	for i, v := range udls {
		f, err := splitFloats(v, 4, 4)
		if err != nil {
			return ls, fmt.Errorf("--udl %q: %w", v, err)
		}
		ls.UDLs = append(ls.UDLs, engine.UDL{
			ID: fmt.Sprintf("udl-%d", i+1), Start: f[0], Finish: f[1], Dead: f[2], Live: f[3],
		})
	}
	for i, v := range points {
		f, err := splitFloats(v, 3, 3)
		if err != nil {
			return ls, fmt.Errorf("--point %q: %w", v, err)
		}
		ls.Points = append(ls.Points, engine.PointLoad{
			ID: fmt.Sprintf("point-%d", i+1), Location: f[0], Dead: f[1], Live: f[2],
		})
	}
	for i, v := range moments {
		f, err := splitFloats(v, 3, 3)
		if err != nil {
			return ls, fmt.Errorf("--moment %q: %w", v, err)
		}
		ls.Moments = append(ls.Moments, engine.AppliedMoment{
			ID: fmt.Sprintf("moment-%d", i+1), Location: f[0], Dead: f[1], Live: f[2],
		})
	}
	for i, v := range tribs {
		f, err := splitFloats(v, 3, 4)
		if err != nil {
			return ls, fmt.Errorf("--trib %q: %w", v, err)
		}
		t := engine.TributaryLoad{
			ID: fmt.Sprintf("trib-%d", i+1), Width: f[0], Dead: f[1], Live: f[2],
		}
		if len(f) == 4 && f[3] != 0 {
			t.IncludeSelfWeight = true
		}
		ls.Tributary = append(ls.Tributary, t)
	}

	return ls, nil
}

func splitFloats(v string, minParts, maxParts int) ([]float64, error) {
	parts := strings.Split(v, ":")
	if len(parts) < minParts || len(parts) > maxParts {
		return nil, fmt.Errorf("expected %d-%d colon-separated values", minParts, maxParts)
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q) is not a number", i+1, p)
		}
		out[i] = f
	}
	return out, nil
}

// buildInput assembles an engine.Input from either a job file or the
// individual flags, with usage-profile defaults filling unset factors.
func buildInput(file string, span float64, udls, points, moments, tribs []string,
	sectionName string, members int, usage string, ws, wl, j2 float64) (engine.Input, error) {

	if file != "" {
		job, err := engine.LoadJobFile(file)
		if err != nil {
			return engine.Input{}, err
		}
		return job.Input()
	}

	loads, err := parseLoadFlags(udls, points, moments, tribs)
	if err != nil {
		return engine.Input{}, err
	}

	job := engine.JobFile{
		Span:    span,
		Loads:   loads,
		Section: sectionName,
		Members: members,
		Usage:   usage,
		Ws:      ws,
		Wl:      wl,
		J2:      j2,
	}
	return job.Input()
}

// resolveSection looks up a catalog section or, for timber checks without
// a catalog entry, builds a custom rectangular section from dimensions.
func resolveSection(designation string, members int, width, depth, fb, fs, e float64) (catalog.Section, error) {
	if designation != "" {
		return catalog.Lookup(designation, members)
	}
	if width <= 0 && depth <= 0 {
		return catalog.Section{}, fmt.Errorf("provide --section or custom --width/--depth dimensions")
	}
	sec := catalog.Section{
		Designation: fmt.Sprintf("custom %gx%g", depth, width),
		Material:    catalog.Timber,
		Members:     1,
		Width:       width,
		Depth:       depth,
		E:           e,
		Fb:          fb,
		Fs:          fs,
	}
	if width > 0 && depth > 0 {
		sec.Ix = width * depth * depth * depth / 12
		sec.Zx = width * depth * depth / 6
	}
	return sec.Scaled(members), nil
}

func usageNames() string {
	names := make([]string, len(as1170.UsageProfiles))
	for i, p := range as1170.UsageProfiles {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
