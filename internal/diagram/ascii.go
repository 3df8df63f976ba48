package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/structcalc/gobeam/internal/engine"
)

// DrawLoadingSketch renders an ASCII elevation of the beam with its loads.
func DrawLoadingSketch(span float64, loads engine.LoadSet) string {
	const width = 60
	var sb strings.Builder

	scale := func(pos float64) int {
		if span <= 0 {
			return 0
		}
		i := int(pos / span * float64(width-1))
		if i < 0 {
			i = 0
		}
		if i > width-1 {
			i = width - 1
		}
		return i
	}

	sb.WriteString("\n  BEAM LOADING\n")
	sb.WriteString("  ────────────\n\n")

	// One row of arrows per distributed load
	for _, t := range loads.Tributary {
		row := strings.Repeat("▼", width)
		sb.WriteString(fmt.Sprintf("  %s  trib %.2fm × (G=%.2f, Q=%.2f kPa)\n", row, t.Width, t.Dead, t.Live))
	}
	for _, u := range loads.UDLs {
		i0, i1 := scale(u.Start), scale(u.Finish)
		if i1 <= i0 {
			i1 = i0 + 1
		}
		row := strings.Repeat(" ", i0) + strings.Repeat("▼", i1-i0) + strings.Repeat(" ", width-i1)
		sb.WriteString(fmt.Sprintf("  %s  UDL G=%.2f, Q=%.2f kN/m\n", row, u.Dead, u.Live))
	}
	for _, p := range loads.Points {
		i := scale(p.Location)
		row := strings.Repeat(" ", i) + "↓" + strings.Repeat(" ", width-i-1)
		sb.WriteString(fmt.Sprintf("  %s  P G=%.2f, Q=%.2f kN @ %.2fm\n", row, p.Dead, p.Live, p.Location))
	}
	for _, m := range loads.Moments {
		i := scale(m.Location)
		row := strings.Repeat(" ", i) + "↻" + strings.Repeat(" ", width-i-1)
		sb.WriteString(fmt.Sprintf("  %s  M G=%.2f, Q=%.2f kN·m @ %.2fm\n", row, m.Dead, m.Live, m.Location))
	}

	// Beam and supports
	sb.WriteString("  " + strings.Repeat("━", width) + "\n")
	sb.WriteString("  ▲" + strings.Repeat(" ", width-2) + "▲\n")
	sb.WriteString(fmt.Sprintf("  ├%s┤\n", strings.Repeat("─", width-2)))
	sb.WriteString(fmt.Sprintf("  L = %.2f m\n", span))

	return sb.String()
}

// DrawMomentCurve renders the bending moment diagram as an ASCII graph.
func DrawMomentCurve(cv engine.Curves) string {
	return drawCurve(cv.Moment, "Bending moment (kN·m)")
}

// DrawShearCurve renders the shear force diagram as an ASCII graph.
func DrawShearCurve(cv engine.Curves) string {
	return drawCurve(cv.Shear, "Shear force (kN)")
}

// DrawDeflectionCurve renders the dead-load deflected shape.
func DrawDeflectionCurve(cv engine.Curves) string {
	return drawCurve(cv.Deflection, "Deflection (mm)")
}

func drawCurve(values []float64, caption string) string {
	if len(values) == 0 {
		return ""
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
	return "\n" + graph + "\n"
}

// DrawVerdictBox renders the boxed design-check verdict followed by the
// governing numbers. Widths are measured in runes so the ✓/✗ marks and
// unit symbols line up.
func DrawVerdictBox(pass bool, lines []string) string {
	title := "DESIGN CHECK: PASS ✓"
	if !pass {
		title = "DESIGN CHECK: FAIL ✗"
	}

	inner := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > inner {
			inner = n
		}
	}
	inner += 4

	var sb strings.Builder
	pad := func(s string) string {
		return s + strings.Repeat(" ", inner-4-utf8.RuneCountInString(s))
	}
	border := strings.Repeat("═", inner)
	sb.WriteString("  ╔" + border + "╗\n")
	sb.WriteString("  ║  " + pad(title) + "  ║\n")
	sb.WriteString("  ╠" + border + "╣\n")
	for _, line := range lines {
		sb.WriteString("  ║  " + pad(line) + "  ║\n")
	}
	sb.WriteString("  ╚" + border + "╝\n")

	return sb.String()
}
