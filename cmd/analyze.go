package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/diagram"
	"github.com/structcalc/gobeam/internal/engine"
)

var (
	// Geometry and loads
	analyzeFile    string
	analyzeSpan    float64
	analyzeUDLs    []string
	analyzePoints  []string
	analyzeMoments []string
	analyzeTribs   []string

	// Section
	analyzeSection string
	analyzeMembers int

	// Serviceability factors
	analyzeUsage string
	analyzeWs    float64
	analyzeWl    float64
	analyzeJ2    float64

	// Options
	analyzeShowAll      bool
	analyzeShowDiagram  bool
	analyzePlotFile     string
	analyzeDeflPlotFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute governing design actions and deflections for a beam",
	Long: `Analyze a simply-supported beam under an arbitrary set of loads.

Every AS/NZS 1170.0 gravity combination is evaluated; the governing
factored moment and shear are reported together with the three
serviceability deflection categories (initial, short-term, long-term).

Loads repeat and combine freely:
  --udl    start:finish:dead:live   distributed load (kN/m)
  --point  location:dead:live       point load (kN)
  --moment location:dead:live       applied moment (kN·m)
  --trib   width:dead:live[:sw]     tributary area load (kPa), sw=1 adds
                                    the section self-weight

Examples:
  # 4m beam, full-span UDL, steel UB
  gobeam analyze --span 4 --udl 0:4:2:1.5 --section 250UB25.7

  # floor joist with tributary load and self-weight, LVL, 2 plies
  gobeam analyze --span 3.6 --trib 0.45:0.4:1.5:1 \
      --section "240x45 LVL13" --members 2 --usage residential-floor

  # from a job file, with diagrams
  gobeam analyze --file beam.json --diagram --plot bmd.png`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to beam job JSON file")
	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "L", 0, "Span (m)")
	analyzeCmd.Flags().StringArrayVar(&analyzeUDLs, "udl", nil, "Distributed load start:finish:dead:live (m, kN/m)")
	analyzeCmd.Flags().StringArrayVar(&analyzePoints, "point", nil, "Point load location:dead:live (m, kN)")
	analyzeCmd.Flags().StringArrayVar(&analyzeMoments, "moment", nil, "Applied moment location:dead:live (m, kN·m)")
	analyzeCmd.Flags().StringArrayVar(&analyzeTribs, "trib", nil, "Tributary load width:dead:live[:sw] (m, kPa)")

	analyzeCmd.Flags().StringVarP(&analyzeSection, "section", "s", "", "Catalog section designation")
	analyzeCmd.Flags().IntVarP(&analyzeMembers, "members", "n", 1, "Number of parallel members (built-up section)")

	analyzeCmd.Flags().StringVarP(&analyzeUsage, "usage", "u", "", "Usage category for default factors ("+usageNames()+")")
	analyzeCmd.Flags().Float64Var(&analyzeWs, "ws", 0, "Short-term live-load factor (overrides usage default)")
	analyzeCmd.Flags().Float64Var(&analyzeWl, "wl", 0, "Long-term live-load factor (overrides usage default)")
	analyzeCmd.Flags().Float64Var(&analyzeJ2, "j2", 0, "Creep factor (ignored for steel)")

	analyzeCmd.Flags().BoolVarP(&analyzeShowAll, "all", "a", false, "Show every load combination result")
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII loading sketch and BMD/SFD curves")
	analyzeCmd.Flags().StringVarP(&analyzePlotFile, "plot", "o", "", "Export BMD/SFD diagram to file (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeDeflPlotFile, "plot-deflection", "", "Export deflected shape to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	in, err := buildInput(analyzeFile, analyzeSpan,
		analyzeUDLs, analyzePoints, analyzeMoments, analyzeTribs,
		analyzeSection, analyzeMembers, analyzeUsage, analyzeWs, analyzeWl, analyzeJ2)
	if err != nil {
		return err
	}

	result := engine.Analyze(in)
	if result == nil {
		fmt.Println("No analysis result: select a section first (--section).")
		fmt.Println("Use 'gobeam catalog' to list available sections.")
		return nil
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BEAM ANALYSIS - AS/NZS 1170.0 COMBINATIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printAnalysisInputs(in, result)

	if analyzeShowDiagram {
		fmt.Println(diagram.DrawLoadingSketch(in.Span, in.Loads))
	}

	if analyzeShowAll {
		fmt.Println("LOAD COMBINATIONS (AS/NZS 1170.0 Clause 4.2.2):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Combination\tM* (kN·m)\tV* (kN)\n")
		fmt.Fprintf(w, "  ───────────\t─────────\t───────\n")
		for _, ca := range engine.CombinationActions(in) {
			momentMark, shearMark := "", ""
			if ca.Name == result.MomentCase {
				momentMark = " ← M governs"
			}
			if ca.Name == result.ShearCase {
				shearMark = " ← V governs"
			}
			fmt.Fprintf(w, "  %s\t%.2f%s\t%.2f%s\n", ca.Name, ca.Moment, momentMark, ca.Shear, shearMark)
		}
		w.Flush()
		fmt.Println()
	}

	printAnalysisResult(result)

	if analyzeShowDiagram {
		cv := engine.SampleCurves(in, governingComboIndex(in, result), 60)
		fmt.Println(diagram.DrawMomentCurve(cv))
		fmt.Println(diagram.DrawShearCurve(cv))
		fmt.Println(diagram.DrawDeflectionCurve(cv))
		for _, p := range in.Loads.Points {
			fmt.Printf("  Point load %s: peak deflection near x = %.2f m\n",
				p.ID, engine.PointLoadPeakPosition(p.Location, in.Span))
		}
		if len(in.Loads.Points) > 0 {
			fmt.Println()
		}
	}

	if analyzePlotFile != "" {
		cv := engine.SampleCurves(in, governingComboIndex(in, result), 200)
		title := fmt.Sprintf("Design Actions - %s", result.MomentCase)
		if err := diagram.ExportActionDiagram(cv, title, analyzePlotFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("  Diagram exported to %s\n\n", analyzePlotFile)
	}

	if analyzeDeflPlotFile != "" {
		cv := engine.SampleCurves(in, governingComboIndex(in, result), 200)
		if err := diagram.ExportDeflectionDiagram(cv, analyzeDeflPlotFile); err != nil {
			return fmt.Errorf("exporting deflected shape: %w", err)
		}
		fmt.Printf("  Deflected shape exported to %s\n\n", analyzeDeflPlotFile)
	}

	return nil
}

func printAnalysisInputs(in engine.Input, result *engine.Result) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.2f m\n", in.Span)
	if in.Section != nil {
		fmt.Fprintf(w, "  Section:\t%s", in.Section.Designation)
		if in.Section.Members > 1 {
			fmt.Fprintf(w, " (x%d)", in.Section.Members)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  E:\t%.0f MPa\n", in.Section.E)
		fmt.Fprintf(w, "  Ix:\t%.3e mm⁴\n", in.Section.Ix)
	}
	fmt.Fprintf(w, "  Loads:\t%d UDL, %d point, %d moment, %d tributary\n",
		len(in.Loads.UDLs), len(in.Loads.Points), len(in.Loads.Moments), len(in.Loads.Tributary))
	if result.SelfWeight > 0 {
		fmt.Fprintf(w, "  Self-weight:\t%.3f kN/m (included as dead load)\n", result.SelfWeight)
	}
	fmt.Fprintf(w, "  ws / wl:\t%.2f / %.2f\n", in.Ws, in.Wl)
	fmt.Fprintf(w, "  j2 (effective):\t%.2f\n", result.EffectiveJ2)
	w.Flush()
	fmt.Println()
}

func printAnalysisResult(result *engine.Result) {
	fmt.Println("GOVERNING DESIGN ACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  M*:\t%.2f kN·m\t(%s)\n", result.MaxMoment, result.MomentCase)
	fmt.Fprintf(w, "  V*:\t%.2f kN\t(%s)\n", result.MaxShear, result.ShearCase)
	w.Flush()
	fmt.Println()

	fmt.Println("DEFLECTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Initial (dead):\t%.2f mm\n", result.InitialDeflection)
	fmt.Fprintf(w, "  Short-term (ws·live):\t%.2f mm\n", result.ShortTermDeflection)
	fmt.Fprintf(w, "  Long-term (creep):\t%.2f mm\n", result.LongTermDeflection)
	w.Flush()
	fmt.Println()
}

// governingComboIndex finds the table index of the moment-controlling
// combination so the plotted curves match the reported governing case.
func governingComboIndex(in engine.Input, result *engine.Result) int {
	for i, ca := range engine.CombinationActions(in) {
		if ca.Name == result.MomentCase {
			return i
		}
	}
	return 0
}
