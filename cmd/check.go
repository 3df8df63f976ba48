package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/capacity"
	"github.com/structcalc/gobeam/internal/check"
	"github.com/structcalc/gobeam/internal/config"
	"github.com/structcalc/gobeam/internal/diagram"
	"github.com/structcalc/gobeam/internal/engine"
	"github.com/structcalc/gobeam/internal/report"
)

var (
	checkFile    string
	checkSpan    float64
	checkUDLs    []string
	checkPoints  []string
	checkMoments []string
	checkTribs   []string

	checkSection string
	checkMembers int

	checkUsage string
	checkWs    float64
	checkWl    float64
	checkJ2    float64

	checkConfigFile string
	checkPDFFile    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the full design check (actions, capacities, deflections)",
	Long: `Analyze a beam, compute its section capacities and compare both
against capacity and deflection limits in one PASS/FAIL report.

Deflection limits default to span/300 (initial), span/250 (short-term)
and span/200 (long-term); a YAML config can override each rule with a
span ratio and/or an absolute cap - the tighter one governs.

Examples:
  gobeam check --span 4 --udl 0:4:2:1.5 --section 250UB25.7
  gobeam check --file beam.json --config gobeam.yaml --pdf check.pdf`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to beam job JSON file")
	checkCmd.Flags().Float64VarP(&checkSpan, "span", "L", 0, "Span (m)")
	checkCmd.Flags().StringArrayVar(&checkUDLs, "udl", nil, "Distributed load start:finish:dead:live (m, kN/m)")
	checkCmd.Flags().StringArrayVar(&checkPoints, "point", nil, "Point load location:dead:live (m, kN)")
	checkCmd.Flags().StringArrayVar(&checkMoments, "moment", nil, "Applied moment location:dead:live (m, kN·m)")
	checkCmd.Flags().StringArrayVar(&checkTribs, "trib", nil, "Tributary load width:dead:live[:sw] (m, kPa)")

	checkCmd.Flags().StringVarP(&checkSection, "section", "s", "", "Catalog section designation [required]")
	checkCmd.Flags().IntVarP(&checkMembers, "members", "n", 1, "Number of parallel members")

	checkCmd.Flags().StringVarP(&checkUsage, "usage", "u", "", "Usage category for default factors ("+usageNames()+")")
	checkCmd.Flags().Float64Var(&checkWs, "ws", 0, "Short-term live-load factor")
	checkCmd.Flags().Float64Var(&checkWl, "wl", 0, "Long-term live-load factor")
	checkCmd.Flags().Float64Var(&checkJ2, "j2", 0, "Creep factor (ignored for steel)")

	checkCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "", "YAML config file (limits, default usage)")
	checkCmd.Flags().StringVar(&checkPDFFile, "pdf", "", "Write the check report to a PDF file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(checkConfigFile)
	if err != nil {
		return err
	}
	usage := checkUsage
	if usage == "" {
		usage = cfg.Usage
	}

	in, err := buildInput(checkFile, checkSpan,
		checkUDLs, checkPoints, checkMoments, checkTribs,
		checkSection, checkMembers, usage, checkWs, checkWl, checkJ2)
	if err != nil {
		return err
	}
	if in.Section == nil {
		return fmt.Errorf("a section is required for a design check (--section)")
	}

	result := engine.Analyze(in)
	if result == nil {
		return fmt.Errorf("section %s has no usable stiffness (E, Ix)", in.Section.Designation)
	}
	cap := capacity.Compute(*in.Section)
	rep := check.Evaluate(result, cap, in.Span, cfg.Limits)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                    BEAM DESIGN CHECK")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printAnalysisInputs(in, result)

	fmt.Println("CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tActual\tAllowable\tUtil.\tStatus\n")
	fmt.Fprintf(w, "  ─────\t──────\t─────────\t─────\t──────\n")
	for _, it := range rep.Items {
		status, util := "—", "—"
		if it.Checked {
			status = "PASS ✓"
			if !it.Pass {
				status = "FAIL ✗"
			}
			if it.Utilization > 0 {
				util = fmt.Sprintf("%.2f", it.Utilization)
			}
		}
		fmt.Fprintf(w, "  %s\t%.2f %s\t%.2f %s\t%s\t%s\n",
			it.Name, it.Actual, it.Unit, it.Allowable, it.Unit, util, status)
	}
	w.Flush()
	fmt.Println()

	for _, note := range cap.Notes {
		fmt.Printf("  Note: %s\n", note)
	}
	if len(cap.Notes) > 0 {
		fmt.Println()
	}

	fmt.Print(diagram.DrawVerdictBox(rep.Pass, []string{
		fmt.Sprintf("M* = %.2f kN·m vs φM = %.2f kN·m", result.MaxMoment, cap.PhiM),
		fmt.Sprintf("V* = %.2f kN vs φV = %.2f kN", result.MaxShear, cap.PhiV),
		fmt.Sprintf("Long-term deflection = %.2f mm", result.LongTermDeflection),
	}))
	fmt.Println()

	if checkPDFFile != "" {
		job := report.Job{
			Title:   "Beam Design Check",
			Span:    in.Span,
			Section: in.Section.Designation,
			Members: in.Section.Members,
			Ws:      in.Ws,
			Wl:      in.Wl,
			J2:      result.EffectiveJ2,
		}
		if err := report.Write(checkPDFFile, job, result, cap, rep); err != nil {
			return fmt.Errorf("writing PDF report: %w", err)
		}
		fmt.Printf("  Report written to %s\n\n", checkPDFFile)
	}

	return nil
}
