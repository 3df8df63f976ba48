package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/capacity"
)

var (
	capacitySection string
	capacityMembers int

	// Custom timber section inputs (mm / MPa)
	capacityWidth float64
	capacityDepth float64
	capacityFb    float64
	capacityFs    float64
	capacityE     float64
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Compute design section capacities (φM, φV)",
	Long: `Calculate the design moment and shear capacity of a section.

Steel sections use φ = 0.90 with the idealised web shear area; timber
uses φ = 0.60 with the 2/3 effective-shear-area reduction. Built-up
sections scale their properties by the member count before the capacity
formulas are applied.

Missing data never aborts the calculation: unavailable capacities are
reported as zero with an explanation.

Examples:
  gobeam capacity --section 310UB40.4
  gobeam capacity --section "190x45 MGP10" --members 2
  gobeam capacity --width 45 --depth 240 --fb 48 --fs 4.6`,
	RunE: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	capacityCmd.Flags().StringVarP(&capacitySection, "section", "s", "", "Catalog section designation")
	capacityCmd.Flags().IntVarP(&capacityMembers, "members", "n", 1, "Number of parallel members")

	capacityCmd.Flags().Float64VarP(&capacityWidth, "width", "b", 0, "Custom timber breadth (mm)")
	capacityCmd.Flags().Float64VarP(&capacityDepth, "depth", "d", 0, "Custom timber depth (mm)")
	capacityCmd.Flags().Float64Var(&capacityFb, "fb", 0, "Custom timber bending strength (MPa)")
	capacityCmd.Flags().Float64Var(&capacityFs, "fs", 0, "Custom timber shear strength (MPa)")
	capacityCmd.Flags().Float64Var(&capacityE, "e", 10000, "Custom timber elastic modulus (MPa)")
}

func runCapacity(cmd *cobra.Command, args []string) error {
	sec, err := resolveSection(capacitySection, capacityMembers,
		capacityWidth, capacityDepth, capacityFb, capacityFs, capacityE)
	if err != nil {
		return err
	}

	cap := capacity.Compute(sec)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("               SECTION DESIGN CAPACITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Designation:\t%s\n", sec.Designation)
	fmt.Fprintf(w, "  Material:\t%s\n", sec.Material)
	if sec.Members > 1 {
		fmt.Fprintf(w, "  Parallel members:\t%d\n", sec.Members)
	}
	fmt.Fprintf(w, "  Depth:\t%.0f mm\n", sec.Depth)
	fmt.Fprintf(w, "  Width:\t%.0f mm\n", sec.Width)
	if sec.Zx > 0 {
		fmt.Fprintf(w, "  Zx:\t%.3e mm³\n", sec.Zx)
	}
	if sec.Ix > 0 {
		fmt.Fprintf(w, "  Ix:\t%.3e mm⁴\n", sec.Ix)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN CAPACITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  φM:\t%.2f kN·m\n", cap.PhiM)
	fmt.Fprintf(w, "  φV:\t%.2f kN\n", cap.PhiV)
	w.Flush()
	fmt.Println()

	for _, note := range cap.Notes {
		fmt.Printf("  Note: %s\n", note)
	}
	if len(cap.Notes) > 0 {
		fmt.Println()
	}

	return nil
}
