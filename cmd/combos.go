package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/as1170"
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List load combinations and usage-profile factors",
	Long: `Print the AS/NZS 1170.0 gravity load combination tables (strength
and serviceability) and the built-in usage profiles that supply default
short-term/long-term live-load factors and creep factors.`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)
}

func runCombos(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("STRENGTH COMBINATIONS (ULS):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	printComboTable(as1170.ULSCombinations)

	fmt.Println("SERVICEABILITY COMBINATIONS (SLS):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	printComboTable(as1170.SLSCombinations)

	fmt.Println("USAGE PROFILES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Category\tws\twl\tj2\n")
	fmt.Fprintf(w, "  ────────\t──\t──\t──\n")
	for _, p := range as1170.UsageProfiles {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.1f\n", p.Name, p.Ws, p.Wl, p.J2)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  j2 applies to timber only; steel takes j2 = 1.0 always.")
	fmt.Println()
}

func printComboTable(combos []as1170.Combination) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination\tG factor\tQ factor\n")
	fmt.Fprintf(w, "  ───────────\t────────\t────────\n")
	for _, c := range combos {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", c.Name, c.Dead, c.Live)
	}
	w.Flush()
	fmt.Println()
}
