package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Steel & Timber Beam Design Tool",
	Long: `gobeam - Go Beam Designer

A CLI tool for simply-supported beam design in steel and timber.

This tool helps engineers and building designers perform:
  - Load takedown (UDLs, partial UDLs, point loads, applied moments,
    tributary areas, self-weight)
  - Factored design actions under AS/NZS 1170.0 load combinations
  - Serviceability deflections (initial, short-term, long-term with creep)
  - Section capacity checks (phiM, phiV) for steel and timber, including
    built-up members
  - Pass/fail design-check reports (console, PDF, xlsx batch)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Steel & Timber Beam Design Tool                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for simply-supported beam design in steel and timber.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Governing design actions from AS/NZS 1170.0 combinations")
		fmt.Println("    • Initial / short-term / long-term deflection categories")
		fmt.Println("    • Steel and timber section capacities, built-up members")
		fmt.Println("    • ASCII and image diagrams, PDF reports, xlsx batch runs")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
