package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/batch"
	"github.com/structcalc/gobeam/internal/config"
)

var (
	batchInput  string
	batchOutput string
	batchConfig string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run design checks for many beams from an xlsx workbook",
	Long: `Process a spreadsheet of beam jobs, one per row, and report a
design-check verdict for each. Rows that cannot be parsed are skipped.

Expected columns (first row is a header):
  name, span_m, udl_dead_kn_m, udl_live_kn_m, section, members, usage

Examples:
  gobeam batch --input beams.xlsx
  gobeam batch --input beams.xlsx --output results.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input workbook (xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write results workbook (xlsx)")
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "YAML config file (limits)")
	batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(batchConfig)
	if err != nil {
		return err
	}

	outcomes, skipped, err := batch.Run(batchInput, batchOutput, cfg.Limits)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("BATCH RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tSection\tM* (kN·m)\tV* (kN)\tδ long (mm)\tVerdict\n")
	fmt.Fprintf(w, "  ────\t───────\t─────────\t───────\t───────────\t───────\n")
	passed := 0
	for _, o := range outcomes {
		verdict := "PASS"
		if !o.Report.Pass {
			verdict = "FAIL"
		} else {
			passed++
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%s\n",
			o.Row.Name, o.Row.Section, o.Result.MaxMoment, o.Result.MaxShear,
			o.Result.LongTermDeflection, verdict)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d beams processed, %d passed, %d rows skipped.\n", len(outcomes), passed, skipped)
	if batchOutput != "" {
		fmt.Printf("  Results written to %s\n", batchOutput)
	}
	fmt.Println()

	return nil
}
