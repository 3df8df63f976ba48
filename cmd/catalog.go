package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/catalog"
)

var catalogMaterial string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in section catalog",
	Long: `List the built-in steel and timber section property tables.

Examples:
  gobeam catalog
  gobeam catalog --material timber`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogMaterial, "material", "m", "", "Filter by material family (steel, timber, lvl)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	mat := catalog.Material(catalogMaterial)
	switch mat {
	case "", catalog.Steel, catalog.Timber, catalog.LVL:
	default:
		return fmt.Errorf("unknown material %q (steel, timber, lvl)", catalogMaterial)
	}

	sections := catalog.Sections(mat)

	fmt.Println()
	fmt.Println("SECTION CATALOG:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Designation\tMaterial\td (mm)\tb (mm)\tkg/m\tIx (mm⁴)\tZx (mm³)\tE (MPa)\n")
	fmt.Fprintf(w, "  ───────────\t────────\t──────\t──────\t────\t────────\t────────\t───────\n")
	for _, s := range sections {
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.0f\t%.1f\t%.3e\t%.3e\t%.0f\n",
			s.Designation, s.Material, s.Depth, s.Width, s.MassPerMetre, s.Ix, s.Zx, s.E)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d sections. Use --members N for built-up members.\n", len(sections))
	fmt.Println()

	return nil
}
