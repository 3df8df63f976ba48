package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structcalc/gobeam/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobeam v%s\n", version.Version)
		fmt.Println("Steel & Timber Beam Design Tool")
		fmt.Printf("build %s (%s)\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
