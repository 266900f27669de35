package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simcore",
	Short: "Deterministic personal-finance simulation core",
	Long: `simcore runs a deterministic, single-threaded day-by-day simulation of a
personal wallet against a component DAG of financial nodes, and derives
behavioral and risk analytics from the resulting balance series.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here
	// rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}
