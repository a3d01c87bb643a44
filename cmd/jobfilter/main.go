package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath string
	dataPath   string
)

var rootCmd = &cobra.Command{
	Use:   "jobfilter",
	Short: "Browse job postings with faceted filters",
	Long: "jobfilter loads job postings from a YAML file and lets you narrow them down " +
		"with facet dropdowns, a free-text search and removable filter chips.",
	SilenceUsage: true,
	RunE:         runBrowse,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jobfilter %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.jobfilter/config.yaml, or $JOBFILTER_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Job postings file, overrides the config")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(facetsCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
