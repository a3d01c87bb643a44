package main

import (
	"fmt"
	"io"

	"github.com/ruminaider/jobfilter/internal/commands"
	"github.com/spf13/cobra"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show every facet with per-option counts",
	Long: "facets lists the configured facets and how many jobs each option would " +
		"leave, given the other filters on the command line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := filterRequest()
		if err != nil {
			return err
		}
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer func() { _ = e.logger.Sync() }()

		sums, err := commands.Summarize(e.jobs, e.defs, req)
		if err != nil {
			return err
		}
		printFacets(cmd.OutOrStdout(), sums)
		return nil
	},
}

func init() {
	addFilterFlags(facetsCmd)
}

func printFacets(w io.Writer, sums []commands.FacetSummary) {
	for i, s := range sums {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", s.Definition.Label, s.Definition.Key)
		if len(s.Definition.Options) == 0 {
			fmt.Fprintln(w, "  (no options)")
			continue
		}
		for _, opt := range s.Definition.Options {
			mark := " "
			if opt == s.Selected {
				mark = "✓"
			}
			fmt.Fprintf(w, "  %s %s (%d)\n", mark, opt, s.Counts[opt])
		}
	}
}
