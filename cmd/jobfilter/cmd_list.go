package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ruminaider/jobfilter/internal/commands"
	"github.com/ruminaider/jobfilter/internal/jobs"
	"github.com/spf13/cobra"
)

var (
	filterFacets []string
	filterQuery  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the jobs that match the given filters",
	Example: `  jobfilter list --facet location=Stockholm --facet type=Full-time
  jobfilter list --query engineer`,
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

		res, err := commands.List(e.jobs, e.defs, req)
		if err != nil {
			return err
		}
		printList(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	addFilterFlags(listCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&filterFacets, "facet", "f", nil, "Facet constraint as key=value (repeatable)")
	cmd.Flags().StringVarP(&filterQuery, "query", "q", "", "Free-text search over title and company")
}

func filterRequest() (commands.FilterRequest, error) {
	fs, err := commands.ParseFacetArgs(filterFacets)
	if err != nil {
		return commands.FilterRequest{}, err
	}
	return commands.FilterRequest{Facets: fs, Query: filterQuery}, nil
}

func printList(w io.Writer, res *commands.ListResult) {
	if len(res.Chips) > 0 {
		texts := make([]string, len(res.Chips))
		for i, c := range res.Chips {
			texts[i] = c.Text()
		}
		fmt.Fprintf(w, "Filters: %s\n\n", strings.Join(texts, ", "))
	}

	if len(res.Jobs) == 0 {
		fmt.Fprintln(w, "No matching jobs.")
		return
	}
	for _, j := range res.Jobs {
		fmt.Fprintf(w, "  %s\n", j.Title)
		if meta := jobMeta(j); meta != "" {
			fmt.Fprintf(w, "    %s\n", meta)
		}
	}
	fmt.Fprintf(w, "\n%d of %d jobs\n", len(res.Jobs), res.Total)
}

func jobMeta(j jobs.Job) string {
	var parts []string
	for _, v := range []string{j.Company, j.Location, j.Type, j.Department, j.Level} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " · ")
}
