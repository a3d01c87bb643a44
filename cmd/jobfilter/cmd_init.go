package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/jobfilter/internal/commands"
	"github.com/ruminaider/jobfilter/internal/config"
	"github.com/ruminaider/jobfilter/internal/paths"
	"github.com/spf13/cobra"
)

var (
	initForce    bool
	initDefaults bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file",
	Long: "init asks for the job data file, the facets to filter on and where the " +
		"filter bar goes, then writes ~/.jobfilter/config.yaml.",
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config")
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "Skip the prompts and write the defaults")
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := commands.InitOptions{
		ConfigPath: configPath,
		DataPath:   dataPath,
		Force:      initForce,
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = paths.ConfigFile()
	}
	if opts.DataPath == "" {
		opts.DataPath = paths.DataFile()
	}

	if !initDefaults && term.IsTerminal(os.Stdin.Fd()) {
		if err := runInitForm(&opts); err != nil {
			return err
		}
	}

	res, err := commands.Init(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", res.Path)
	fmt.Fprintf(out, "  data:       %s\n", res.Config.Data)
	fmt.Fprintf(out, "  facets:     %s\n", facetKeys(res.Config.Facets))
	fmt.Fprintf(out, "  filter bar: %s\n", res.Config.UI.FilterBar)
	return nil
}

func runInitForm(opts *commands.InitOptions) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Job postings file:").
				Description("YAML file with a top-level jobs: list").
				Value(&opts.DataPath),
		),
	).Run()
	if err != nil {
		return err
	}

	// Offer only facets that have values in the data, when it can be read.
	var options []huh.Option[string]
	scan, scanErr := commands.InitScan(opts.DataPath)
	for _, f := range commands.KnownFacets {
		label := f.Label
		if scanErr == nil {
			n, ok := scan.Values[f.Key]
			if !ok {
				continue
			}
			label = fmt.Sprintf("%s (%d values)", f.Label, n)
		}
		options = append(options, huh.NewOption(label, f.Key).Selected(isDefaultFacet(f.Key)))
	}

	filterBar := config.BarTop
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Facets to filter on:").
				Description("Space to toggle, Enter to confirm").
				Options(options...).
				Value(&opts.FacetKeys),
			huh.NewSelect[string]().
				Title("Filter bar position:").
				Options(
					huh.NewOption("Top", config.BarTop),
					huh.NewOption("Bottom", config.BarBottom),
				).
				Value(&filterBar),
		),
	).Run()
	if err != nil {
		return err
	}
	opts.FilterBar = filterBar
	return nil
}

func isDefaultFacet(key string) bool {
	for _, f := range config.DefaultFacets() {
		if f.Key == key {
			return true
		}
	}
	return false
}

func facetKeys(fcs []config.FacetConfig) string {
	keys := make([]string, len(fcs))
	for i, f := range fcs {
		keys[i] = f.Key
	}
	return strings.Join(keys, ", ")
}
