package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/ruminaider/jobfilter/internal/config"
	"github.com/ruminaider/jobfilter/internal/jobs"
)

// KnownFacets are the job attributes that can be used as facets, in the
// order init offers them.
var KnownFacets = []config.FacetConfig{
	{Key: jobs.KeyLocation, Label: "Location"},
	{Key: jobs.KeyType, Label: "Type"},
	{Key: jobs.KeyDepartment, Label: "Department"},
	{Key: jobs.KeyLevel, Label: "Level"},
	{Key: jobs.KeyCompany, Label: "Company"},
}

// InitScanResult holds what was found in the data file without writing
// anything.
type InitScanResult struct {
	Jobs int
	// Distinct values per known facet key. Keys with no values are omitted.
	Values map[string]int
}

// InitOptions configures the config file Init writes.
type InitOptions struct {
	ConfigPath string
	DataPath   string
	FacetKeys  []string // subset of KnownFacets keys, in display order
	FilterBar  string   // config.BarTop or config.BarBottom
	LogLevel   string
	Force      bool // overwrite an existing file
}

// InitResult describes the written config.
type InitResult struct {
	Path   string
	Config config.Config
}

// InitScan reads the data file and reports which facets have values. Use
// this for the interactive selection phase.
func InitScan(dataPath string) (*InitScanResult, error) {
	list, err := jobs.LoadFile(dataPath)
	if err != nil {
		return nil, err
	}
	res := &InitScanResult{Jobs: len(list), Values: make(map[string]int)}
	for _, f := range KnownFacets {
		if n := len(jobs.DeriveOptions(list, f.Key)); n > 0 {
			res.Values[f.Key] = n
		}
	}
	return res, nil
}

// Init validates opts and writes a config file.
func Init(opts InitOptions) (*InitResult, error) {
	if !opts.Force {
		if _, err := os.Stat(opts.ConfigPath); err == nil {
			return nil, fmt.Errorf("config already exists at %s (use --force to overwrite)", opts.ConfigPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config: %w", err)
		}
	}

	cfg := config.Default()
	if opts.DataPath != "" {
		cfg.Data = opts.DataPath
	}
	if len(opts.FacetKeys) > 0 {
		cfg.Facets = nil
		for _, key := range opts.FacetKeys {
			fc, ok := knownFacet(key)
			if !ok {
				return nil, fmt.Errorf("unknown facet %q", key)
			}
			cfg.Facets = append(cfg.Facets, fc)
		}
	}
	if opts.FilterBar != "" {
		cfg.UI.FilterBar = opts.FilterBar
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := config.Save(opts.ConfigPath, cfg); err != nil {
		return nil, err
	}
	return &InitResult{Path: opts.ConfigPath, Config: cfg}, nil
}

func knownFacet(key string) (config.FacetConfig, bool) {
	for _, f := range KnownFacets {
		if f.Key == key {
			return f, true
		}
	}
	return config.FacetConfig{}, false
}
