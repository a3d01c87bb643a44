package main

import (
	"fmt"

	"github.com/ruminaider/jobfilter/internal/config"
	"github.com/ruminaider/jobfilter/internal/facets"
	"github.com/ruminaider/jobfilter/internal/jobs"
	"github.com/ruminaider/jobfilter/internal/logging"
	"github.com/ruminaider/jobfilter/internal/paths"
	"go.uber.org/zap"
)

// env is everything a command needs after startup.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	jobs   []jobs.Job
	defs   []facets.Definition
}

// loadEnv reads the config, opens the log file and loads the job postings.
// The caller must Sync the logger.
func loadEnv() (*env, error) {
	path := configPath
	if path == "" {
		path = paths.ConfigFile()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.Data = dataPath
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	list, err := jobs.LoadFile(cfg.Data)
	if err != nil {
		logger.Error("loading jobs failed", zap.String("path", cfg.Data), zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}
	logger.Info("jobs loaded",
		zap.String("path", cfg.Data),
		zap.Int("count", len(list)),
		zap.String("config", path))

	return &env{
		cfg:    cfg,
		logger: logger,
		jobs:   list,
		defs:   buildDefinitions(cfg.Facets, list),
	}, nil
}

// buildDefinitions turns configured facets into definitions. A facet without
// configured options gets the distinct values found in the jobs.
func buildDefinitions(fcs []config.FacetConfig, list []jobs.Job) []facets.Definition {
	defs := make([]facets.Definition, 0, len(fcs))
	for _, fc := range fcs {
		opts := fc.Options
		if len(opts) == 0 {
			opts = jobs.DeriveOptions(list, fc.Key)
		}
		defs = append(defs, facets.Definition{Key: fc.Key, Label: fc.Label, Options: opts})
	}
	return defs
}
