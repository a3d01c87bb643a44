package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/jobfilter/internal/config"
	"github.com/ruminaider/jobfilter/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full format", func(t *testing.T) {
		input := []byte(`data: /srv/jobs.yaml
facets:
  - key: location
    label: Location
    options: [Stockholm, Göteborg, Remote]
  - key: level
overlay:
  min_comfortable_space: 6
  preferred_max_height: 10
  margin: 1
  gap: 1
ui:
  filter_bar: bottom
logging:
  level: debug
  file: /tmp/jobfilter.log
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "/srv/jobs.yaml", cfg.Data)
		require.Len(t, cfg.Facets, 2)
		assert.Equal(t, []string{"Stockholm", "Göteborg", "Remote"}, cfg.Facets[0].Options)
		assert.Equal(t, "level", cfg.Facets[1].Label, "label defaults to key")
		assert.Equal(t, overlay.Params{MinComfortableSpace: 6, PreferredMaxHeight: 10, Margin: 1, Gap: 1}, cfg.Overlay.Params())
		assert.Equal(t, config.BarBottom, cfg.UI.FilterBar)
		assert.Equal(t, "debug", cfg.Logging.Level)
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty config gets defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(``))
		require.NoError(t, err)
		assert.Equal(t, config.DefaultFacets(), cfg.Facets)
		assert.Equal(t, overlay.TerminalParams, cfg.Overlay.Params())
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, config.BarTop, cfg.UI.FilterBar)
		assert.NotEmpty(t, cfg.Data)
		assert.NotEmpty(t, cfg.Logging.File)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("JOBS_DIR", "/data")
		cfg, err := config.Parse([]byte("data: ${JOBS_DIR}/jobs.yaml\n"))
		require.NoError(t, err)
		assert.Equal(t, "/data/jobs.yaml", cfg.Data)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"defaults are valid", func(c *config.Config) {}, ""},
		{"missing key", func(c *config.Config) { c.Facets[0].Key = "" }, "facets[0].key is required"},
		{"duplicate key", func(c *config.Config) { c.Facets[1].Key = c.Facets[0].Key }, "duplicated"},
		{"negative overlay", func(c *config.Config) { c.Overlay.Margin = -1 }, "must not be negative"},
		{"bad bar position", func(c *config.Config) { c.UI.FilterBar = "left" }, "ui.filter_bar"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("invalid file is rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Data = "/srv/jobs.yaml"
	cfg.Facets = []config.FacetConfig{{Key: "level", Label: "Seniority", Options: []string{"Junior", "Senior"}}}

	require.NoError(t, config.Save(path, cfg))
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
