package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/jobfilter/internal/commands"
	"github.com/ruminaider/jobfilter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initJobs = `jobs:
  - title: Senior Software Engineer
    company: Acme
    location: Stockholm
    type: Full-time
  - title: UX Designer
    company: Acme
    location: Remote
    type: Contract
    level: Mid
`

func writeJobs(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(initJobs), 0644))
	return path
}

func TestInitScan(t *testing.T) {
	res, err := commands.InitScan(writeJobs(t))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Jobs)
	assert.Equal(t, map[string]int{
		"location": 2,
		"type":     2,
		"level":    1,
		"company":  1,
	}, res.Values)

	_, err = commands.InitScan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInit_WritesConfig(t *testing.T) {
	dataPath := writeJobs(t)
	cfgPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	res, err := commands.Init(commands.InitOptions{
		ConfigPath: cfgPath,
		DataPath:   dataPath,
		FacetKeys:  []string{"type", "location"},
		FilterBar:  config.BarBottom,
		LogLevel:   "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, cfgPath, res.Path)

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, dataPath, loaded.Data)
	require.Len(t, loaded.Facets, 2)
	assert.Equal(t, "type", loaded.Facets[0].Key)
	assert.Equal(t, "Location", loaded.Facets[1].Label)
	assert.Equal(t, config.BarBottom, loaded.UI.FilterBar)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data: x\n"), 0644))

	_, err := commands.Init(commands.InitOptions{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = commands.Init(commands.InitOptions{ConfigPath: cfgPath, Force: true})
	require.NoError(t, err)
	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFacets(), loaded.Facets)
}

func TestInit_Rejects(t *testing.T) {
	dir := t.TempDir()

	_, err := commands.Init(commands.InitOptions{
		ConfigPath: filepath.Join(dir, "a.yaml"),
		FacetKeys:  []string{"salary"},
	})
	assert.ErrorContains(t, err, `unknown facet "salary"`)

	_, err = commands.Init(commands.InitOptions{
		ConfigPath: filepath.Join(dir, "b.yaml"),
		FilterBar:  "left",
	})
	assert.ErrorContains(t, err, "ui.filter_bar")
	assert.NoFileExists(t, filepath.Join(dir, "b.yaml"))
}
