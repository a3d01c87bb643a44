package commands_test

import (
	"testing"

	"github.com/ruminaider/jobfilter/internal/commands"
	"github.com/ruminaider/jobfilter/internal/facets"
	"github.com/ruminaider/jobfilter/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []jobs.Job {
	return []jobs.Job{
		{ID: "1", Title: "Senior Software Engineer", Company: "Acme", Location: "Stockholm", Type: "Full-time"},
		{ID: "2", Title: "Marketing Manager", Company: "Nordlys", Location: "Göteborg", Type: "Full-time"},
		{ID: "3", Title: "UX Designer", Company: "Acme", Location: "Remote", Type: "Contract"},
	}
}

func sampleDefs() []facets.Definition {
	return []facets.Definition{
		{Key: jobs.KeyLocation, Label: "Location", Options: []string{"Göteborg", "Remote", "Stockholm"}},
		{Key: jobs.KeyType, Label: "Type", Options: []string{"Contract", "Full-time"}},
	}
}

func TestParseFacetArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]string
		wantErr bool
	}{
		{"empty", nil, map[string]string{}, false},
		{"single", []string{"location=Stockholm"}, map[string]string{"location": "Stockholm"}, false},
		{"later wins", []string{"type=Contract", "type=Full-time"}, map[string]string{"type": "Full-time"}, false},
		{"value with equals", []string{"location=a=b"}, map[string]string{"location": "a=b"}, false},
		{"empty value clears", []string{"location="}, map[string]string{"location": ""}, false},
		{"missing equals", []string{"location"}, nil, true},
		{"missing key", []string{"=Stockholm"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := commands.ParseFacetArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList(t *testing.T) {
	t.Run("facet and query", func(t *testing.T) {
		res, err := commands.List(sampleJobs(), sampleDefs(), commands.FilterRequest{
			Facets: map[string]string{"type": "Full-time"},
			Query:  "acme",
		})
		require.NoError(t, err)
		require.Len(t, res.Jobs, 1)
		assert.Equal(t, "Senior Software Engineer", res.Jobs[0].Title)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Chips, 2)
		assert.Equal(t, "Type: Full-time", res.Chips[0].Text())
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		res, err := commands.List(sampleJobs(), sampleDefs(), commands.FilterRequest{})
		require.NoError(t, err)
		assert.Len(t, res.Jobs, 3)
		assert.Empty(t, res.Chips)
	})

	t.Run("value outside options matches nothing", func(t *testing.T) {
		res, err := commands.List(sampleJobs(), sampleDefs(), commands.FilterRequest{
			Facets: map[string]string{"location": "Mars"},
		})
		require.NoError(t, err)
		assert.Empty(t, res.Jobs)
		assert.NotNil(t, res.Jobs)
	})

	t.Run("unknown facet", func(t *testing.T) {
		_, err := commands.List(sampleJobs(), sampleDefs(), commands.FilterRequest{
			Facets: map[string]string{"salary": "high"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown facet "salary"`)
		assert.Contains(t, err.Error(), "location, type")
	})
}

func TestSummarize(t *testing.T) {
	sums, err := commands.Summarize(sampleJobs(), sampleDefs(), commands.FilterRequest{
		Facets: map[string]string{"location": "Stockholm"},
	})
	require.NoError(t, err)
	require.Len(t, sums, 2)

	loc := sums[0]
	assert.Equal(t, "Stockholm", loc.Selected)
	// Own selection is ignored.
	assert.Equal(t, map[string]int{"Stockholm": 1, "Göteborg": 1, "Remote": 1}, loc.Counts)

	typ := sums[1]
	assert.Equal(t, "", typ.Selected)
	assert.Equal(t, map[string]int{"Full-time": 1}, typ.Counts)
}
