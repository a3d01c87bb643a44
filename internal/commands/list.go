package commands

import (
	"github.com/ruminaider/jobfilter/internal/facets"
	"github.com/ruminaider/jobfilter/internal/jobs"
)

// ListResult is the outcome of filtering jobs non-interactively.
type ListResult struct {
	Jobs  []jobs.Job
	Total int
	Chips []facets.Chip
}

// List applies req to list.
func List(list []jobs.Job, defs []facets.Definition, req FilterRequest) (*ListResult, error) {
	s, err := req.State(defs)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Jobs:  facets.Apply(list, s),
		Total: len(list),
		Chips: facets.Chips(defs, s),
	}, nil
}

// FacetSummary describes one facet under the current filters.
type FacetSummary struct {
	Definition facets.Definition
	Selected   string
	Counts     map[string]int
}

// Summarize returns every facet with per-option counts. Each facet's counts
// ignore its own selection so they show what picking another option yields.
func Summarize(list []jobs.Job, defs []facets.Definition, req FilterRequest) ([]FacetSummary, error) {
	s, err := req.State(defs)
	if err != nil {
		return nil, err
	}
	out := make([]FacetSummary, 0, len(defs))
	for _, d := range defs {
		out = append(out, FacetSummary{
			Definition: d,
			Selected:   s.Selected(d.Key),
			Counts:     facets.Counts(list, s, d.Key),
		})
	}
	return out, nil
}
