package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ruminaider/jobfilter/internal/facets"
)

// FilterRequest is a filter given on the command line.
type FilterRequest struct {
	Facets map[string]string
	Query  string
}

// ParseFacetArgs parses repeated key=value arguments. A later value for the
// same key wins. An empty value is allowed and means "no constraint".
func ParseFacetArgs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid facet %q: expected key=value", a)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// State builds filter state from the request. Keys must name a defined facet;
// values outside a facet's options are accepted and simply match nothing.
func (r FilterRequest) State(defs []facets.Definition) (*facets.State, error) {
	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		known[d.Key] = true
	}

	keys := make([]string, 0, len(r.Facets))
	for k := range r.Facets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := facets.NewState(defs)
	for _, k := range keys {
		if !known[k] {
			return nil, fmt.Errorf("unknown facet %q (known: %s)", k, strings.Join(defKeys(defs), ", "))
		}
		s.SetFacet(k, r.Facets[k])
	}
	s.SetQuery(r.Query)
	return s, nil
}

func defKeys(defs []facets.Definition) []string {
	keys := make([]string, len(defs))
	for i, d := range defs {
		keys[i] = d.Key
	}
	return keys
}
