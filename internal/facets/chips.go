package facets

import "fmt"

// ChipKind distinguishes facet chips from the query chip.
type ChipKind int

const (
	ChipFacet ChipKind = iota
	ChipQuery
)

// Chip summarizes one active piece of filter state.
type Chip struct {
	Kind  ChipKind
	Key   string // facet key; empty for the query chip
	Label string
	Value string
}

// Text is the chip's display string.
func (c Chip) Text() string {
	if c.Kind == ChipQuery {
		return fmt.Sprintf("%q", c.Value)
	}
	return c.Label + ": " + c.Value
}

// Dismiss resets only the piece of state the chip stands for.
func (c Chip) Dismiss(s *State) {
	if c.Kind == ChipQuery {
		s.SetQuery("")
		return
	}
	s.SetFacet(c.Key, "")
}

// Chips lists the active filters: selected facets in definition order, then
// selections on keys without a definition (sorted by key), then the query.
func Chips(defs []Definition, s *State) []Chip {
	var chips []Chip
	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		known[d.Key] = true
		if v := s.Selected(d.Key); v != "" {
			chips = append(chips, Chip{Kind: ChipFacet, Key: d.Key, Label: d.Label, Value: v})
		}
	}

	var extra []string
	for _, k := range s.activeKeys() {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	for _, k := range extra {
		chips = append(chips, Chip{Kind: ChipFacet, Key: k, Label: k, Value: s.Selected(k)})
	}

	if q := s.Query(); q != "" {
		chips = append(chips, Chip{Kind: ChipQuery, Label: "Search", Value: q})
	}
	return chips
}

// ClearAllVisible reports whether the "clear all" action should be offered.
func ClearAllVisible(s *State) bool {
	return !s.IsEmpty()
}
