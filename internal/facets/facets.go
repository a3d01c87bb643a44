package facets

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Definition describes one filterable attribute and its closed set of
// options. Options are supplied by the caller and never modified here.
type Definition struct {
	Key     string
	Label   string
	Options []string
}

// HasOption reports whether value is one of d's options.
func (d Definition) HasOption(value string) bool {
	for _, o := range d.Options {
		if o == value {
			return true
		}
	}
	return false
}

// Record is anything the engine can filter.
type Record interface {
	// Attribute returns the value of the facet attribute named key, or ""
	// when the record has no such attribute.
	Attribute(key string) string

	// SearchableText returns the attributes matched by the free-text query.
	SearchableText() []string
}

// State holds the selection per facet plus the free-text query. An empty
// selection means "no constraint". The zero value is usable.
type State struct {
	selected map[string]string
	query    string
}

// NewState creates a state with every defined facet unconstrained and an
// empty query.
func NewState(defs []Definition) *State {
	s := &State{selected: make(map[string]string, len(defs))}
	for _, d := range defs {
		s.selected[d.Key] = ""
	}
	return s
}

// SetFacet replaces the selection of one facet. An empty value clears it.
// Other facets are left untouched.
func (s *State) SetFacet(key, value string) {
	if s.selected == nil {
		s.selected = make(map[string]string)
	}
	s.selected[key] = value
}

// SetQuery replaces the free-text query verbatim.
func (s *State) SetQuery(text string) {
	s.query = text
}

// ClearAll resets every facet and the query.
func (s *State) ClearAll() {
	for k := range s.selected {
		s.selected[k] = ""
	}
	s.query = ""
}

// Selected returns the selection for key, "" when unconstrained.
func (s *State) Selected(key string) string {
	return s.selected[key]
}

// Query returns the free-text query.
func (s *State) Query() string {
	return s.query
}

// IsEmpty reports whether no facet is selected and the query is empty.
func (s *State) IsEmpty() bool {
	if s.query != "" {
		return false
	}
	for _, v := range s.selected {
		if v != "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := &State{selected: make(map[string]string, len(s.selected)), query: s.query}
	for k, v := range s.selected {
		c.selected[k] = v
	}
	return c
}

// activeKeys returns the keys with a non-empty selection, sorted so the
// evaluation order is fixed.
func (s *State) activeKeys() []string {
	var keys []string
	for k, v := range s.selected {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// matcher is a compiled State. Predicates are side-effect free so the order
// they are checked in does not change the outcome.
type matcher struct {
	facets map[string]string
	query  string
	fold   cases.Caser
}

func newMatcher(s *State, skip string) matcher {
	m := matcher{facets: make(map[string]string), fold: cases.Fold()}
	for _, k := range s.activeKeys() {
		if k != skip {
			m.facets[k] = s.selected[k]
		}
	}
	if s.query != "" {
		m.query = m.fold.String(s.query)
	}
	return m
}

func (m matcher) match(r Record) bool {
	for k, v := range m.facets {
		// Exact and case-sensitive: values come from a closed enumeration.
		if r.Attribute(k) != v {
			return false
		}
	}
	if m.query == "" {
		return true
	}
	for _, text := range r.SearchableText() {
		if strings.Contains(m.fold.String(text), m.query) {
			return true
		}
	}
	return false
}

// Apply returns the records that satisfy every non-empty facet selection and,
// when the query is non-empty, contain it case-insensitively in at least one
// searchable attribute. Input order is preserved and records is not modified.
func Apply[R Record](records []R, s *State) []R {
	m := newMatcher(s, "")
	out := make([]R, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Counts returns, for the facet key, how many records carry each value when
// every other facet and the query are applied and key's own selection is
// ignored. That is the number of results picking that value would yield.
func Counts[R Record](records []R, s *State, key string) map[string]int {
	m := newMatcher(s, key)
	counts := make(map[string]int)
	for _, r := range records {
		if m.match(r) {
			counts[r.Attribute(key)]++
		}
	}
	return counts
}
