package jobs

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

// Facet keys understood by Job.Attribute.
const (
	KeyLocation   = "location"
	KeyType       = "type"
	KeyDepartment = "department"
	KeyLevel      = "level"
	KeyCompany    = "company"
)

// Job is one posting in the data file.
type Job struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Company    string `yaml:"company"`
	Location   string `yaml:"location"`
	Type       string `yaml:"type"`
	Department string `yaml:"department,omitempty"`
	Level      string `yaml:"level,omitempty"`
	URL        string `yaml:"url,omitempty"`
}

// Attribute implements facets.Record.
func (j Job) Attribute(key string) string {
	switch key {
	case KeyLocation:
		return j.Location
	case KeyType:
		return j.Type
	case KeyDepartment:
		return j.Department
	case KeyLevel:
		return j.Level
	case KeyCompany:
		return j.Company
	default:
		return ""
	}
}

// SearchableText implements facets.Record. The query matches the title and
// the company name.
func (j Job) SearchableText() []string {
	return []string{j.Title, j.Company}
}

// file is the on-disk layout of a job list.
type file struct {
	Jobs []Job `yaml:"jobs"`
}

// Parse decodes a job list. Jobs without an id get a random one so they can
// be told apart in the UI.
func Parse(data []byte) ([]Job, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing jobs: %w", err)
	}
	for i := range f.Jobs {
		if f.Jobs[i].ID == "" {
			f.Jobs[i].ID = uuid.NewString()
		}
		if f.Jobs[i].Title == "" {
			return nil, fmt.Errorf("job %d: title is required", i+1)
		}
	}
	return f.Jobs, nil
}

// LoadFile reads and parses a job list from path.
func LoadFile(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs %s: %w", path, err)
	}
	return Parse(data)
}

// DeriveOptions returns the distinct non-empty values of a facet across
// jobs, sorted.
func DeriveOptions(jobs []Job, key string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, j := range jobs {
		v := j.Attribute(key)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
