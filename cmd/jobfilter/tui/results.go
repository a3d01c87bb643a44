package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/jobfilter/internal/jobs"
)

const (
	emptyResultsMessage = "No matching jobs"
	metaSeparator       = " · "
)

// ResultList renders the filtered jobs, one per line, with a scroll offset.
type ResultList struct {
	items    []jobs.Job
	filtered bool
	offset   int
	width    int
	height   int
}

// SetSize sets the area the list renders into.
func (r *ResultList) SetSize(width, height int) {
	r.width, r.height = width, height
	r.clampOffset()
}

// SetItems replaces the list. filtered says whether any filter is active,
// which selects the empty-state hint.
func (r *ResultList) SetItems(items []jobs.Job, filtered bool) {
	r.items = items
	r.filtered = filtered
	r.offset = 0
}

// Len returns the number of jobs in the list.
func (r ResultList) Len() int {
	return len(r.items)
}

// Offset returns the index of the first visible job.
func (r ResultList) Offset() int {
	return r.offset
}

// ScrollBy moves the window by delta rows.
func (r *ResultList) ScrollBy(delta int) {
	r.offset += delta
	r.clampOffset()
}

// Page is the number of rows that fit.
func (r ResultList) Page() int {
	return max(r.height, 1)
}

func (r *ResultList) clampOffset() {
	maxOffset := len(r.items) - r.height
	if r.offset > maxOffset {
		r.offset = maxOffset
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// View renders exactly height lines.
func (r ResultList) View() string {
	if r.height <= 0 {
		return ""
	}
	lines := make([]string, 0, r.height)
	if len(r.items) == 0 {
		lines = append(lines, "")
		lines = append(lines, "  "+EmptyStateStyle.Render(emptyResultsMessage))
		hint := "No jobs loaded."
		if r.filtered {
			hint = "Press x to clear all filters."
		}
		lines = append(lines, "  "+HintStyle.Render(hint))
	} else {
		end := min(r.offset+r.height, len(r.items))
		for _, j := range r.items[r.offset:end] {
			lines = append(lines, r.renderJob(j))
		}
	}
	if len(lines) > r.height {
		lines = lines[:r.height]
	}
	for len(lines) < r.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (r ResultList) renderJob(j jobs.Job) string {
	var meta []string
	for _, v := range []string{j.Company, j.Location, j.Type, j.Department} {
		if v != "" {
			meta = append(meta, v)
		}
	}
	line := "  " + ResultTitleStyle.Render(j.Title)
	if len(meta) > 0 {
		line += "  " + ResultMetaStyle.Render(strings.Join(meta, metaSeparator))
	}
	return ansi.Truncate(line, r.width, "…")
}
