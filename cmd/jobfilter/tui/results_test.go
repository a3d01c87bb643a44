package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultList_View(t *testing.T) {
	var r ResultList
	r.SetSize(80, 3)
	r.SetItems(testJobs(), false)

	lines := strings.Split(r.View(), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Senior Software Engineer")
	assert.Contains(t, lines[0], "Acme · Stockholm · Full-time · Engineering")
}

func TestResultList_Scroll(t *testing.T) {
	var r ResultList
	r.SetSize(80, 3)
	r.SetItems(testJobs(), false)

	r.ScrollBy(10)
	assert.Equal(t, 1, r.Offset(), "clamped so the last page is full")
	r.ScrollBy(-10)
	assert.Equal(t, 0, r.Offset())

	r.ScrollBy(1)
	r.SetItems(testJobs()[:2], true)
	assert.Equal(t, 0, r.Offset(), "new items reset the offset")
}

func TestResultList_EmptyState(t *testing.T) {
	var r ResultList
	r.SetSize(80, 5)

	r.SetItems(nil, true)
	view := r.View()
	assert.Contains(t, view, emptyResultsMessage)
	assert.Contains(t, view, "clear all filters")
	assert.Len(t, strings.Split(view, "\n"), 5)

	r.SetItems(nil, false)
	assert.Contains(t, r.View(), "No jobs loaded")
}

func TestResultList_Truncates(t *testing.T) {
	var r ResultList
	r.SetSize(20, 1)
	r.SetItems(testJobs(), false)
	assert.Contains(t, r.View(), "…")
}

func TestStatusBar_View(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(100)

	s.Update(4, 4, 0)
	assert.Contains(t, s.View(), "4/4 jobs shown")
	assert.NotContains(t, s.View(), "filter ")

	s.Update(1, 4, 1)
	assert.Contains(t, s.View(), "1/4 jobs shown · 1 filter")

	s.Update(0, 4, 3)
	assert.Contains(t, s.View(), "3 filters")
}
