package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with result counts and keyboard shortcuts.
type StatusBar struct {
	shown  int
	total  int
	active int
	width  int
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the counts.
func (s *StatusBar) Update(shown, total, active int) {
	s.shown = shown
	s.total = total
	s.active = active
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := fmt.Sprintf("%d/%d jobs shown", s.shown, s.total)
	switch s.active {
	case 0:
	case 1:
		left += " · 1 filter"
	default:
		left += fmt.Sprintf(" · %d filters", s.active)
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("Tab") + ": filters",
		StatusBarKeyStyle.Render("/") + ": search",
		StatusBarKeyStyle.Render("x") + ": clear",
		StatusBarKeyStyle.Render("?") + ": help",
	}
	right := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right
	if s.width > 2 {
		content = ansi.Truncate(content, availableWidth, "")
	}
	return StatusBarStyle.Width(s.width).Render(content)
}
