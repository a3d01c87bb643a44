package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/jobfilter/internal/facets"
	"github.com/ruminaider/jobfilter/internal/geometry"
	"github.com/ruminaider/jobfilter/internal/overlay"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"
)

const (
	anyLabel          = "Any"
	noOptionsLabel    = "No options"
	panelChromeHeight = 2 // top and bottom border
	panelChromeWidth  = 4 // border plus one column of padding each side
	cursorMark        = "› "
	selectedMark      = " ✓"
)

// selectorRow is one line of an open panel. The first row of a non-empty
// panel is "Any", which clears the facet.
type selectorRow struct {
	label string
	value string
}

// Selector is a facet dropdown: a trigger in the filter bar plus a detached
// panel listing the facet's options. The open/closed state and placement
// live in the embedded overlay controller.
type Selector struct {
	def      facets.Definition
	ctrl     *overlay.Controller
	logger   *zap.Logger
	selected string
	counts   map[string]int

	cursor      int
	offset      int
	jump        string
	screenWidth int
}

// selectorEnv holds the pieces shared by every selector's controller.
type selectorEnv struct {
	geometry geometry.Provider
	bus      *overlay.Bus
	layer    *overlay.Layer
	params   overlay.Params
	logger   *zap.Logger
}

// newSelector creates a closed selector for def. The controller measures the
// trigger through provider and publishes its panel to layer.
func newSelector(def facets.Definition, env selectorEnv) *Selector {
	s := &Selector{def: def, logger: env.logger}
	s.ctrl = overlay.NewController(overlay.Options{
		ID:        def.Key,
		Geometry:  env.geometry,
		Bus:       env.bus,
		Layer:     env.layer,
		Params:    env.params,
		Logger:    env.logger,
		PanelSize: s.panelSize,
		OnClose: func(overlay.CloseReason) {
			s.jump = ""
		},
	})
	return s
}

// ID returns the facet key, which is also the trigger handle.
func (s *Selector) ID() string {
	return s.def.Key
}

// Definition returns the facet this selector edits.
func (s *Selector) Definition() facets.Definition {
	return s.def
}

// Selected returns the current selection, "" for none.
func (s *Selector) Selected() string {
	return s.selected
}

// IsOpen reports whether the panel is open.
func (s *Selector) IsOpen() bool {
	return s.ctrl.IsOpen()
}

// Toggle opens or closes the panel. It reports whether the panel is open
// afterwards.
func (s *Selector) Toggle() bool {
	if s.ctrl.Toggle() {
		s.resetCursor()
		return true
	}
	return false
}

// Open opens the panel. It reports false when the trigger is not laid out.
func (s *Selector) Open() bool {
	if s.ctrl.IsOpen() {
		return true
	}
	if s.ctrl.Open() {
		s.resetCursor()
		return true
	}
	return false
}

// Close closes the panel without changing the selection.
func (s *Selector) Close() {
	s.ctrl.Close()
}

// Dispose releases the controller's subscription and panel.
func (s *Selector) Dispose() {
	s.ctrl.Dispose()
}

// TriggerLabel is the text shown on the trigger.
func (s *Selector) TriggerLabel() string {
	if s.selected == "" {
		return s.def.Label + " ▾"
	}
	return s.def.Label + ": " + s.selected + " ▾"
}

// TriggerWidth is the rendered width of the trigger in cells.
func (s *Selector) TriggerWidth() int {
	return ansi.StringWidth(s.TriggerLabel()) + 2
}

// TriggerView renders the trigger. The width does not depend on focus.
func (s *Selector) TriggerView(focused bool) string {
	style := TriggerStyle
	switch {
	case s.IsOpen():
		style = TriggerOpenStyle
	case focused:
		style = TriggerFocusedStyle
	case s.selected != "":
		style = TriggerSelectedStyle
	}
	return style.Render(s.TriggerLabel())
}

func (s *Selector) rows() []selectorRow {
	if len(s.def.Options) == 0 {
		return nil
	}
	rows := make([]selectorRow, 0, len(s.def.Options)+1)
	rows = append(rows, selectorRow{label: anyLabel})
	for _, opt := range s.def.Options {
		rows = append(rows, selectorRow{label: opt, value: opt})
	}
	return rows
}

func (s *Selector) rowText(r selectorRow) string {
	text := r.label
	if r.value != "" && s.counts != nil {
		text += fmt.Sprintf(" (%d)", s.counts[r.value])
	}
	if r.value == s.selected {
		text += selectedMark
	}
	return text
}

// contentWidth is the widest row over all rows, not just the visible ones,
// so the panel does not change width while scrolling. When avail rows are
// too few for the list, the scroll hints are measured too.
func (s *Selector) contentWidth(avail int) int {
	rows := s.rows()
	if len(rows) == 0 {
		return ansi.StringWidth(cursorMark + noOptionsLabel)
	}
	w := 0
	for _, r := range rows {
		if n := ansi.StringWidth(cursorMark + s.rowText(r)); n > w {
			w = n
		}
	}
	if _, _, hints := s.window(avail); hints {
		w = max(w, ansi.StringWidth(scrollHint(moreBelow, len(rows))))
	}
	return w
}

const (
	moreAbove = "↑"
	moreBelow = "↓"
)

func scrollHint(arrow string, n int) string {
	return fmt.Sprintf("  %s %d more", arrow, n)
}

// pageRows is how many option rows are visible at once in the open panel.
func (s *Selector) pageRows() int {
	pl, ok := s.placement()
	if !ok {
		return 1
	}
	start, end, _ := s.window(listRows(pl))
	return max(end-start, 1)
}

// listRows is how many lines fit inside the border for placement pl.
func listRows(pl overlay.Placement) int {
	return pl.MaxHeight - panelChromeHeight
}

// panelSize is the rendered size of the panel for placement pl. It is zero
// when not even one row fits.
func (s *Selector) panelSize(pl overlay.Placement) (width, height int) {
	avail := listRows(pl)
	if avail < 1 {
		return 0, 0
	}
	n := len(s.rows())
	if n == 0 {
		n = 1
	}
	height = min(n, avail) + panelChromeHeight

	width = s.contentWidth(avail) + panelChromeWidth
	if width < pl.Width {
		width = pl.Width
	}
	if s.screenWidth > 0 && pl.Left+width > s.screenWidth {
		width = s.screenWidth - pl.Left
	}
	if width < panelChromeWidth+1 {
		width = panelChromeWidth + 1
	}
	return width, height
}

// window returns the visible row range and whether scroll hints take the
// first and last lines.
func (s *Selector) window(avail int) (start, end int, hints bool) {
	n := len(s.rows())
	if n <= avail {
		return 0, n, false
	}
	items := avail
	if avail >= 3 {
		items = avail - 2
		hints = true
	}
	start = s.offset
	if start > n-items {
		start = n - items
	}
	if start < 0 {
		start = 0
	}
	return start, start + items, hints
}

func (s *Selector) placement() (overlay.Placement, bool) {
	sess := s.ctrl.Session()
	if !sess.IsOpen {
		return overlay.Placement{}, false
	}
	return *sess.Placement, true
}

// ensureVisible scrolls so the cursor row is inside the window.
func (s *Selector) ensureVisible() {
	pl, ok := s.placement()
	if !ok {
		return
	}
	avail := listRows(pl)
	n := len(s.rows())
	if avail < 1 || n <= avail {
		s.offset = 0
		return
	}
	items := avail
	if avail >= 3 {
		items = avail - 2
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+items {
		s.offset = s.cursor - items + 1
	}
}

func (s *Selector) resetCursor() {
	s.cursor, s.offset, s.jump = 0, 0, ""
	for i, r := range s.rows() {
		if r.value == s.selected {
			s.cursor = i
			break
		}
	}
	s.ensureVisible()
}

// MoveCursor moves the highlighted row by delta, clamped to the list.
func (s *Selector) MoveCursor(delta int) {
	n := len(s.rows())
	if n == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	s.ensureVisible()
}

// Scroll moves the window without moving the cursor off-screen.
func (s *Selector) Scroll(delta int) {
	pl, ok := s.placement()
	if !ok {
		return
	}
	start, end, _ := s.window(listRows(pl))
	if (delta < 0 && start == 0) || (delta > 0 && end >= len(s.rows())) {
		return
	}
	s.offset = start + delta
	if s.cursor < s.offset {
		s.cursor = s.offset
	}
	if items := end - start; s.cursor >= s.offset+items {
		s.cursor = s.offset + items - 1
	}
}

// Current returns the value under the cursor. ok is false when the panel
// has no options.
func (s *Selector) Current() (value string, ok bool) {
	rows := s.rows()
	if len(rows) == 0 || s.cursor >= len(rows) {
		return "", false
	}
	return rows[s.cursor].value, true
}

// TypeAhead appends text to the jump buffer and moves the cursor to the best
// fuzzy match among the option labels.
func (s *Selector) TypeAhead(text string) {
	if len(s.def.Options) == 0 {
		return
	}
	s.jump += text
	s.jumpToMatch()
}

// Backspace removes the last rune from the jump buffer.
func (s *Selector) Backspace() {
	if s.jump == "" {
		return
	}
	r := []rune(s.jump)
	s.jump = string(r[:len(r)-1])
	if s.jump != "" {
		s.jumpToMatch()
	}
}

func (s *Selector) jumpToMatch() {
	matches := fuzzy.Find(s.jump, s.def.Options)
	if len(matches) == 0 {
		s.logger.Debug("type-ahead found nothing",
			zap.String("facet", s.def.Key),
			zap.String("pattern", s.jump))
		return
	}
	// Row 0 is "Any".
	s.cursor = matches[0].Index + 1
	s.ensureVisible()
}

// RowAt maps a screen cell to a row index, or -1 when (x, y) is not on an
// option row of the open panel.
func (s *Selector) RowAt(x, y int) int {
	pl, ok := s.placement()
	if !ok {
		return -1
	}
	r := s.ctrl.PanelRect()
	if !r.Contains(x, y) {
		return -1
	}
	line := y - r.Top - 1
	avail := listRows(pl)
	start, end, hints := s.window(avail)
	if hints {
		line--
	}
	if line < 0 || start+line >= end {
		return -1
	}
	return start + line
}

// SelectRow moves the cursor to row i.
func (s *Selector) SelectRow(i int) {
	if i >= 0 && i < len(s.rows()) {
		s.cursor = i
	}
}

// PanelView renders the open panel without positioning. It returns "" when
// closed or when there is no room for a single row.
func (s *Selector) PanelView() string {
	pl, ok := s.placement()
	if !ok {
		return ""
	}
	width, height := s.panelSize(pl)
	if height == 0 {
		return ""
	}
	inner := width - panelChromeWidth

	rows := s.rows()
	var lines []string
	if len(rows) == 0 {
		lines = append(lines, PanelDimStyle.Render(fit("  "+noOptionsLabel, inner)))
	} else {
		start, end, hints := s.window(listRows(pl))
		if hints {
			hint := ""
			if start > 0 {
				hint = scrollHint(moreAbove, start)
			}
			lines = append(lines, PanelDimStyle.Render(fit(hint, inner)))
		}
		for i := start; i < end; i++ {
			lines = append(lines, s.renderRow(i, rows[i], inner))
		}
		if hints {
			hint := ""
			if rest := len(rows) - end; rest > 0 {
				hint = scrollHint(moreBelow, rest)
			}
			lines = append(lines, PanelDimStyle.Render(fit(hint, inner)))
		}
	}
	return PanelStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (s *Selector) renderRow(i int, r selectorRow, inner int) string {
	prefix := "  "
	if i == s.cursor {
		prefix = cursorMark
	}
	text := fit(prefix+s.rowText(r), inner)
	switch {
	case i == s.cursor:
		return PanelCursorStyle.Render(text)
	case r.value == s.selected:
		return PanelSelectedStyle.Render(text)
	default:
		return text
	}
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if n := ansi.StringWidth(s); n < width {
		s += strings.Repeat(" ", width-n)
	}
	return s
}
