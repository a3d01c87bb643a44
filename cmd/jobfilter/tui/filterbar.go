package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/jobfilter/internal/facets"
	"github.com/ruminaider/jobfilter/internal/geometry"
	"github.com/ruminaider/jobfilter/internal/jobs"
	"github.com/ruminaider/jobfilter/internal/overlay"
	"go.uber.org/zap"
)

const (
	barIndent     = 1 // left column of the first trigger and chip
	clearAllLabel = "clear all"
	chipCloseMark = " ×"
	searchPrompt  = "/ "
)

// FilterBar is the filter composer: one trigger per facet, a search field
// and a row of chips for the active filters. It owns the selectors and
// measures its own layout, so it doubles as the geometry provider for their
// overlay controllers.
type FilterBar struct {
	state     *facets.State
	selectors []*Selector
	layer     *overlay.Layer
	logger    *zap.Logger
	query     textinput.Model

	// focus indexes selectors; len(selectors) is the search field.
	focus int

	width, height int
	row, chipsRow int
}

// NewFilterBar creates a filter bar editing state. Panels publish to layer
// and listen for outside signals on bus.
func NewFilterBar(defs []facets.Definition, state *facets.State, bus *overlay.Bus, layer *overlay.Layer, params overlay.Params, logger *zap.Logger) *FilterBar {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Prompt = searchPrompt
	ti.Placeholder = "search titles and companies"
	ti.CharLimit = 64

	b := &FilterBar{
		state:  state,
		layer:  layer,
		logger: logger,
		query:  ti,
	}
	env := selectorEnv{geometry: b, bus: bus, layer: layer, params: params, logger: logger}
	for _, d := range defs {
		s := newSelector(d, env)
		s.selected = state.Selected(d.Key)
		b.selectors = append(b.selectors, s)
	}
	b.query.SetValue(state.Query())
	return b
}

// SetSize records the screen size and the rows the bar occupies.
func (b *FilterBar) SetSize(width, height, row, chipsRow int) {
	b.width, b.height = width, height
	b.row, b.chipsRow = row, chipsRow
	for _, s := range b.selectors {
		s.screenWidth = width
	}
}

// Viewport implements geometry.Provider.
func (b *FilterBar) Viewport() geometry.Rect {
	return geometry.Rect{Width: b.width, Height: b.height}
}

// TriggerRect implements geometry.Provider. The layout is recomputed on
// every call from the current labels and screen width.
func (b *FilterBar) TriggerRect(handle string) geometry.Rect {
	rects, _ := b.triggerLayout()
	return rects[handle]
}

// triggerLayout packs triggers left to right. A trigger that does not fit
// and every trigger after it are not laid out. next is the first free
// column after the last placed trigger.
func (b *FilterBar) triggerLayout() (rects map[string]geometry.Rect, next int) {
	rects = make(map[string]geometry.Rect, len(b.selectors))
	x := barIndent
	for _, s := range b.selectors {
		w := s.TriggerWidth()
		if x+w > b.width {
			break
		}
		rects[s.ID()] = geometry.Rect{Top: b.row, Left: x, Width: w, Height: 1}
		x += w + 1
	}
	return rects, x
}

// searchRect is the area of the search field on the trigger row.
func (b *FilterBar) searchRect() geometry.Rect {
	_, x := b.triggerLayout()
	x++
	if x >= b.width {
		return geometry.Rect{}
	}
	return geometry.Rect{Top: b.row, Left: x, Width: b.width - x, Height: 1}
}

type chipSlot struct {
	chip facets.Chip
	rect geometry.Rect
}

func chipLabel(c facets.Chip) string {
	return c.Text() + chipCloseMark
}

// chipLayout places the chips and the clear-all action on the chips row.
// Slots that do not fit are dropped.
func (b *FilterBar) chipLayout() (slots []chipSlot, clearAll geometry.Rect) {
	x := barIndent
	for _, c := range facets.Chips(b.definitions(), b.state) {
		w := ansi.StringWidth(chipLabel(c)) + 2
		if x+w > b.width {
			break
		}
		slots = append(slots, chipSlot{chip: c, rect: geometry.Rect{Top: b.chipsRow, Left: x, Width: w, Height: 1}})
		x += w + 1
	}
	if facets.ClearAllVisible(b.state) {
		w := ansi.StringWidth(clearAllLabel) + 2
		if x+w <= b.width {
			clearAll = geometry.Rect{Top: b.chipsRow, Left: x, Width: w, Height: 1}
		}
	}
	return slots, clearAll
}

func (b *FilterBar) definitions() []facets.Definition {
	defs := make([]facets.Definition, len(b.selectors))
	for i, s := range b.selectors {
		defs[i] = s.def
	}
	return defs
}

// State returns the filter state the bar edits.
func (b *FilterBar) State() *facets.State {
	return b.state
}

// Selectors returns the selectors in display order.
func (b *FilterBar) Selectors() []*Selector {
	return b.selectors
}

// Selector returns the selector for a facet key, or nil.
func (b *FilterBar) Selector(key string) *Selector {
	for _, s := range b.selectors {
		if s.ID() == key {
			return s
		}
	}
	return nil
}

// Active returns the most recently opened selector that is still open, or
// nil. Keyboard input goes to it.
func (b *FilterBar) Active() *Selector {
	id := b.layer.Top()
	if id == "" {
		return nil
	}
	return b.Selector(id)
}

// Focus returns the focused index; len(Selectors()) is the search field.
func (b *FilterBar) Focus() int {
	return b.focus
}

// SearchFocused reports whether the search field has focus.
func (b *FilterBar) SearchFocused() bool {
	return b.query.Focused()
}

// FocusNext moves focus to the next trigger, wrapping through the search
// field.
func (b *FilterBar) FocusNext() {
	b.setFocus((b.focus + 1) % (len(b.selectors) + 1))
}

// FocusPrev moves focus to the previous trigger, wrapping through the search
// field.
func (b *FilterBar) FocusPrev() {
	n := len(b.selectors) + 1
	b.setFocus((b.focus - 1 + n) % n)
}

// FocusSearch moves focus to the search field and starts editing.
func (b *FilterBar) FocusSearch() tea.Cmd {
	b.focus = len(b.selectors)
	return b.query.Focus()
}

// BlurSearch stops editing the search field. Focus stays on it.
func (b *FilterBar) BlurSearch() {
	b.query.Blur()
}

func (b *FilterBar) setFocus(i int) {
	b.focus = i
	if i != len(b.selectors) {
		b.query.Blur()
	}
}

// OpenFocused opens the focused trigger's panel. On the search field it
// starts editing instead.
func (b *FilterBar) OpenFocused() tea.Cmd {
	if b.focus >= len(b.selectors) {
		return b.FocusSearch()
	}
	s := b.selectors[b.focus]
	if !s.Open() {
		b.logger.Debug("trigger not laid out", zap.String("facet", s.ID()))
	}
	return nil
}

// Choose applies value to the selector's facet and closes its panel.
func (b *FilterBar) Choose(s *Selector, value string) {
	b.state.SetFacet(s.def.Key, value)
	s.selected = value
	s.ctrl.Select()
	b.logger.Debug("facet selected",
		zap.String("facet", s.def.Key),
		zap.String("value", value))
}

// UpdateQuery forwards msg to the search field and reports whether the query
// text changed.
func (b *FilterBar) UpdateQuery(msg tea.Msg) (bool, tea.Cmd) {
	var cmd tea.Cmd
	b.query, cmd = b.query.Update(msg)
	if v := b.query.Value(); v != b.state.Query() {
		b.state.SetQuery(v)
		return true, cmd
	}
	return false, cmd
}

// ClearAll resets every facet and the query. It reports whether anything was
// active.
func (b *FilterBar) ClearAll() bool {
	if !facets.ClearAllVisible(b.state) {
		return false
	}
	b.state.ClearAll()
	b.query.SetValue("")
	b.syncSelections()
	b.logger.Debug("filters cleared")
	return true
}

// DismissChip removes the i-th active filter (0-based). It reports whether
// a chip existed at that index.
func (b *FilterBar) DismissChip(i int) bool {
	chips := facets.Chips(b.definitions(), b.state)
	if i < 0 || i >= len(chips) {
		return false
	}
	b.dismiss(chips[i])
	return true
}

func (b *FilterBar) dismiss(c facets.Chip) {
	c.Dismiss(b.state)
	if c.Kind == facets.ChipQuery {
		b.query.SetValue("")
	}
	b.syncSelections()
	b.logger.Debug("filter removed", zap.String("chip", c.Text()))
}

// ActiveCount is the number of chips.
func (b *FilterBar) ActiveCount() int {
	return len(facets.Chips(b.definitions(), b.state))
}

// Refresh recomputes per-option counts over records and syncs the trigger
// labels with the state.
func (b *FilterBar) Refresh(records []jobs.Job) {
	for _, s := range b.selectors {
		s.counts = facets.Counts(records, b.state, s.def.Key)
	}
	b.syncSelections()
}

func (b *FilterBar) syncSelections() {
	for _, s := range b.selectors {
		s.selected = b.state.Selected(s.def.Key)
	}
}

// Click handles a primary-button press at (x, y) after outside signals have
// been published. It reports whether the filter state changed.
func (b *FilterBar) Click(x, y int) bool {
	panels := b.layer.Panels()
	for i := len(panels) - 1; i >= 0; i-- {
		s := b.Selector(panels[i].ID)
		if s == nil || !s.ctrl.PanelRect().Contains(x, y) {
			continue
		}
		row := s.RowAt(x, y)
		if row < 0 {
			return false
		}
		s.SelectRow(row)
		if v, ok := s.Current(); ok {
			b.Choose(s, v)
			return true
		}
		return false
	}

	rects, _ := b.triggerLayout()
	for i, s := range b.selectors {
		if rects[s.ID()].Contains(x, y) {
			b.setFocus(i)
			s.Toggle()
			return false
		}
	}

	slots, clearAll := b.chipLayout()
	for _, slot := range slots {
		if slot.rect.Contains(x, y) {
			b.dismiss(slot.chip)
			return true
		}
	}
	if clearAll.Contains(x, y) {
		return b.ClearAll()
	}

	if b.searchRect().Contains(x, y) {
		b.FocusSearch()
		return false
	}
	if b.query.Focused() {
		b.query.Blur()
	}
	return false
}

// PanelAt returns the topmost open selector whose panel contains (x, y).
func (b *FilterBar) PanelAt(x, y int) *Selector {
	panels := b.layer.Panels()
	for i := len(panels) - 1; i >= 0; i-- {
		if s := b.Selector(panels[i].ID); s != nil && s.ctrl.PanelRect().Contains(x, y) {
			return s
		}
	}
	return nil
}

// TriggerRowView renders the triggers followed by the search field.
func (b *FilterBar) TriggerRowView() string {
	rects, _ := b.triggerLayout()
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", barIndent))
	for i, s := range b.selectors {
		if _, ok := rects[s.ID()]; !ok {
			break
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s.TriggerView(i == b.focus && !b.query.Focused()))
	}
	if r := b.searchRect(); !r.IsZero() {
		sb.WriteString(strings.Repeat(" ", max(r.Left-ansi.StringWidth(sb.String()), 0)))
		q := b.query
		q.Width = max(r.Width-ansi.StringWidth(searchPrompt)-2, 1)
		if b.focus == len(b.selectors) && !q.Focused() {
			q.PromptStyle = TriggerFocusedStyle.UnsetPadding()
		}
		sb.WriteString(q.View())
	}
	return ansi.Truncate(sb.String(), b.width, "")
}

// ChipsRowView renders the active filters and the clear-all action, or a
// hint when nothing is active.
func (b *FilterBar) ChipsRowView() string {
	if !facets.ClearAllVisible(b.state) {
		hint := strings.Repeat(" ", barIndent) + "No filters. Press tab to pick a filter or / to search."
		return HintStyle.Render(ansi.Truncate(hint, b.width, "…"))
	}
	slots, clearAll := b.chipLayout()
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", barIndent))
	for i, slot := range slots {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ChipStyle.Render(chipLabel(slot.chip)))
	}
	if !clearAll.IsZero() {
		sb.WriteString(" ")
		sb.WriteString(ClearAllStyle.Render(clearAllLabel))
	}
	return sb.String()
}

// Dispose closes every panel and releases its subscription.
func (b *FilterBar) Dispose() {
	for _, s := range b.selectors {
		s.Dispose()
	}
}
