package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/jobfilter/internal/config"
	"github.com/ruminaider/jobfilter/internal/facets"
	"github.com/ruminaider/jobfilter/internal/jobs"
	"github.com/ruminaider/jobfilter/internal/overlay"
	"go.uber.org/zap"
)

// wheelStep is how many result rows one wheel notch scrolls.
const wheelStep = 3

// Options configures a Model.
type Options struct {
	Title       string
	Jobs        []jobs.Job
	Definitions []facets.Definition
	Params      overlay.Params
	BarPosition string // config.BarTop or config.BarBottom
	Logger      *zap.Logger
}

// Model is the root Bubble Tea model for the job filter screen.
type Model struct {
	title  string
	all    []jobs.Job
	shown  []jobs.Job
	barPos string

	bar     *FilterBar
	results ResultList
	status  StatusBar
	help    HelpModal
	keys    KeyMap

	bus    *overlay.Bus
	layer  *overlay.Layer
	logger *zap.Logger

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates the filter screen over opts.Jobs with every filter
// cleared.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.BarPosition == "" {
		opts.BarPosition = config.BarTop
	}
	bus := overlay.NewBus()
	layer := overlay.NewLayer()
	state := facets.NewState(opts.Definitions)

	m := Model{
		title:   opts.Title,
		all:     opts.Jobs,
		barPos:  opts.BarPosition,
		bar:     NewFilterBar(opts.Definitions, state, bus, layer, opts.Params, opts.Logger),
		results: ResultList{},
		status:  NewStatusBar(),
		keys:    DefaultKeyMap(),
		bus:     bus,
		layer:   layer,
		logger:  opts.Logger,
	}
	m.refilter()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model. Resize, escape and pointer presses are
// published to the signal bus before anything else sees them, so open
// panels close before the event is acted on.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		m.bus.Publish(overlay.Signal{Kind: overlay.SignalResize})
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other text input plumbing.
	if m.bar.SearchFocused() {
		_, cmd := m.bar.UpdateQuery(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.help.Active() {
		m.help.Close()
		return m, nil
	}

	if key.Matches(msg, m.keys.Escape) {
		if m.layer.Top() != "" {
			m.bus.Publish(overlay.Signal{Kind: overlay.SignalEscape})
			return m, nil
		}
		if m.bar.SearchFocused() {
			m.bar.BlurSearch()
		}
		return m, nil
	}

	if s := m.bar.Active(); s != nil {
		return m.updatePanel(s, msg)
	}
	if m.bar.SearchFocused() {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help = NewHelpModal(m.keys)
	case key.Matches(msg, m.keys.NextFilter):
		m.bar.FocusNext()
	case key.Matches(msg, m.keys.PrevFilter):
		m.bar.FocusPrev()
	case key.Matches(msg, m.keys.Open):
		return m, m.bar.OpenFocused()
	case key.Matches(msg, m.keys.FocusSearch):
		return m, m.bar.FocusSearch()
	case key.Matches(msg, m.keys.ClearAll):
		if m.bar.ClearAll() {
			m.refilter()
		}
	case key.Matches(msg, m.keys.DismissChip):
		if len(msg.Runes) == 1 && m.bar.DismissChip(int(msg.Runes[0]-'1')) {
			m.refilter()
		}
	case key.Matches(msg, m.keys.Up):
		m.results.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.results.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.results.ScrollBy(-m.results.Page())
	case key.Matches(msg, m.keys.PageDown):
		m.results.ScrollBy(m.results.Page())
	}
	return m, nil
}

// updatePanel routes keys to the most recently opened panel. Printable keys
// feed the type-ahead buffer rather than acting as shortcuts.
func (m Model) updatePanel(s *Selector, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		s.MoveCursor(-1)
	case tea.KeyDown:
		s.MoveCursor(1)
	case tea.KeyPgUp:
		s.MoveCursor(-s.pageRows())
	case tea.KeyPgDown:
		s.MoveCursor(s.pageRows())
	case tea.KeyHome:
		s.MoveCursor(-len(s.def.Options) - 1)
	case tea.KeyEnd:
		s.MoveCursor(len(s.def.Options) + 1)
	case tea.KeyEnter:
		if v, ok := s.Current(); ok {
			m.bar.Choose(s, v)
			m.refilter()
		} else {
			s.Close()
		}
	case tea.KeyTab:
		s.Close()
		m.bar.FocusNext()
	case tea.KeyShiftTab:
		s.Close()
		m.bar.FocusPrev()
	case tea.KeyBackspace:
		s.Backspace()
	case tea.KeySpace:
		s.TypeAhead(" ")
	case tea.KeyRunes:
		s.TypeAhead(string(msg.Runes))
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.bar.BlurSearch()
		return m, nil
	case tea.KeyTab:
		m.bar.FocusNext()
		return m, nil
	case tea.KeyShiftTab:
		m.bar.FocusPrev()
		return m, nil
	}
	changed, cmd := m.bar.UpdateQuery(msg)
	if changed {
		m.refilter()
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		if s := m.bar.PanelAt(msg.X, msg.Y); s != nil {
			s.Scroll(delta)
		} else {
			m.results.ScrollBy(delta * wheelStep)
		}
		return m, nil
	}

	if m.help.Active() {
		m.help.Close()
		return m, nil
	}

	m.bus.Publish(overlay.Signal{Kind: overlay.SignalPointer, X: msg.X, Y: msg.Y})
	if msg.Button == tea.MouseButtonLeft && m.bar.Click(msg.X, msg.Y) {
		m.refilter()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.bar.Dispose()
	m.quitting = true
	m.logger.Debug("quitting", zap.Int("shown", len(m.shown)))
	return m, tea.Quit
}

// refilter recomputes the visible jobs from the shared filter state.
func (m *Model) refilter() {
	state := m.bar.State()
	m.shown = facets.Apply(m.all, state)
	m.bar.Refresh(m.all)
	m.results.SetItems(m.shown, !state.IsEmpty())
	m.status.Update(len(m.shown), len(m.all), m.bar.ActiveCount())
	m.logger.Debug("filters applied",
		zap.Int("shown", len(m.shown)),
		zap.Int("total", len(m.all)),
		zap.String("query", state.Query()))
}

// rows returns the screen rows of the trigger line, the chips line and the
// first result line.
func (m Model) rows() (barRow, chipsRow, resultsTop int) {
	if m.barPos == config.BarBottom {
		return m.height - 2, m.height - 3, 1
	}
	return 1, 2, 3
}

// distributeSize pushes the screen size to every child.
func (m *Model) distributeSize() {
	barRow, chipsRow, _ := m.rows()
	m.bar.SetSize(m.width, m.height, barRow, chipsRow)
	m.results.SetSize(m.width, max(m.height-4, 0))
	m.status.SetWidth(m.width)
}

// View satisfies tea.Model. Panels are painted only once Update has solved
// and mounted them; View never measures.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	lines := make([]string, m.height)
	lines[0] = m.headerView()
	barRow, chipsRow, resultsTop := m.rows()
	if barRow >= 0 && barRow < m.height {
		lines[barRow] = m.bar.TriggerRowView()
	}
	if chipsRow >= 0 && chipsRow < m.height {
		lines[chipsRow] = m.bar.ChipsRowView()
	}
	if results := m.results.View(); results != "" {
		for i, l := range strings.Split(results, "\n") {
			if row := resultsTop + i; row < m.height-1 && row > 0 {
				lines[row] = l
			}
		}
	}
	if m.height > 1 {
		lines[m.height-1] = m.status.View()
	}
	out := strings.Join(lines, "\n")

	for _, p := range m.layer.Panels() {
		s := m.bar.Selector(p.ID)
		if s == nil {
			continue
		}
		r := s.ctrl.PanelRect()
		out = CompositeAt(out, s.PanelView(), r.Left, r.Top, m.width, m.height)
	}

	if m.help.Active() {
		out = Composite(out, m.help.View(), m.width, m.height)
	}
	return out
}

func (m Model) headerView() string {
	title := " " + HeaderStyle.Render("jobfilter")
	if m.title != "" {
		title += HeaderCountStyle.Render(" · " + m.title)
	}
	count := HeaderCountStyle.Render(fmt.Sprintf("%d of %d", len(m.shown), len(m.all)))
	gap := m.width - ansi.StringWidth(title) - ansi.StringWidth(count) - 1
	if gap < 1 {
		gap = 1
	}
	return ansi.Truncate(title+strings.Repeat(" ", gap)+count, m.width, "")
}

// Shown returns the jobs that pass the current filters.
func (m Model) Shown() []jobs.Job {
	return m.shown
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
