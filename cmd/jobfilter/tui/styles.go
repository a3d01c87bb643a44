package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Header styles.
var (
	// HeaderStyle is the top title row.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// HeaderCountStyle is the "N of M" counter in the title row.
	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0)
)

// Filter bar styles. Every trigger variant has the same horizontal padding so
// a trigger's width does not change with focus or open state.
var (
	// TriggerStyle is an idle facet trigger with no selection.
	TriggerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 1)

	// TriggerSelectedStyle is a trigger whose facet has a selection.
	TriggerSelectedStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Background(colorSurface0).
				Padding(0, 1)

	// TriggerFocusedStyle is the trigger with keyboard focus.
	TriggerFocusedStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBlue).
				Padding(0, 1).
				Bold(true)

	// TriggerOpenStyle is a trigger whose panel is open.
	TriggerOpenStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorMauve).
				Padding(0, 1).
				Bold(true)

	// ChipStyle is an active-filter chip.
	ChipStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 1)

	// ClearAllStyle is the clear-all action.
	ClearAllStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Padding(0, 1)

	// HintStyle is dim helper text in the chips row.
	HintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)

// Panel styles.
var (
	// PanelStyle is the border and background of a selector panel.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(0, 1)

	// PanelCursorStyle is the highlighted row in a panel.
	PanelCursorStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// PanelSelectedStyle marks the row matching the current selection.
	PanelSelectedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	// PanelDimStyle is used for counts, scroll hints and the placeholder.
	PanelDimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)

// Result list styles.
var (
	// ResultTitleStyle is a job title.
	ResultTitleStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	// ResultMetaStyle is company/location/type text.
	ResultMetaStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// EmptyStateStyle is the "no matching jobs" message.
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Italic(true)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Modal styles.
var (
	// ModalStyle is the border and background for the centered help modal.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// ModalTitleStyle is used for the title text in modals.
	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)
