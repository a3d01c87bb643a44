package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Composite places the overlay box centered on top of the background string.
// Both strings are newline-separated lines. The background is padded to fill
// totalHeight rows if needed.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}
	w, h := blockSize(overlay)

	startRow := (totalHeight - h) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - w) / 2
	if startCol < 0 {
		startCol = 0
	}
	return CompositeAt(background, overlay, startCol, startRow, totalWidth, totalHeight)
}

// CompositeAt paints overlay onto background with its top-left corner at
// column x, row y. Cells outside the overlay keep their background content,
// including styling. Rows past totalHeight are dropped and columns past
// totalWidth are cut.
func CompositeAt(background string, overlay string, x, y, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	fgLines := strings.Split(overlay, "\n")
	fgWidth, _ := blockSize(overlay)
	if x+fgWidth > totalWidth {
		fgWidth = totalWidth - x
	}
	if fgWidth <= 0 {
		return strings.Join(bgLines, "\n")
	}

	for i, fgLine := range fgLines {
		row := y + i
		if row >= len(bgLines) || row >= totalHeight {
			break
		}
		bgLine := bgLines[row]
		if n := ansi.StringWidth(bgLine); n < x {
			bgLine += strings.Repeat(" ", x-n)
		}
		left := ansi.Cut(bgLine, 0, x)
		right := ansi.Cut(bgLine, x+fgWidth, totalWidth)

		if n := ansi.StringWidth(fgLine); n < fgWidth {
			fgLine += strings.Repeat(" ", fgWidth-n)
		} else if n > fgWidth {
			fgLine = ansi.Cut(fgLine, 0, fgWidth)
		}
		bgLines[row] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// blockSize returns the widest line and the line count of s.
func blockSize(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// HelpModal lists the key bindings in a centered box.
type HelpModal struct {
	keys   KeyMap
	active bool
}

// NewHelpModal creates an active help modal.
func NewHelpModal(keys KeyMap) HelpModal {
	return HelpModal{keys: keys, active: true}
}

// Active returns whether the modal is shown.
func (h HelpModal) Active() bool {
	return h.active
}

// Close hides the modal.
func (h *HelpModal) Close() {
	h.active = false
}

// View renders the modal box without positioning; the caller composites it.
func (h HelpModal) View() string {
	if !h.active {
		return ""
	}
	bindings := h.keys.helpBindings()
	keyWidth := 0
	for _, b := range bindings {
		if w := ansi.StringWidth(b.Help().Key); w > keyWidth {
			keyWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for i, binding := range bindings {
		b.WriteString(helpRow(binding, keyWidth))
		if i < len(bindings)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(HintStyle.Render("Click a filter to open it. Click outside to close."))
	return ModalStyle.Render(b.String())
}

func helpRow(b key.Binding, keyWidth int) string {
	k := b.Help().Key
	pad := keyWidth - ansi.StringWidth(k)
	return StatusBarKeyStyle.UnsetBackground().Render(k) + strings.Repeat(" ", pad+2) +
		lipgloss.NewStyle().Foreground(colorText).Render(b.Help().Desc)
}
