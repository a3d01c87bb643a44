package overlay

import "github.com/ruminaider/jobfilter/internal/geometry"

// Params tunes the position solver. All values are in screen units.
type Params struct {
	MinComfortableSpace int // below this much room underneath, consider opening upward
	PreferredMaxHeight  int // upper bound on panel height
	Margin              int // room kept free between the panel and the viewport edge
	Gap                 int // distance between trigger and panel
}

// DefaultParams are the reference values for pixel-based hosts.
var DefaultParams = Params{
	MinComfortableSpace: 200,
	PreferredMaxHeight:  280,
	Margin:              10,
	Gap:                 4,
}

// TerminalParams are DefaultParams scaled to terminal rows.
var TerminalParams = Params{
	MinComfortableSpace: 8,
	PreferredMaxHeight:  12,
	Margin:              1,
	Gap:                 0,
}

// Placement is where and how large a panel is drawn. Exactly one of Top and
// Bottom is set: Top anchors the panel's upper edge, Bottom anchors its lower
// edge measured up from the bottom of the viewport.
type Placement struct {
	OpenUpward bool
	MaxHeight  int
	Left       int
	Width      int
	Top        *int
	Bottom     *int
}

// Solve decides the direction, height bound and anchor of a panel opened from
// trigger inside viewport. It never refuses: when there is no room either
// way, MaxHeight is 0.
func Solve(trigger, viewport geometry.Rect, p Params) Placement {
	spaceBelow := viewport.Height - trigger.Bottom()
	spaceAbove := trigger.Top

	// Downward is the default; only flip when below is cramped and above is
	// strictly roomier.
	openUpward := spaceBelow < p.MinComfortableSpace && spaceAbove > spaceBelow

	space := spaceBelow
	if openUpward {
		space = spaceAbove
	}
	maxHeight := min(p.PreferredMaxHeight, space-p.Margin)
	if maxHeight < 0 {
		maxHeight = 0
	}

	pl := Placement{
		OpenUpward: openUpward,
		MaxHeight:  maxHeight,
		Left:       trigger.Left,
		Width:      trigger.Width,
	}
	if openUpward {
		bottom := viewport.Height - trigger.Top + p.Gap
		pl.Bottom = &bottom
	} else {
		top := trigger.Bottom() + p.Gap
		pl.Top = &top
	}
	return pl
}

// Rect resolves the placement to an absolute rectangle for a panel that
// renders height rows (clamped to MaxHeight) and width columns.
func (p Placement) Rect(viewport geometry.Rect, width, height int) geometry.Rect {
	if height > p.MaxHeight {
		height = p.MaxHeight
	}
	if height < 0 {
		height = 0
	}
	top := 0
	switch {
	case p.Top != nil:
		top = *p.Top
	case p.Bottom != nil:
		top = viewport.Height - *p.Bottom - height
	}
	return geometry.Rect{Top: top, Left: p.Left, Width: width, Height: height}
}
