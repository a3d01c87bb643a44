package overlay

// Panel is a mounted overlay on a Layer.
type Panel struct {
	ID        string
	Placement Placement
}

// Layer is the top-level surface panels are mounted on, outside the layout
// of their triggers. Panels paint in mount order, so the most recently
// mounted one is on top. A panel that is not mounted is not painted and
// cannot be hit.
type Layer struct {
	panels []Panel
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Mount attaches a panel, replacing and raising any panel with the same id.
func (l *Layer) Mount(id string, p Placement) {
	l.Unmount(id)
	l.panels = append(l.panels, Panel{ID: id, Placement: p})
}

// Unmount detaches the panel with the given id, if any.
func (l *Layer) Unmount(id string) {
	for i, p := range l.panels {
		if p.ID == id {
			l.panels = append(l.panels[:i], l.panels[i+1:]...)
			return
		}
	}
}

// Mounted reports whether a panel with the given id is attached.
func (l *Layer) Mounted(id string) bool {
	for _, p := range l.panels {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Panels returns the mounted panels in paint order.
func (l *Layer) Panels() []Panel {
	out := make([]Panel, len(l.panels))
	copy(out, l.panels)
	return out
}

// Top returns the id of the topmost panel, or "" when nothing is mounted.
func (l *Layer) Top() string {
	if len(l.panels) == 0 {
		return ""
	}
	return l.panels[len(l.panels)-1].ID
}
