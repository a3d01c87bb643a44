package geometry

// Rect is a rectangle in screen cells. Top/Left are the coordinates of the
// upper-left cell; Bottom and Right are exclusive edges.
//
// The zero Rect is what a Provider reports for a trigger that is not laid out
// yet. Callers treat it as "cannot open".
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// FromEdges builds a Rect from its four edges.
func FromEdges(top, left, bottom, right int) Rect {
	return Rect{
		Top:    top,
		Left:   left,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Edges returns top, left, bottom, right.
func (r Rect) Edges() (top, left, bottom, right int) {
	return r.Top, r.Left, r.Bottom(), r.Right()
}

// IsZero reports whether every field is zero.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Provider reports live geometry from the rendering host. Implementations
// must measure on every call; results are snapshots and are never cached.
type Provider interface {
	// TriggerRect returns the on-screen rectangle of the trigger identified
	// by handle, or the zero Rect when it is not currently laid out.
	TriggerRect(handle string) Rect

	// Viewport returns the visible window area. Top and Left are always 0.
	Viewport() Rect
}
