package overlay

import (
	"github.com/ruminaider/jobfilter/internal/geometry"
	"go.uber.org/zap"
)

// CloseReason says why an overlay closed.
type CloseReason int

const (
	CloseOutside  CloseReason = iota // pointer pressed outside trigger and panel
	CloseEscape                      // escape key
	CloseResize                      // viewport resized
	CloseSelect                      // an option was picked
	CloseExplicit                    // Close or Toggle called while open
	CloseDispose                     // owner destroyed while open
)

// String returns a short name for logging.
func (r CloseReason) String() string {
	switch r {
	case CloseOutside:
		return "outside"
	case CloseEscape:
		return "escape"
	case CloseResize:
		return "resize"
	case CloseSelect:
		return "select"
	case CloseExplicit:
		return "explicit"
	case CloseDispose:
		return "dispose"
	default:
		return "unknown"
	}
}

// Session is a snapshot of an overlay's state. Placement is nil exactly when
// IsOpen is false.
type Session struct {
	IsOpen    bool
	Placement *Placement
}

// Options configures a Controller.
type Options struct {
	// ID is the trigger handle. It is also the panel id on the layer.
	ID string

	Geometry geometry.Provider
	Bus      *Bus
	Layer    *Layer
	Params   Params
	Logger   *zap.Logger

	// PanelSize returns the rendered width and height of the panel for a
	// given placement. It is used to hit-test pointer presses. When nil the
	// panel is assumed to fill Width x MaxHeight.
	PanelSize func(Placement) (width, height int)

	// OnClose, when set, is called after every Open to Closed transition.
	OnClose func(CloseReason)
}

// Controller owns the open/closed state of one overlay. It is driven from a
// single event loop and is not safe for concurrent use.
type Controller struct {
	opts      Options
	placement *Placement
	sub       *Subscription
}

// NewController creates a closed overlay.
func NewController(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Bus == nil {
		opts.Bus = NewBus()
	}
	if opts.Layer == nil {
		opts.Layer = NewLayer()
	}
	return &Controller{opts: opts}
}

// ID returns the trigger handle.
func (c *Controller) ID() string {
	return c.opts.ID
}

// IsOpen reports whether the panel is open.
func (c *Controller) IsOpen() bool {
	return c.placement != nil
}

// Session returns a snapshot of the current state.
func (c *Controller) Session() Session {
	if c.placement == nil {
		return Session{}
	}
	p := *c.placement
	return Session{IsOpen: true, Placement: &p}
}

// Toggle opens a closed overlay or closes an open one. It reports whether
// the overlay is open afterwards.
func (c *Controller) Toggle() bool {
	if c.IsOpen() {
		c.close(CloseExplicit)
		return false
	}
	return c.Open()
}

// Open measures the trigger, solves the placement and only then marks the
// overlay open, mounts the panel and subscribes to outside signals. An
// unmeasurable trigger leaves it closed. Opening an open overlay is a no-op.
func (c *Controller) Open() bool {
	if c.IsOpen() {
		return true
	}
	trigger := c.opts.Geometry.TriggerRect(c.opts.ID)
	viewport := c.opts.Geometry.Viewport()
	if trigger.IsZero() || viewport.IsZero() {
		c.opts.Logger.Debug("overlay open suppressed: trigger not measurable",
			zap.String("id", c.opts.ID))
		return false
	}

	pl := Solve(trigger, viewport, c.opts.Params)
	c.placement = &pl
	c.opts.Layer.Mount(c.opts.ID, pl)
	c.sub = c.opts.Bus.Subscribe(c.handle)

	c.opts.Logger.Debug("overlay opened",
		zap.String("id", c.opts.ID),
		zap.Bool("upward", pl.OpenUpward),
		zap.Int("max_height", pl.MaxHeight))
	return true
}

// Close closes the overlay. Closing a closed overlay is a no-op.
func (c *Controller) Close() {
	c.close(CloseExplicit)
}

// Select closes the overlay as the side effect of picking an option.
func (c *Controller) Select() {
	c.close(CloseSelect)
}

// Dispose releases everything the overlay holds. Call it when the owning
// component is destroyed, open or not.
func (c *Controller) Dispose() {
	c.close(CloseDispose)
}

// PanelRect returns the panel's on-screen rectangle, or the zero Rect when
// closed.
func (c *Controller) PanelRect() geometry.Rect {
	if c.placement == nil {
		return geometry.Rect{}
	}
	pl := *c.placement
	w, h := pl.Width, pl.MaxHeight
	if c.opts.PanelSize != nil {
		w, h = c.opts.PanelSize(pl)
	}
	return pl.Rect(c.opts.Geometry.Viewport(), w, h)
}

func (c *Controller) close(reason CloseReason) {
	if c.placement == nil {
		return
	}
	c.sub.Release()
	c.sub = nil
	c.opts.Layer.Unmount(c.opts.ID)
	c.placement = nil

	c.opts.Logger.Debug("overlay closed",
		zap.String("id", c.opts.ID),
		zap.Stringer("reason", reason))
	if c.opts.OnClose != nil {
		c.opts.OnClose(reason)
	}
}

func (c *Controller) handle(s Signal) {
	switch s.Kind {
	case SignalEscape:
		c.close(CloseEscape)
	case SignalResize:
		// The chosen direction may no longer hold; close instead of moving.
		c.close(CloseResize)
	case SignalPointer:
		trigger := c.opts.Geometry.TriggerRect(c.opts.ID)
		if trigger.Contains(s.X, s.Y) || c.PanelRect().Contains(s.X, s.Y) {
			return
		}
		c.close(CloseOutside)
	}
}
