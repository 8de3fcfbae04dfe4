// Package selection implements the hover/click interaction state machine.
//
// The controller tracks at most one hovered and at most one clicked marker.
// Hovering filters the map down to the hovered airport plus the visited ones;
// clicking a visited airport reveals its routes until the next click. While a
// marker is clicked, pointer movement is ignored.
package selection

import (
	"github.com/rs/zerolog"

	"airmap/internal/airport"
	"airmap/internal/marker"
	"airmap/internal/route"
)

// State is the controller's interaction state.
type State int

const (
	Idle State = iota
	Hovering
	Clicked
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Clicked:
		return "clicked"
	default:
		return "idle"
	}
}

// HitTester reports whether the screen position (x, y) lies on a marker.
// Screen geometry belongs to the renderer.
type HitTester interface {
	Hit(m *marker.Marker, x, y int) bool
}

// HitFunc adapts a function to HitTester.
type HitFunc func(m *marker.Marker, x, y int) bool

func (f HitFunc) Hit(m *marker.Marker, x, y int) bool { return f(m, x, y) }

// Controller mutates marker and route display flags in response to pointer
// events. It is not safe for concurrent use.
type Controller struct {
	index  *airport.Index
	routes *route.Table
	hit    HitTester
	log    zerolog.Logger

	hovered *marker.Marker
	clicked *marker.Marker
	// filtered is set while hover filtering has hidden markers that have not
	// been restored yet.
	filtered bool
}

type Option func(*Controller)

// WithLogger logs state transitions at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func New(index *airport.Index, routes *route.Table, hit HitTester, opts ...Option) *Controller {
	c := &Controller{
		index:  index,
		routes: routes,
		hit:    hit,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) State() State {
	switch {
	case c.clicked != nil:
		return Clicked
	case c.hovered != nil:
		return Hovering
	default:
		return Idle
	}
}

func (c *Controller) Hovered() *marker.Marker { return c.hovered }
func (c *Controller) Clicked() *marker.Marker { return c.clicked }

// Active returns the clicked marker, or the hovered one when nothing is clicked.
func (c *Controller) Active() *marker.Marker {
	if c.clicked != nil {
		return c.clicked
	}
	return c.hovered
}

// PointerMove handles pointer motion at (x, y).
func (c *Controller) PointerMove(x, y int) {
	if c.clicked != nil {
		return
	}
	prev := c.hovered
	c.clearHover()

	m := c.firstHit(x, y, airport.Any)
	if m == nil {
		if prev != nil {
			c.log.Debug().Str("code", prev.Code).Msg("hover left")
		}
		return
	}
	c.hovered = m
	m.SetSelected(true)
	c.index.SetHidden(func(o *marker.Marker) bool { return o != m && !o.Visited() }, true)
	c.filtered = true
	if prev != m {
		c.log.Debug().Str("code", m.Code).Msg("hover")
	}
}

// PointerLeave handles the pointer leaving the map area. It behaves like a
// move onto empty space.
func (c *Controller) PointerLeave() {
	if c.clicked != nil {
		return
	}
	if c.hovered != nil {
		c.log.Debug().Str("code", c.hovered.Code).Msg("hover left")
	}
	c.clearHover()
}

// Click handles a click at (x, y). A click while a marker is clicked always
// returns to Idle; otherwise only a visited marker can be clicked.
func (c *Controller) Click(x, y int) {
	if c.clicked != nil {
		code := c.clicked.Code
		c.clicked.SetSelected(false)
		c.clicked = nil
		c.routes.HideAll()
		c.index.SetHidden(airport.IsVisited, false)
		c.log.Debug().Str("code", code).Msg("click cleared")
		return
	}

	m := c.firstHit(x, y, airport.IsVisited)
	if m == nil {
		return
	}
	if c.hovered != nil {
		c.hovered.SetSelected(false)
		c.hovered = nil
	}
	c.clicked = m
	m.SetSelected(true)
	n := c.routes.Reveal(m.Code)
	c.log.Debug().Str("code", m.Code).Int("routes", n).Msg("click")
}

// Reset returns the controller to Idle with every marker visible and
// unselected and every route hidden.
func (c *Controller) Reset() {
	if c.hovered != nil {
		c.hovered.SetSelected(false)
		c.hovered = nil
	}
	if c.clicked != nil {
		c.clicked.SetSelected(false)
		c.clicked = nil
	}
	c.routes.HideAll()
	c.index.SetHidden(airport.Any, false)
	c.filtered = false
}

// clearHover undoes the side effects of the current hover, including hover
// filtering left over from before a click.
func (c *Controller) clearHover() {
	if c.hovered != nil {
		c.hovered.SetSelected(false)
		c.hovered = nil
	}
	if c.filtered {
		c.index.SetHidden(airport.Any, false)
		c.filtered = false
	}
}

// firstHit returns the first visible marker in index order that matches pred
// and lies under (x, y).
func (c *Controller) firstHit(x, y int, pred func(*marker.Marker) bool) *marker.Marker {
	for m := range c.index.All() {
		if m.Hidden() || !pred(m) {
			continue
		}
		if c.hit.Hit(m, x, y) {
			return m
		}
	}
	return nil
}
