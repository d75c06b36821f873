package sliderule

import "math"

// PointerKind discriminates pointer events.
type PointerKind uint8

const (
	PointerPress   PointerKind = iota // button or touch went down
	PointerMove                       // pointer moved while tracked
	PointerRelease                    // button or touch went up
)

// PointerSource tells mouse and touch input apart.
type PointerSource uint8

const (
	SourceMouse PointerSource = iota
	SourceTouch
)

// PointerEvent is a pointer sample in local coordinates: origin at the
// rule's center, already corrected for the view transform.
type PointerEvent struct {
	Kind   PointerKind
	Source PointerSource
	X, Y   float64
}

// Hit classifies a point against the ring geometry.
type Hit uint8

const (
	HitNone  Hit = iota // outside both rings
	HitPeg              // central dead zone
	HitInner            // inner ring
	HitOuter            // outer ring
)

func (h Hit) String() string {
	switch h {
	case HitPeg:
		return "peg"
	case HitInner:
		return "inner"
	case HitOuter:
		return "outer"
	default:
		return "none"
	}
}

// dragState exists only while a pointer holds a ring.
type dragState struct {
	rings  Rings
	last   float64 // pointer angle of the previous sample
	source PointerSource
}

// Controller turns pointer events into direct ring rotations. It is idle
// until a press lands on a ring and drags until the matching release.
type Controller struct {
	state *State
	// MaxStep is the largest angle change applied from one sample. Bigger
	// jumps come from atan2 wrapping at ±π and are dropped.
	MaxStep float64

	onStart func()
	render  func()
	drag    *dragState
}

// NewController creates an idle controller. onStart runs when a drag
// begins (to cancel animations); render runs after every applied sample.
// Either may be nil.
func NewController(st *State, maxStep float64, onStart, render func()) *Controller {
	return &Controller{state: st, MaxStep: maxStep, onStart: onStart, render: render}
}

// Classify reports which part of the rule (x, y) falls on, by squared
// distance from the center.
func (c *Controller) Classify(x, y float64) Hit {
	d2 := x*x + y*y
	peg := c.state.Inner.FrameRadius()
	inner := c.state.Inner.Radius
	outer := c.state.Outer.FrameRadius()
	switch {
	case d2 < peg*peg:
		return HitPeg
	case d2 < inner*inner:
		return HitInner
	case d2 < outer*outer:
		return HitOuter
	default:
		return HitNone
	}
}

// Handle runs the drag state machine for one event and reports whether the
// event was consumed.
func (c *Controller) Handle(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerPress:
		if c.drag != nil {
			// A second pointer while dragging does not steal the drag.
			return true
		}
		return c.press(ev)
	case PointerMove:
		if c.drag == nil {
			return false
		}
		c.move(ev.X, ev.Y)
		return true
	case PointerRelease:
		if c.drag == nil {
			return false
		}
		c.move(ev.X, ev.Y)
		c.drag = nil
		return true
	}
	return false
}

func (c *Controller) press(ev PointerEvent) bool {
	var rings Rings
	switch c.Classify(ev.X, ev.Y) {
	case HitInner:
		rings = RingInner
	case HitOuter:
		rings = RingOuter
	default:
		return false
	}
	if c.state.Lock {
		rings = RingBoth
	}
	if c.onStart != nil {
		c.onStart()
	}
	c.drag = &dragState{rings: rings, last: math.Atan2(ev.Y, ev.X), source: ev.Source}
	return true
}

// move applies one drag sample. Samples in the peg are ignored entirely;
// samples jumping more than MaxStep only move the reference angle.
func (c *Controller) move(x, y float64) {
	if c.Classify(x, y) == HitPeg {
		return
	}
	angle := math.Atan2(y, x)
	delta := c.drag.last - angle
	c.drag.last = angle
	if math.Abs(delta) > c.MaxStep {
		return
	}
	c.state.rotate(c.drag.rings, -delta)
	if c.render != nil {
		c.render()
	}
}

// Dragging reports whether a ring is held.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// DragRings returns the rings being dragged, or RingNone when idle.
func (c *Controller) DragRings() Rings {
	if c.drag == nil {
		return RingNone
	}
	return c.drag.rings
}

// Cancel ends a drag without applying further samples.
func (c *Controller) Cancel() {
	c.drag = nil
}
