package sliderule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rule is the slide rule: the state of both scales plus everything that
// mutates or draws it. Multiply, Divide, Reset and SetRadix are the
// user-facing gestures; each either sets rotations directly and renders
// once, or hands a Plan to the animator.
//
// A Rule is not safe for concurrent use. All calls, including the frame
// callbacks run by Frames, belong on one goroutine (the game loop).
type Rule struct {
	Config   Config
	State    *State
	Renderer *Renderer
	View     *View
	Surface  Surface
	Ports    Ports
	// Frames holds pending animation callbacks. Call Frames.RunFrame once
	// per display frame.
	Frames *FrameQueue

	anim *Animator
	ctrl *Controller
}

// NewRule builds a rule that draws onto surface and reports values to
// ports. A nil ports discards the values.
func NewRule(cfg Config, surface Surface, ports Ports) (*Rule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ports == nil {
		ports = discardPorts{}
	}
	st := NewState(cfg)
	r := &Rule{
		Config:   cfg,
		State:    st,
		Renderer: NewRenderer(),
		View:     NewView(float64(cfg.Width), float64(cfg.Height), st.Outer, cfg.ZoomDuration),
		Surface:  surface,
		Ports:    ports,
		Frames:   &FrameQueue{},
	}
	r.anim = NewAnimator(r.Frames.Request, st.SetRotations, r.Render)
	r.ctrl = NewController(st, cfg.MaxDragStep, r.anim.Stop, r.Render)
	return r, nil
}

// Render draws the current state once.
func (r *Rule) Render() {
	if r.Surface == nil {
		return
	}
	r.Renderer.Draw(r.Surface, r.State, r.View, r.Ports)
}

// Step runs one display frame of animation callbacks.
func (r *Rule) Step() {
	r.Frames.RunFrame()
}

// Animating reports whether an animation plan is playing.
func (r *Rule) Animating() bool {
	return r.anim.Playing()
}

// Dragging reports whether a ring is held by the pointer.
func (r *Rule) Dragging() bool {
	return r.ctrl.Dragging()
}

// Controller returns the pointer controller.
func (r *Rule) Controller() *Controller {
	return r.ctrl
}

// HandlePointer feeds a pointer event in local coordinates to the drag
// controller and reports whether it was consumed.
func (r *Rule) HandlePointer(ev PointerEvent) bool {
	return r.ctrl.Handle(ev)
}

// HandleScreenPointer is HandlePointer for surface pixel coordinates.
func (r *Rule) HandleScreenPointer(kind PointerKind, src PointerSource, sx, sy float64) bool {
	x, y := r.View.ScreenToLocal(sx, sy)
	return r.ctrl.Handle(PointerEvent{Kind: kind, Source: src, X: x, Y: y})
}

// begin makes the calling gesture the only writer of the rotations.
func (r *Rule) begin() {
	r.ctrl.Cancel()
	r.anim.Stop()
}

// reject reports a refused input without touching the rotations.
func (r *Rule) reject(err error) (float64, error) {
	r.Ports.Reject(err)
	return math.NaN(), err
}

// Multiply rotates the rule to show a·b on the outer ring. Animated, both
// rings first turn together to b, then the outer ring alone turns on by a.
func (r *Rule) Multiply(a, b float64, animate bool) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return r.reject(err)
	}
	r.begin()
	st := r.State
	inner := st.Inner.ToAngle(b)
	target := Keyframe{Outer: inner + st.Outer.ToAngle(a), Inner: inner}
	result := a * b

	if !animate {
		st.SetRotations(target)
		r.Render()
		return result, nil
	}
	aligned := Keyframe{Outer: inner, Inner: inner}
	p := NewPlan()
	p.AddSegment(st.Rotations(), aligned, r.Config.MinSteps, r.Config.MaxSpeed)
	p.AddSegment(aligned, target, r.Config.MinSteps, r.Config.MaxSpeed)
	r.Ports.SetPrimary(result)
	r.anim.Play(p)
	return result, nil
}

// Divide rotates the rule to show a/b on the outer ring. Animated, the
// rings first move to a and b, then turn back together until the inner
// ring reads 1.
func (r *Rule) Divide(a, b float64, animate bool) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return r.reject(err)
	}
	r.begin()
	st := r.State
	num := st.Outer.ToAngle(a)
	den := st.Inner.ToAngle(b)
	target := Keyframe{Outer: num - den, Inner: 0}
	result := a / b

	if !animate {
		st.SetRotations(target)
		r.Render()
		return result, nil
	}
	set := Keyframe{Outer: num, Inner: den}
	p := NewPlan()
	p.AddSegment(st.Rotations(), set, r.Config.MinSteps, r.Config.MaxSpeed)
	p.AddSegment(set, target, r.Config.MinSteps, r.Config.MaxSpeed)
	r.Ports.SetPrimary(result)
	r.anim.Play(p)
	return result, nil
}

// Reset turns both rings back to rotation 0.
func (r *Rule) Reset(animate bool) {
	r.begin()
	r.moveTo(Keyframe{}, animate)
}

// SetRadix switches both scales to radix while keeping the values they
// show. Animated, the rings turn from their old angles to the new ones.
func (r *Rule) SetRadix(radix int, animate bool) error {
	if err := ValidRadix(radix); err != nil {
		return err
	}
	r.begin()
	st := r.State
	target := st.radixTarget(radix)
	st.Outer.Radix, st.Inner.Radix = radix, radix
	r.moveTo(target, animate)
	return nil
}

// CycleRadix switches to the next radix of Config.Radices.
func (r *Rule) CycleRadix(animate bool) error {
	return r.SetRadix(r.Config.nextRadix(r.State.Radix()), animate)
}

func (r *Rule) moveTo(target Keyframe, animate bool) {
	if !animate {
		r.State.SetRotations(target)
		r.Render()
		return
	}
	p := NewPlan()
	p.AddSegment(r.State.Rotations(), target, r.Config.MinSteps, r.Config.MaxSpeed)
	r.anim.Play(p)
}

// ZoomIn adds one tick subdivision layer and doubles the view scale. It
// returns the new zoom level.
func (r *Rule) ZoomIn() int {
	return r.setZoom(r.State.Zoom + 1)
}

// ZoomOut removes one subdivision layer. It returns the new zoom level.
func (r *Rule) ZoomOut() int {
	return r.setZoom(r.State.Zoom - 1)
}

func (r *Rule) setZoom(level int) int {
	level = max(0, min(level, r.Config.MaxZoom))
	r.State.Zoom = level
	r.View.SetLevel(level)
	r.Render()
	return level
}

// SetLock makes drags move both rings together.
func (r *Rule) SetLock(lock bool) {
	r.State.Lock = lock
}

// checkOperands rejects operands whose logarithm is undefined or infinite.
func checkOperands(a, b float64) error {
	if err := checkOperand("a", a); err != nil {
		return err
	}
	return checkOperand("b", b)
}

func checkOperand(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("operand %s = %v: %w", name, v, ErrInvalidOperand)
	}
	return nil
}

// ParseOperand reads an operand typed into a numeric field.
func ParseOperand(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("operand %q: %w", s, ErrInvalidOperand)
	}
	if err := checkOperand(strconv.Quote(s), v); err != nil {
		return 0, err
	}
	return v, nil
}
