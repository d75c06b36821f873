package sliderule

import "math"

// Keyframe is one pair of ring rotations.
type Keyframe struct {
	Outer, Inner float64
}

// Plan is an ordered list of keyframes built from back-to-back linear
// segments. A plan is created per gesture and consumed one frame at a time.
type Plan struct {
	frames []Keyframe
	cursor int
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// SegmentSteps returns how many frames a segment from -> to takes:
// max(minSteps, round(maxDelta/maxSpeed)) with a speed cap, otherwise
// minSteps. minSteps below 1 counts as 1.
func SegmentSteps(from, to Keyframe, minSteps int, maxSpeed float64) int {
	steps := max(minSteps, 1)
	if maxSpeed > 0 {
		d := math.Max(math.Abs(to.Outer-from.Outer), math.Abs(to.Inner-from.Inner))
		steps = max(steps, int(math.Round(d/maxSpeed)))
	}
	return steps
}

// AddSegment appends a linear interpolation from -> to and returns the
// number of frames added. The start keyframe itself is not included; the
// last frame is exactly to. A segment whose per-step deltas are both zero
// adds nothing.
func (p *Plan) AddSegment(from, to Keyframe, minSteps int, maxSpeed float64) int {
	steps := SegmentSteps(from, to, minSteps, maxSpeed)
	stepOuter := (to.Outer - from.Outer) / float64(steps)
	stepInner := (to.Inner - from.Inner) / float64(steps)
	if stepOuter == 0 && stepInner == 0 {
		return 0
	}
	for i := 1; i < steps; i++ {
		p.frames = append(p.frames, Keyframe{
			Outer: from.Outer + float64(i)*stepOuter,
			Inner: from.Inner + float64(i)*stepInner,
		})
	}
	p.frames = append(p.frames, to)
	return steps
}

// Len returns the total number of frames.
func (p *Plan) Len() int {
	return len(p.frames)
}

// Frames returns the keyframes. The returned slice MUST NOT be mutated.
func (p *Plan) Frames() []Keyframe {
	return p.frames
}

// Remaining returns the number of frames not yet played.
func (p *Plan) Remaining() int {
	return len(p.frames) - p.cursor
}

// Last returns the final keyframe, or false for an empty plan.
func (p *Plan) Last() (Keyframe, bool) {
	if len(p.frames) == 0 {
		return Keyframe{}, false
	}
	return p.frames[len(p.frames)-1], true
}

// FrameRequester schedules fn to run on the next display frame.
type FrameRequester func(fn func())

// Animator plays one Plan at a time. Each frame it writes the next keyframe
// through apply, calls render and requests another frame until the plan is
// used up. Starting a new plan or calling Stop invalidates callbacks that
// are still queued for the old one.
type Animator struct {
	request FrameRequester
	apply   func(Keyframe)
	render  func()

	plan *Plan
	gen  uint64
}

// NewAnimator creates an idle animator.
func NewAnimator(request FrameRequester, apply func(Keyframe), render func()) *Animator {
	return &Animator{request: request, apply: apply, render: render}
}

// Play abandons any plan in flight and starts p from its first frame. An
// empty plan leaves the animator idle.
func (a *Animator) Play(p *Plan) {
	a.gen++
	a.plan = nil
	if p == nil || p.Len() == 0 {
		return
	}
	p.cursor = 0
	a.plan = p
	gen := a.gen
	a.request(func() { a.step(gen) })
}

// Stop abandons the current plan. Rotations stay wherever the last played
// frame left them.
func (a *Animator) Stop() {
	a.gen++
	a.plan = nil
}

// Playing reports whether a plan is being stepped.
func (a *Animator) Playing() bool {
	return a.plan != nil
}

func (a *Animator) step(gen uint64) {
	if gen != a.gen || a.plan == nil {
		return
	}
	p := a.plan
	k := p.frames[p.cursor]
	p.cursor++
	a.apply(k)
	if a.render != nil {
		a.render()
	}
	if p.cursor >= len(p.frames) {
		a.plan = nil
		return
	}
	a.request(func() { a.step(gen) })
}

// FrameQueue collects frame callbacks and runs them once per display frame.
// Callbacks requested while a frame runs wait for the next one, so a
// self-rescheduling callback advances exactly once per frame.
type FrameQueue struct {
	pending []func()
}

// Request queues fn for the next RunFrame.
func (q *FrameQueue) Request(fn func()) {
	q.pending = append(q.pending, fn)
}

// RunFrame runs the callbacks queued before this call and returns how many
// ran.
func (q *FrameQueue) RunFrame() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
