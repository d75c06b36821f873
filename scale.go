package sliderule

import (
	"fmt"
	"math"
)

// maxRadix is the largest base strconv.FormatInt can render labels in.
const maxRadix = 36

// Scale is one rotatable logarithmic ring. Rotation is the only field that
// changes during normal use; every other quantity is derived from the
// fields with pure functions.
type Scale struct {
	// Radius is the distance from the common center to the ring's base circle.
	Radius float64
	// FrameDistance is added to Radius to get the frame circle. Positive
	// values extend the ring outward, negative values inward.
	FrameDistance float64
	// TickLength is the signed length of a full-depth tick. Its sign picks
	// the drawing direction.
	TickLength float64
	// Rotation is the signed ring angle in radians. It is unbounded and
	// accumulates across gestures.
	Rotation float64
	// Radix is the logarithm base.
	Radix int
}

// FrameRadius returns Radius + FrameDistance.
func (s Scale) FrameRadius() float64 {
	return s.Radius + s.FrameDistance
}

// Log returns the logarithm of n in the scale's radix.
func (s Scale) Log(n float64) float64 {
	return math.Log(n) / math.Log(float64(s.Radix))
}

// ToAngle returns the rotation at which v sits at the reference position.
// v must be positive.
func (s Scale) ToAngle(v float64) float64 {
	return -fullTurn * s.Log(v)
}

// Value returns the number currently displayed at the reference position.
func (s Scale) Value() float64 {
	return math.Pow(float64(s.Radix), -s.Rotation/fullTurn)
}

// FullRotations returns the exponent of the decade the current value lies in,
// so that Value() is in [Radix^f, Radix^(f+1)).
func (s Scale) FullRotations() int {
	return int(math.Floor(-s.Rotation / fullTurn))
}

// ValidRadix reports an error unless r can serve as a scale base.
func ValidRadix(r int) error {
	if r < 2 || r > maxRadix {
		return fmt.Errorf("radix %d: %w", r, ErrInvalidRadix)
	}
	return nil
}

// State is the whole mutable state of a slide rule: the two scales, the
// shared zoom level and the lock toggle. Exactly one actor (a drag or an
// animation) writes the rotations at a time.
type State struct {
	Outer Scale
	Inner Scale
	// Zoom is the number of extra tick subdivision layers drawn.
	Zoom int
	// Lock makes drags move both rings together.
	Lock bool
}

// NewState builds a state from the geometry in cfg with both rotations at 0.
func NewState(cfg Config) *State {
	outer := cfg.Outer
	inner := cfg.Inner
	outer.Radix, inner.Radix = cfg.Radix, cfg.Radix
	outer.Rotation, inner.Rotation = 0, 0
	return &State{Outer: outer, Inner: inner}
}

// Radix returns the base both scales share.
func (st *State) Radix() int {
	return st.Outer.Radix
}

// SetRotations writes both rotations at once.
func (st *State) SetRotations(k Keyframe) {
	st.Outer.Rotation = k.Outer
	st.Inner.Rotation = k.Inner
}

// Rotations returns both rotations as a keyframe.
func (st *State) Rotations() Keyframe {
	return Keyframe{Outer: st.Outer.Rotation, Inner: st.Inner.Rotation}
}

// rotate adds delta to the rotation of every ring in rings.
func (st *State) rotate(rings Rings, delta float64) {
	if rings.Has(RingOuter) {
		st.Outer.Rotation += delta
	}
	if rings.Has(RingInner) {
		st.Inner.Rotation += delta
	}
}

// radixTarget returns the rotations that keep both displayed values when
// the pair switches to radix r.
func (st *State) radixTarget(r int) Keyframe {
	ov, iv := st.Outer.Value(), st.Inner.Value()
	o, i := st.Outer, st.Inner
	o.Radix, i.Radix = r, r
	return Keyframe{Outer: o.ToAngle(ov), Inner: i.ToAngle(iv)}
}

// SetRadix switches both scales to radix r while preserving the values they
// display.
func (st *State) SetRadix(r int) error {
	if err := ValidRadix(r); err != nil {
		return err
	}
	k := st.radixTarget(r)
	st.Outer.Radix, st.Inner.Radix = r, r
	st.SetRotations(k)
	return nil
}
