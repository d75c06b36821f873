package sliderule

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// View maps the rule's local space (origin at the common center) onto the
// display surface. Each zoom level doubles the scale while keeping Anchor,
// normally the outer ring's reference point, fixed on screen.
type View struct {
	// Width and Height are the surface size in pixels.
	Width, Height float64
	// Anchor is the local point that stays put while zooming.
	Anchor Vec2
	// Duration is the zoom transition length in seconds. Zero snaps.
	Duration float32
	// Ease shapes the zoom transition. Defaults to ease.OutCubic.
	Ease ease.TweenFunc

	scale  float64
	target float64
	tween  *gween.Tween
}

// NewView creates an unzoomed view of the given size anchored at the top of
// outer.
func NewView(w, h float64, outer Scale, duration float32) *View {
	return &View{
		Width:    w,
		Height:   h,
		Anchor:   Vec2{X: 0, Y: -outer.Radius},
		Duration: duration,
		Ease:     ease.OutCubic,
		scale:    1,
		target:   1,
	}
}

// SetLevel moves the view to zoom level (scale 2^level), either at once or
// through a tween when Duration is positive.
func (v *View) SetLevel(level int) {
	target := math.Exp2(float64(level))
	if target == v.target && v.tween == nil {
		return
	}
	v.target = target
	if v.Duration <= 0 {
		v.scale = target
		v.tween = nil
		return
	}
	fn := v.Ease
	if fn == nil {
		fn = ease.OutCubic
	}
	v.tween = gween.New(float32(v.scale), float32(target), v.Duration, fn)
}

// Update advances the zoom transition by dt seconds.
func (v *View) Update(dt float32) {
	if v.tween == nil {
		return
	}
	val, done := v.tween.Update(dt)
	v.scale = float64(val)
	if done {
		v.scale = v.target
		v.tween = nil
	}
}

// Animating reports whether a zoom transition is in progress.
func (v *View) Animating() bool {
	return v.tween != nil
}

// CurrentScale returns the displayed scale factor.
func (v *View) CurrentScale() float64 {
	return v.scale
}

// Matrix returns the local-to-screen transform:
//
//	Translate(C + A(1-s)) * Scale(s)
//
// where C is the surface center and A the anchor.
func (v *View) Matrix() Affine {
	s := v.scale
	tx := v.Width/2 + v.Anchor.X*(1-s)
	ty := v.Height/2 + v.Anchor.Y*(1-s)
	return Affine{s, 0, 0, s, tx, ty}
}

// ScreenToLocal converts surface pixel coordinates to local coordinates.
func (v *View) ScreenToLocal(sx, sy float64) (x, y float64) {
	return v.Matrix().Invert().Apply(sx, sy)
}

// LocalToScreen converts local coordinates to surface pixel coordinates.
func (v *View) LocalToScreen(x, y float64) (sx, sy float64) {
	return v.Matrix().Apply(x, y)
}
