package sliderule

// Surface is a 2D drawing target with a canvas-style transform stack. All
// geometry passed to the drawing methods is in the current local space;
// implementations map it through the accumulated transform.
type Surface interface {
	// Size returns the surface dimensions in device pixels.
	Size() (w, h float64)
	// Clear fills the whole surface, ignoring the transform.
	Clear(c Color)

	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(theta float64)
	// Transform post-multiplies the current matrix by m.
	Transform(m Affine)

	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r, width float64, c Color)
	Line(x0, y0, x1, y1, width float64, c Color)

	// MeasureText returns the advance width of s at the given font size in
	// local units.
	MeasureText(s string, size float64) float64
	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y, size float64, c Color)
}

// transformStack implements the Save/Restore/Translate/Scale/Rotate part of
// Surface. Embed it and map geometry with cur.
type transformStack struct {
	cur   Affine
	saved []Affine
}

func newTransformStack() transformStack {
	return transformStack{cur: Identity}
}

func (t *transformStack) Save() {
	t.saved = append(t.saved, t.cur)
}

// Restore pops the last saved matrix. Unbalanced calls reset to identity.
func (t *transformStack) Restore() {
	if len(t.saved) == 0 {
		t.cur = Identity
		return
	}
	t.cur = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

func (t *transformStack) Translate(x, y float64) { t.cur = t.cur.Mul(Translation(x, y)) }
func (t *transformStack) Scale(sx, sy float64)   { t.cur = t.cur.Mul(Scaling(sx, sy)) }
func (t *transformStack) Rotate(theta float64)   { t.cur = t.cur.Mul(Rotation(theta)) }
func (t *transformStack) Transform(m Affine)     { t.cur = t.cur.Mul(m) }

// Matrix returns the current transform.
func (t *transformStack) Matrix() Affine {
	return t.cur
}

// depth returns the number of unmatched Save calls.
func (t *transformStack) depth() int {
	return len(t.saved)
}
