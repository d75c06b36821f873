package sliderule

import "unicode/utf8"

// DrawOp identifies a recorded draw call.
type DrawOp uint8

const (
	OpClear DrawOp = iota
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpText
)

func (op DrawOp) String() string {
	switch op {
	case OpClear:
		return "clear"
	case OpFillCircle:
		return "fillCircle"
	case OpStrokeCircle:
		return "strokeCircle"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCall is one recorded call with its geometry already mapped to device
// space. For circles P0 is the center; for lines P0 and P1 are the end
// points; for text P0 is the baseline origin.
type DrawCall struct {
	Op     DrawOp
	P0, P1 Vec2
	Radius float64
	Width  float64
	Size   float64
	Text   string
	Color  Color
}

// textAdvance approximates the glyph advance as a fraction of the font size.
const textAdvance = 0.6

// Recorder is a headless Surface that records draw calls instead of
// rasterizing them. Text is measured with a fixed per-rune advance.
type Recorder struct {
	transformStack
	w, h  float64
	Calls []DrawCall
}

// NewRecorder creates a recording surface of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{transformStack: newTransformStack(), w: w, h: h}
}

func (r *Recorder) Size() (float64, float64) { return r.w, r.h }

// Clear drops all recorded calls and records a single clear.
func (r *Recorder) Clear(c Color) {
	r.Calls = append(r.Calls[:0], DrawCall{Op: OpClear, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	x, y := r.cur.Apply(cx, cy)
	r.Calls = append(r.Calls, DrawCall{
		Op: OpFillCircle, P0: Vec2{x, y}, Radius: radius * r.cur.LengthScale(), Color: c,
	})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c Color) {
	x, y := r.cur.Apply(cx, cy)
	k := r.cur.LengthScale()
	r.Calls = append(r.Calls, DrawCall{
		Op: OpStrokeCircle, P0: Vec2{x, y}, Radius: radius * k, Width: width * k, Color: c,
	})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, c Color) {
	ax, ay := r.cur.Apply(x0, y0)
	bx, by := r.cur.Apply(x1, y1)
	r.Calls = append(r.Calls, DrawCall{
		Op: OpLine, P0: Vec2{ax, ay}, P1: Vec2{bx, by}, Width: width * r.cur.LengthScale(), Color: c,
	})
}

func (r *Recorder) MeasureText(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * textAdvance
}

func (r *Recorder) FillText(s string, x, y, size float64, c Color) {
	px, py := r.cur.Apply(x, y)
	r.Calls = append(r.Calls, DrawCall{
		Op: OpText, P0: Vec2{px, py}, Size: size * r.cur.LengthScale(), Text: s, Color: c,
	})
}

// Count returns how many recorded calls have the given op.
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for i := range r.Calls {
		if r.Calls[i].Op == op {
			n++
		}
	}
	return n
}

// Texts returns every recorded label in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for i := range r.Calls {
		if r.Calls[i].Op == OpText {
			out = append(out, r.Calls[i].Text)
		}
	}
	return out
}
