package sliderule

import (
	"math"
	"time"
)

// originLengthScale stretches the reference tick past the base ticks.
const originLengthScale = 1.5

// Renderer draws a State onto a Surface.
type Renderer struct {
	Theme Theme
	// Debug logs per-frame statistics to stderr.
	Debug bool

	stats debugStats
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// Draw clears dst and draws the outer scale, then the inner scale on top.
// After each scale its value is written to ports. A nil view centers the
// rule without zoom; nil ports discard the values.
func (r *Renderer) Draw(dst Surface, st *State, view *View, ports Ports) {
	if ports == nil {
		ports = discardPorts{}
	}
	var t0 time.Time
	if r.Debug {
		t0 = time.Now()
		r.stats = debugStats{}
	}

	dst.Clear(r.Theme.Background)
	dst.Save()
	if view != nil {
		dst.Transform(view.Matrix())
	} else {
		w, h := dst.Size()
		dst.Translate(w/2, h/2)
	}

	r.drawScale(dst, st.Outer, st.Zoom, r.Theme.outerStyle(), true)
	ports.SetPrimary(st.Outer.Value())

	r.drawScale(dst, st.Inner, st.Zoom, r.Theme.innerStyle(), false)
	ports.SetSecondary(st.Inner.Value())

	dst.Restore()

	if r.Debug {
		r.stats.renderTime = time.Since(t0)
		r.stats.layers = st.Zoom + 1
		debugLog(r.stats)
	}
}

// drawScale draws one ring: face, frame, reference tick, every tick layer
// and, for the outer ring, the result guide.
func (r *Renderer) drawScale(dst Surface, s Scale, zoom int, style ringStyle, guide bool) {
	thin := r.Theme.LineWidth * math.Pow(layerLineFactor, float64(zoom))

	if s.FrameDistance < 0 {
		// Inward rings are filled up to their tick circle so they cover the
		// center of the ring below.
		dst.FillCircle(0, 0, s.Radius, style.face)
	}
	dst.FillCircle(0, 0, s.FrameRadius(), style.frame)
	dst.StrokeCircle(0, 0, s.FrameRadius(), thin, style.ticks)

	base := Ticks(s, 0)
	origin := base
	origin.LengthScale = originLengthScale
	r.drawTick(dst, s, OriginTick(s), origin, style.ticks)

	for _, layer := range Layers(s, zoom) {
		for _, t := range layer.Ticks {
			r.drawTick(dst, s, t, layer, style.ticks)
		}
	}

	if guide {
		l := math.Abs(s.TickLength) * float64(1+zoom)
		dst.Line(0, -s.Radius-l, 0, -s.Radius+l, thin, r.Theme.Guide)
	}
}

// drawTick draws a tick at its angle, with the label centered beyond its
// end.
func (r *Renderer) drawTick(dst Surface, s Scale, t Tick, layer Layer, c Color) {
	length := s.TickLength * layer.LengthScale

	dst.Save()
	dst.Rotate(fullTurn*t.Turn + s.Rotation)
	dst.Translate(0, -s.Radius)
	dst.Line(0, 0, 0, -length, r.Theme.LineWidth*layer.LineScale, c)
	r.stats.ticks++

	if t.Label != "" {
		size := r.Theme.FontSize * layer.FontScale
		w := dst.MeasureText(t.Label, size)
		dst.Translate(-w/2, -length*3/2)
		dst.FillText(t.Label, 0, 0, size, c)
		r.stats.labels++
	}
	dst.Restore()
}
