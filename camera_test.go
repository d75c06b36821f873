package sliderule

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestView(duration float32) *View {
	cfg := DefaultConfig()
	return NewView(float64(cfg.Width), float64(cfg.Height), cfg.Outer, duration)
}

func TestViewUnzoomedCentersOrigin(t *testing.T) {
	v := newTestView(0)
	x, y := v.LocalToScreen(0, 0)
	assertPoint(t, "center", x, y, 500, 500)
	x, y = v.LocalToScreen(0, -200)
	assertPoint(t, "anchor", x, y, 500, 300)
}

func TestViewZoomKeepsAnchor(t *testing.T) {
	v := newTestView(0)
	ax, ay := v.LocalToScreen(v.Anchor.X, v.Anchor.Y)
	for level := 1; level <= 4; level++ {
		v.SetLevel(level)
		x, y := v.LocalToScreen(v.Anchor.X, v.Anchor.Y)
		assertPoint(t, "anchor after zoom", x, y, ax, ay)
	}
	assertNear(t, "scale at level 4", v.CurrentScale(), 16)

	// Away from the anchor distances double with each level.
	v.SetLevel(1)
	x0, y0 := v.LocalToScreen(0, -200)
	x1, y1 := v.LocalToScreen(10, -200)
	assertNear(t, "dx", x1-x0, 20)
	assertNear(t, "dy", y1-y0, 0)
}

func TestViewScreenToLocalRoundTrip(t *testing.T) {
	v := newTestView(0)
	v.SetLevel(3)
	for _, p := range [][2]float64{{0, 0}, {0, -200}, {37, -211}} {
		sx, sy := v.LocalToScreen(p[0], p[1])
		x, y := v.ScreenToLocal(sx, sy)
		assertPoint(t, "round trip", x, y, p[0], p[1])
	}
}

func TestViewTween(t *testing.T) {
	v := newTestView(0.25)
	v.SetLevel(1)
	if !v.Animating() {
		t.Fatal("expected zoom transition")
	}
	if v.CurrentScale() != 1 {
		t.Errorf("scale before Update = %v, want 1", v.CurrentScale())
	}
	v.Update(0.1)
	if s := v.CurrentScale(); s <= 1 || s >= 2 {
		t.Errorf("scale mid-tween = %v, want in (1, 2)", s)
	}
	v.Update(1)
	if v.Animating() {
		t.Error("tween should be finished")
	}
	if v.CurrentScale() != 2 {
		t.Errorf("final scale = %v, want 2", v.CurrentScale())
	}
}

func TestViewTweenRetarget(t *testing.T) {
	v := newTestView(0.25)
	v.Ease = ease.Linear
	v.SetLevel(2)
	v.Update(0.125)
	mid := v.CurrentScale()
	v.SetLevel(0)
	v.Update(0.125)
	if s := v.CurrentScale(); s >= mid {
		t.Errorf("retargeted scale = %v, want below %v", s, mid)
	}
	v.Update(1)
	if v.CurrentScale() != 1 {
		t.Errorf("final scale = %v, want 1", v.CurrentScale())
	}
}

func TestViewSetLevelNoop(t *testing.T) {
	v := newTestView(0.25)
	v.SetLevel(0)
	if v.Animating() {
		t.Error("setting the current level should not start a transition")
	}
}
