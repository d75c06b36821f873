package sliderule

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay layout in screen pixels.
const (
	overlayX     = 12
	overlayY     = 12
	overlayLineH = 16
)

// Calculator is an ebiten.Game showing one slide rule on a fixed-size
// canvas. The rule is re-rendered into the canvas only when something
// changes; Draw blits it and prints the operand fields and readouts.
//
// Keys: digits, '.', 'e' edit the focused operand, Tab switches operand,
// M multiply, D divide, R reset, B next radix (Shift inverts animation),
// L lock rings, = and - zoom, P screenshot, Esc quit.
type Calculator struct {
	session *Session
	rule    *Rule
	canvas  *ebiten.Image
	readout *Readout
	run     RunConfig

	fields [2]numberField
	focus  int

	mouseDown    bool
	mouseX       int
	mouseY       int
	touchActive  bool
	touchID      ebiten.TouchID
	touchBuf     []ebiten.TouchID
	runeBuf      []rune
	fps          fpsMeter
	lastErr      error
	lastShotPath string
}

// NewCalculator creates the game. cfg sets the rule, rc the window and
// runtime options.
func NewCalculator(cfg Config, rc RunConfig) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	canvas := ebiten.NewImage(cfg.Width, cfg.Height)
	surface, err := NewImageSurface(canvas)
	if err != nil {
		return nil, err
	}
	readout := &Readout{}
	rule, err := NewRule(cfg, surface, readout)
	if err != nil {
		return nil, err
	}
	rule.Renderer.Debug = rc.Debug
	rule.SetLock(rc.Lock)

	c := &Calculator{
		session: NewSession(rule, rc.TPS),
		rule:    rule,
		canvas:  canvas,
		readout: readout,
		run:     rc,
		fields: [2]numberField{
			{label: "a", text: rc.A},
			{label: "b", text: rc.B},
		},
	}
	if len(rc.Script) > 0 {
		runner, err := LoadTestScript(rc.Script)
		if err != nil {
			return nil, err
		}
		c.session.SetTestRunner(runner)
	}
	rule.Render()
	return c, nil
}

// Rule returns the underlying rule.
func (c *Calculator) Rule() *Rule {
	return c.rule
}

// Update processes one tick of input and animation.
func (c *Calculator) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !c.session.Update() {
		c.processMouse()
		c.processTouch()
	}
	c.processKeys()
	if c.run.ShowFPS {
		c.fps.update(1 / float64(ebiten.TPS()))
	}
	if c.run.ExitWhenDone && c.session.testRunner != nil && c.session.testRunner.Done() {
		return ebiten.Termination
	}
	return nil
}

// processMouse converts the left mouse button into pointer events.
func (c *Calculator) processMouse() {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !c.mouseDown:
		c.mouseDown = true
		c.rule.HandleScreenPointer(PointerPress, SourceMouse, float64(x), float64(y))
	case pressed && (x != c.mouseX || y != c.mouseY):
		c.rule.HandleScreenPointer(PointerMove, SourceMouse, float64(x), float64(y))
	case !pressed && c.mouseDown:
		c.mouseDown = false
		c.rule.HandleScreenPointer(PointerRelease, SourceMouse, float64(x), float64(y))
	}
	c.mouseX, c.mouseY = x, y
}

// processTouch follows the first touch that goes down until it lifts.
func (c *Calculator) processTouch() {
	if c.touchActive {
		if inpututil.IsTouchJustReleased(c.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(c.touchID)
			c.rule.HandleScreenPointer(PointerRelease, SourceTouch, float64(x), float64(y))
			c.touchActive = false
			return
		}
		x, y := ebiten.TouchPosition(c.touchID)
		c.rule.HandleScreenPointer(PointerMove, SourceTouch, float64(x), float64(y))
		return
	}
	c.touchBuf = inpututil.AppendJustPressedTouchIDs(c.touchBuf[:0])
	if len(c.touchBuf) == 0 {
		return
	}
	c.touchID = c.touchBuf[0]
	x, y := ebiten.TouchPosition(c.touchID)
	c.touchActive = c.rule.HandleScreenPointer(PointerPress, SourceTouch, float64(x), float64(y))
}

func (c *Calculator) processKeys() {
	c.runeBuf = ebiten.AppendInputChars(c.runeBuf[:0])
	for _, r := range c.runeBuf {
		c.fields[c.focus].insert(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		c.fields[c.focus].backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		c.focus = (c.focus + 1) % len(c.fields)
	}

	animate := c.run.Animate != ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		c.apply(c.rule.Multiply, animate)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		c.apply(c.rule.Divide, animate)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		c.lastErr = nil
		c.rule.Reset(animate)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		c.lastErr = c.rule.CycleRadix(animate)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		c.rule.SetLock(!c.rule.State.Lock)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		c.rule.ZoomIn()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		c.rule.ZoomOut()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		c.session.Screenshot("manual")
	}
}

// apply reads both operand fields and runs op. Parse failures are shown on
// the primary readout and leave the rule untouched.
func (c *Calculator) apply(op func(a, b float64, animate bool) (float64, error), animate bool) {
	a, err := c.fields[0].value()
	if err != nil {
		c.fail(err)
		return
	}
	b, err := c.fields[1].value()
	if err != nil {
		c.fail(err)
		return
	}
	_, c.lastErr = op(a, b, animate)
}

func (c *Calculator) fail(err error) {
	c.lastErr = err
	c.readout.Reject(err)
}

// Draw blits the canvas and the overlay, then writes queued screenshots.
func (c *Calculator) Draw(screen *ebiten.Image) {
	screen.DrawImage(c.canvas, nil)

	lines := []string{
		c.fieldLine(),
		fmt.Sprintf("outer: %s   inner: %s", formatReadout(c.readout.Primary), formatReadout(c.readout.Secondary)),
		fmt.Sprintf("radix: %d   lock: %v   zoom: %d", c.rule.State.Radix(), c.rule.State.Lock, c.rule.State.Zoom),
	}
	if c.lastErr != nil {
		lines = append(lines, "error: "+c.lastErr.Error())
	}
	if c.lastShotPath != "" {
		lines = append(lines, "saved: "+c.lastShotPath)
	}
	if c.run.ShowFPS {
		lines = append(lines, c.fps.line)
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, overlayX, overlayY+i*overlayLineH)
	}

	c.flushScreenshots()
}

func (c *Calculator) fieldLine() string {
	s := ""
	for i, f := range c.fields {
		marker := " "
		if i == c.focus {
			marker = ">"
		}
		s += fmt.Sprintf("%s%s: %-14s", marker, f.label, f.text)
	}
	return s
}

func (c *Calculator) flushScreenshots() {
	labels := c.session.takeScreenshots()
	if len(labels) == 0 {
		return
	}
	paths, err := writeScreenshots(c.run.ScreenshotDir, captureImage(c.canvas), labels)
	if err != nil {
		warnf("%v", err)
	}
	if len(paths) > 0 {
		c.lastShotPath = paths[len(paths)-1]
	}
}

// Layout fixes the logical screen to the canvas size.
func (c *Calculator) Layout(_, _ int) (int, int) {
	b := c.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// formatReadout prints a port value; rejected values show as a dash.
func formatReadout(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// captureImage copies img into a straight-alpha NRGBA image.
func captureImage(img *ebiten.Image) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	img.ReadPixels(pixels)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		out.Pix[i] = r
		out.Pix[i+1] = g
		out.Pix[i+2] = b
		out.Pix[i+3] = a
	}
	return out
}
