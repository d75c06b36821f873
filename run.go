package sliderule

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds the window and runtime options for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// WindowWidth and WindowHeight size the window. Zero uses the canvas
	// size.
	WindowWidth, WindowHeight int
	// TPS is the update rate. Zero keeps ebiten's default of 60.
	TPS int
	// ShowFPS prints the FPS and TPS in the overlay.
	ShowFPS bool
	// Debug logs render statistics to stderr.
	Debug bool
	// Animate makes gestures animated by default. Shift inverts it.
	Animate bool
	// Lock starts with both rings turning together.
	Lock bool
	// A and B are the initial operand texts.
	A, B string
	// ScreenshotDir receives PNG captures.
	ScreenshotDir string
	// Script is an optional JSON test script run from the first frame.
	Script []byte
	// ExitWhenDone quits once the script has finished.
	ExitWhenDone bool
}

// DefaultRunConfig returns an 800x800 animated window.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Circular Slide Rule",
		WindowWidth:   800,
		WindowHeight:  800,
		Animate:       true,
		A:             "2",
		B:             "3",
		ScreenshotDir: "screenshots",
	}
}

// Run opens a window and runs a Calculator until it is closed.
func Run(cfg Config, rc RunConfig) error {
	c, err := NewCalculator(cfg, rc)
	if err != nil {
		return err
	}
	w, h := rc.WindowWidth, rc.WindowHeight
	if w <= 0 || h <= 0 {
		w, h = cfg.Width, cfg.Height
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rc.TPS > 0 {
		ebiten.SetTPS(rc.TPS)
	}
	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
