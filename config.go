package sliderule

import (
	"fmt"
	"math"
	"slices"
)

// Config holds the geometry and tuning of a slide rule. Start from
// DefaultConfig and override fields.
type Config struct {
	// Outer and Inner give the scale geometry. Their Radix and Rotation are
	// ignored; Radix below applies to both.
	Outer, Inner Scale

	// Radix is the initial base of both scales.
	Radix int
	// Radices is the set the base selector cycles through.
	Radices []int

	// MinSteps is the minimum number of frames an animation segment takes.
	MinSteps int
	// MaxSpeed caps the angular speed of animations in radians per frame.
	// Zero disables the cap and every segment takes exactly MinSteps frames.
	MaxSpeed float64

	// MaxDragStep is the largest per-sample pointer angle change applied
	// during a drag. Larger steps are treated as atan2 wraparound and dropped.
	MaxDragStep float64

	// MaxZoom bounds the zoom level.
	MaxZoom int
	// ZoomDuration is the length of the zoom transition in seconds. Zero
	// switches zoom levels instantly.
	ZoomDuration float32

	// Width and Height are the size of the display surface in pixels.
	Width, Height int
}

// DefaultConfig returns the stock 1000x1000 decimal rule.
func DefaultConfig() Config {
	return Config{
		Outer:        Scale{Radius: 200, FrameDistance: 50, TickLength: 20},
		Inner:        Scale{Radius: 200, FrameDistance: -150, TickLength: -20},
		Radix:        10,
		Radices:      []int{8, 10, 16},
		MinSteps:     30,
		MaxSpeed:     math.Pi / 60,
		MaxDragStep:  math.Pi / 4,
		MaxZoom:      6,
		ZoomDuration: 0.25,
		Width:        1000,
		Height:       1000,
	}
}

// Validate checks the configuration for values the rule cannot work with.
func (c Config) Validate() error {
	if err := ValidRadix(c.Radix); err != nil {
		return err
	}
	for _, r := range c.Radices {
		if err := ValidRadix(r); err != nil {
			return err
		}
	}
	if len(c.Radices) > 0 && !slices.Contains(c.Radices, c.Radix) {
		return fmt.Errorf("radix %d not in %v: %w", c.Radix, c.Radices, ErrInvalidRadix)
	}
	if c.Outer.Radius <= 0 || c.Inner.Radius <= 0 {
		return fmt.Errorf("config: scale radius must be positive")
	}
	if c.Inner.FrameRadius() < 0 {
		return fmt.Errorf("config: inner frame radius %v is negative", c.Inner.FrameRadius())
	}
	if c.MinSteps < 1 {
		return fmt.Errorf("config: min steps %d, want >= 1", c.MinSteps)
	}
	if c.MaxSpeed < 0 || c.MaxDragStep <= 0 {
		return fmt.Errorf("config: speed limits must be positive")
	}
	if c.MaxZoom < 0 {
		return fmt.Errorf("config: max zoom %d is negative", c.MaxZoom)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: surface size %dx%d", c.Width, c.Height)
	}
	return nil
}

// nextRadix returns the radix after cur in the configured cycle.
func (c Config) nextRadix(cur int) int {
	if len(c.Radices) == 0 {
		return cur
	}
	i := slices.Index(c.Radices, cur)
	return c.Radices[(i+1)%len(c.Radices)]
}
