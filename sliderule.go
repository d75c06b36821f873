package sliderule

import (
	"errors"
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors used by the default theme.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and directions.
type Vec2 struct {
	X, Y float64
}

// Rings is a bitmask naming one or both scales of the rule.
type Rings uint8

const (
	RingOuter Rings = 1 << iota // outer scale (multiplicand / result)
	RingInner                   // inner scale (second operand)

	RingNone Rings = 0
	RingBoth       = RingOuter | RingInner
)

// Has reports whether r includes every ring in other.
func (r Rings) Has(other Rings) bool {
	return other != 0 && r&other == other
}

func (r Rings) String() string {
	switch r {
	case RingNone:
		return "none"
	case RingOuter:
		return "outer"
	case RingInner:
		return "inner"
	case RingBoth:
		return "both"
	default:
		return "invalid"
	}
}

// Errors returned by the rule's operations. Callers should compare with
// errors.Is; returned values are usually wrapped with the offending input.
var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrInvalidRadix   = errors.New("invalid radix")
	ErrEmptyScript    = errors.New("no steps")
)

// fullTurn is one revolution in radians.
const fullTurn = 2 * math.Pi
