package sliderule

import (
	"math"
	"strconv"
	"strings"
)

// Mark scaling per zoom layer. Each factor is below 1 so marks shrink
// strictly with depth.
const (
	layerLengthFactor = 3.0 / 4
	layerFontFactor   = 2.0 / 5
	layerLineFactor   = 1.0 / 2

	// fromEpsilon absorbs pow/log round-off when locating the subdivided
	// interval, so a value of exactly 2 lands in [2, 3) and not [1, 2).
	fromEpsilon = 1e-9
)

// Tick is a single mark on a ring. Turn is the position in fractions of a
// full revolution, measured from the ring's reference mark. Label is empty
// for unlabeled ticks.
type Tick struct {
	Turn  float64
	Label string
}

// Layer is the set of ticks drawn at one zoom depth. Level 0 is the base
// scale. The scale factors multiply the ring's tick length, font size and
// line width.
type Layer struct {
	Level       int
	LengthScale float64
	FontScale   float64
	LineScale   float64
	Ticks       []Tick
}

// Layers returns the base layer followed by every zoom layer up to zoom.
func Layers(s Scale, zoom int) []Layer {
	layers := make([]Layer, 0, zoom+1)
	for l := 0; l <= zoom; l++ {
		layers = append(layers, Ticks(s, l))
	}
	return layers
}

// Ticks generates the ticks of one layer. Level 0 produces the radix-1
// base ticks at log(2)..log(radix). Deeper levels subdivide the interval
// sitting at the reference position; odd levels carry labels, even levels
// are bare.
func Ticks(s Scale, level int) Layer {
	layer := Layer{
		Level:       level,
		LengthScale: math.Pow(layerLengthFactor, float64(level)),
		FontScale:   math.Pow(layerFontFactor, float64(level)),
		LineScale:   math.Pow(layerLineFactor, float64(level)),
	}
	if level <= 0 {
		layer.Level = 0
		layer.Ticks = baseTicks(s)
		return layer
	}
	layer.Ticks = zoomTicks(s, level)
	return layer
}

func baseTicks(s Scale) []Tick {
	f := s.FullRotations()
	ticks := make([]Tick, 0, s.Radix-1)
	for k := 2; k <= s.Radix; k++ {
		ticks = append(ticks, Tick{
			Turn:  s.Log(float64(k)),
			Label: digitLabel(s.Radix, k, f),
		})
	}
	return ticks
}

func zoomTicks(s Scale, level int) []Tick {
	r := s.Radix
	f := s.FullRotations()
	div := r
	if level > 2 {
		div = 2
	}
	factor := math.Pow(float64(r), float64(f-(level-1)))
	from := math.Floor(s.Value()/factor + fromEpsilon)
	labeled := level%2 == 1

	ticks := make([]Tick, 0, div)
	for l := 0; l < div; l++ {
		m := from + float64(l+1)/float64(div)
		t := Tick{Turn: s.Log(m)}
		if labeled {
			if r == 10 {
				t.Label = strconv.FormatFloat(m*factor, 'f', max(0, level-f), 64)
			} else {
				n := int64(from)*int64(r) + int64((l+1)*r/div)
				t.Label = strconv.FormatInt(n, r)
			}
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// OriginTick returns the reference mark at turn 0, labeled with the first
// value of the current decade.
func OriginTick(s Scale) Tick {
	return Tick{Turn: 0, Label: digitLabel(s.Radix, 1, s.FullRotations())}
}

// digitLabel formats k·radix^f. Decimal labels get enough fraction digits to
// show the decade; other radices are printed as plain integers.
func digitLabel(radix, k, f int) string {
	if radix == 10 {
		v := float64(k) * math.Pow(10, float64(f))
		return strconv.FormatFloat(v, 'f', max(0, -f), 64)
	}
	label := strconv.FormatInt(int64(k), radix)
	if f > 0 {
		label += strings.Repeat("0", f)
	}
	return label
}
