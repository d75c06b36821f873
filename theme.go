package sliderule

// Theme holds the colors and base sizes used by the Renderer. Sizes are in
// local units at zoom level 0.
type Theme struct {
	Background Color

	OuterFace  Color
	OuterTicks Color
	InnerFace  Color
	InnerPeg   Color
	InnerTicks Color
	Guide      Color

	FontSize  float64
	LineWidth float64
}

// DefaultTheme is white outer ring, yellow inner ring with a red peg.
func DefaultTheme() Theme {
	return Theme{
		Background: Color{0.85, 0.85, 0.85, 1},
		OuterFace:  ColorWhite,
		OuterTicks: ColorBlack,
		InnerFace:  Color{1, 1, 0, 1},
		InnerPeg:   Color{1, 0, 0, 1},
		InnerTicks: Color{1, 0, 0, 1},
		Guide:      Color{0, 0, 1, 1},
		FontSize:   14,
		LineWidth:  1,
	}
}

// ringStyle is the subset of Theme one scale is drawn with.
type ringStyle struct {
	face  Color
	frame Color
	ticks Color
}

func (t Theme) outerStyle() ringStyle {
	return ringStyle{face: t.OuterFace, frame: t.OuterFace, ticks: t.OuterTicks}
}

func (t Theme) innerStyle() ringStyle {
	return ringStyle{face: t.InnerFace, frame: t.InnerPeg, ticks: t.InnerTicks}
}
