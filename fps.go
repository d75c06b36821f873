package sliderule

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefresh is how often the FPS readout is refreshed, in seconds.
const fpsRefresh = 0.5

// fpsMeter keeps a slowly refreshed FPS/TPS line for the overlay.
type fpsMeter struct {
	elapsed float64
	line    string
}

func (m *fpsMeter) update(dt float64) {
	m.elapsed += dt
	if m.line != "" && m.elapsed < fpsRefresh {
		return
	}
	m.elapsed = 0
	m.line = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}
