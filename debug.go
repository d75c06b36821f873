package sliderule

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame render metrics. Only populated when
// Renderer.Debug is true.
type debugStats struct {
	renderTime time.Duration
	layers     int
	ticks      int
	labels     int
}

// debugLog prints render stats to stderr.
func debugLog(stats debugStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[sliderule] render: %v | layers: %d | ticks: %d | labels: %d\n",
		stats.renderTime, stats.layers, stats.ticks, stats.labels)
}

// warnf reports a non-fatal runtime problem on stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[sliderule] "+format+"\n", args...)
}
