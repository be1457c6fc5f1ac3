package frost

import (
	"image"
	"time"
)

// tickStats holds per-tick stage timings.
// Only populated when the driver is in debug mode.
type tickStats struct {
	motion    time.Duration
	field     time.Duration
	sample    time.Duration
	composite time.Duration
	window    image.Rectangle
}

func (s tickStats) total() time.Duration {
	return s.motion + s.field + s.sample + s.composite
}

// debugLog emits the stage timings of one tick at debug level.
func (d *Driver) debugLog(stats tickStats) {
	if !d.debug {
		return
	}
	Logger().Debug("tick",
		"n", d.ticks,
		"motion", stats.motion,
		"field", stats.field,
		"sample", stats.sample,
		"composite", stats.composite,
		"total", stats.total(),
		"window", stats.window.String(),
	)
}
