package meadow

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and scene metrics. Only reported when
// the desktop's debug flag is set.
type frameStats struct {
	updateTime  time.Duration
	drawTime    time.Duration
	windowCount int
	particles   int
}

// debugLog prints frame stats to stderr.
func (d *Desktop) debugLog(stats frameStats) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[meadow] frame %d | update: %v | draw: %v | windows: %d | particles: %d\n",
		d.frames, stats.updateTime, stats.drawTime, stats.windowCount, stats.particles)
}
