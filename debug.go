package onboard

import (
	"time"

	"go.uber.org/zap"
)

// SetDebugMode enables or disables per-frame timing logs. Logs are written
// at debug level through the configured Logger.
func (c *Carousel) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugUpdate logs update timing and navigation state.
func (c *Carousel) debugUpdate(elapsed time.Duration) {
	c.log.Debug("update",
		zap.Duration("elapsed", elapsed),
		zap.Int("index", c.nav.Index()),
		zap.Float64("offset", c.nav.Offset()),
		zap.Bool("animating", c.nav.Animating()),
		zap.Bool("dragging", c.nav.Dragging()))
}

// debugDraw logs draw timing and how many scene pages were rendered.
func (c *Carousel) debugDraw(elapsed time.Duration, pages int) {
	c.log.Debug("draw",
		zap.Duration("elapsed", elapsed),
		zap.Int("pages", pages),
		zap.Int("controls", len(c.controls)))
}
