package onboard

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screenshot queues a labeled capture of the carousel, taken at the end of
// the next Draw. The PNG lands in ScreenshotDir as
// <timestamp>_<label>_scene<index>.png.
func (c *Carousel) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots writes every queued capture of screen. Failures are
// logged and the queue is cleared either way.
func (c *Carousel) flushScreenshots(screen *ebiten.Image) {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		c.log.Warn("screenshot: create dir", zap.String("dir", c.ScreenshotDir), zap.Error(err))
		return
	}

	// ebiten pixels are premultiplied, which is exactly image.RGBA's layout.
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.screenshotQueue {
		path := filepath.Join(c.ScreenshotDir, screenshotName(stamp, label, c.nav.Index()))
		if err := savePNG(path, img); err != nil {
			c.log.Warn("screenshot", zap.Error(err))
			continue
		}
		c.log.Debug("screenshot written", zap.String("path", path))
	}
}

func screenshotName(stamp, label string, scene int) string {
	return fmt.Sprintf("%s_%s_scene%d.png", stamp, sanitizeLabel(label), scene)
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps everything
// else to '_', and names blank labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
