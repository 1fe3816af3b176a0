package onboard

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Controller area metrics, in pixels.
const (
	buttonWidthRatio    = 0.7
	buttonHeight        = 44
	buttonBottomMargin  = 32
	actionableHeight    = 32
	actionablePadding   = 10
	actionableGap       = 5
	indicatorSize       = 8
	indicatorSpacing    = 10
	indicatorGap        = 20
	indicatorHitPadding = 6
)

var buttonTextColor = Color{1, 1, 1, 1}

// layoutControls computes the hit regions of the controller area for the
// current viewport. Controls are laid out bottom-up: navigate button,
// optional actionable link, indicator row.
func (c *Carousel) layoutControls() {
	w, h := float64(c.width), float64(c.height)
	c.controls = c.controls[:0]

	bw := w * buttonWidthRatio
	nav := Rect{X: (w - bw) / 2, Y: h - buttonBottomMargin - buttonHeight, Width: bw, Height: buttonHeight}
	c.controls = append(c.controls, control{kind: controlNavigate, bounds: nav})

	top := nav.Y
	if c.nav.HasActionable() {
		tw := text.Advance(c.opts.ActionableButtonTitle, c.face) + 2*actionablePadding
		act := Rect{X: (w - tw) / 2, Y: top - actionableGap - actionableHeight, Width: tw, Height: actionableHeight}
		c.controls = append(c.controls, control{kind: controlActionable, bounds: act})
		top = act.Y
	}

	n := c.nav.SceneCount()
	rowW := float64(n)*indicatorSize + float64(n-1)*indicatorSpacing
	x := (w - rowW) / 2
	y := top - indicatorGap - indicatorSize
	for i := 0; i < n; i++ {
		c.controls = append(c.controls, control{
			kind:  controlIndicator,
			index: i,
			bounds: Rect{
				X:      x - indicatorHitPadding,
				Y:      y - indicatorHitPadding,
				Width:  indicatorSize + 2*indicatorHitPadding,
				Height: indicatorSize + 2*indicatorHitPadding,
			},
		})
		x += indicatorSize + indicatorSpacing
	}
}

// Draw implements ebiten.Game: background, visible scenes, controller area.
func (c *Carousel) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	offset := c.nav.Offset()
	bg := c.opts.ClearColor
	if c.opts.EnableBackgroundTransition {
		bg = c.mapper.BackgroundColor(offset)
	}
	screen.Fill(bg.toRGBA())

	drawn := c.drawScenes(screen, offset)
	c.drawControls(screen, offset)

	if c.debug {
		c.debugDraw(time.Since(t0), drawn)
	}
	c.flushScreenshots(screen)
}

// drawScenes renders every scene page that intersects the viewport and
// returns how many were drawn. At most two pages are visible at once, and
// adjacent indexes alternate between the two page buffers.
func (c *Carousel) drawScenes(screen *ebiten.Image, offset float64) int {
	w, h := float64(c.width), float64(c.height)
	if c.width <= 0 || c.height <= 0 {
		return 0
	}
	view := Rect{Width: w, Height: h}
	drawn := 0
	for i := 0; i < c.nav.Len(); i++ {
		x := float64(i)*w - offset
		if !view.Intersects(Rect{X: x, Width: w, Height: h}) {
			continue
		}
		page := c.page(i % len(c.pages))
		page.Clear()
		c.sceneContent(i).Draw(page, c.mapper.Parallax(i, offset))

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(page, op)
		drawn++
	}
	return drawn
}

func (c *Carousel) page(slot int) *ebiten.Image {
	if c.pages[slot] == nil {
		c.pages[slot] = ebiten.NewImage(c.width, c.height)
	}
	return c.pages[slot]
}

func (c *Carousel) drawControls(screen *ebiten.Image, offset float64) {
	for _, ctl := range c.controls {
		b := ctl.bounds
		switch ctl.kind {
		case controlIndicator:
			clr := c.mapper.IndicatorColor(ctl.index, offset)
			cx := float32(b.X + b.Width/2)
			cy := float32(b.Y + b.Height/2)
			vector.DrawFilledCircle(screen, cx, cy, indicatorSize/2, clr.toRGBA(), true)

		case controlNavigate:
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
				c.opts.ActiveColor.toRGBA(), true)
			c.drawLabel(screen, c.NavigateTitle(), b, buttonTextColor)

		case controlActionable:
			c.drawLabel(screen, c.opts.ActionableButtonTitle, b, c.opts.ActiveColor)
		}
	}
}

// drawLabel draws s centered in b.
func (c *Carousel) drawLabel(screen *ebiten.Image, s string, b Rect, clr Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(b.X+b.Width/2, b.Y+b.Height/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	text.Draw(screen, s, c.face, op)
}
