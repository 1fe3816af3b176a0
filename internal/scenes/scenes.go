// Package scenes provides the built-in demo scene content used by the
// onboard command and the carousel example. Each scene draws a title, a
// caption and a few vector shapes that drift with the carousel's parallax.
package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/onboard"
	"golang.org/x/image/font/basicfont"
)

var (
	face       = text.NewGoXFace(basicfont.Face7x13)
	titleColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shapeColor = color.RGBA{R: 255, G: 255, B: 255, A: 96}
)

const (
	titleScale  = 2.0
	lineSpacing = 24.0
	orbitSpeed  = 1.2 // radians per second
)

// Card is a titled scene with a decorative shape. Shapes move against the
// swipe direction at Depth times the parallax value, so deeper cards appear
// further away.
type Card struct {
	Title   string
	Caption string
	Shape   Shape
	Depth   float64

	phase float64
}

// Shape selects the decoration drawn behind a card's text.
type Shape uint8

const (
	ShapeCircles Shape = iota // concentric rings
	ShapeBars                 // rising bars
	ShapeOrbit                // a dot orbiting a center
)

// Update advances the card's idle animation.
func (c *Card) Update(dt float64) {
	c.phase = math.Mod(c.phase+dt*orbitSpeed, 2*math.Pi)
}

// Draw renders the card into page.
func (c *Card) Draw(page *ebiten.Image, parallax float64) {
	b := page.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	shift := -parallax * c.Depth
	cx, cy := float32(w/2+shift), float32(h*0.35)

	switch c.Shape {
	case ShapeCircles:
		for r := float32(30); r <= 90; r += 30 {
			vector.StrokeCircle(page, cx, cy, r, 3, shapeColor, true)
		}
	case ShapeBars:
		const bars, bw = 5, 18
		x := cx - bars*bw
		for i := 0; i < bars; i++ {
			bh := float32(30 + 20*i)
			vector.DrawFilledRect(page, x+float32(i)*2*bw, cy+60-bh, bw, bh, shapeColor, true)
		}
	case ShapeOrbit:
		vector.StrokeCircle(page, cx, cy, 70, 2, shapeColor, true)
		ox := cx + float32(70*math.Cos(c.phase))
		oy := cy + float32(70*math.Sin(c.phase))
		vector.DrawFilledCircle(page, ox, oy, 10, titleColor, true)
	}

	ty := h*0.6 + shift*0.2
	drawCentered(page, c.Title, w/2+shift*0.5, ty, titleScale)
	drawCentered(page, c.Caption, w/2+shift*0.25, ty+2*lineSpacing, 1)
}

func drawCentered(page *ebiten.Image, s string, x, y, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(titleColor)
	text.Draw(page, s, face, op)
}

// Registry returns fresh instances of every built-in scene keyed by name,
// ready for onboard.Config.Options.
func Registry() map[string]onboard.SceneContent {
	return map[string]onboard.SceneContent{
		"welcome":  &Card{Title: "Welcome", Caption: "Swipe to look around", Shape: ShapeCircles, Depth: 0.4},
		"features": &Card{Title: "Features", Caption: "Everything moves with you", Shape: ShapeBars, Depth: 0.6},
		"sync":     &Card{Title: "Stay in sync", Caption: "Your data, everywhere", Shape: ShapeOrbit, Depth: 0.8},
		"signup":   &Card{Title: "Get started", Caption: "Create an account", Shape: ShapeCircles, Depth: 0},
	}
}

// Defaults is the config used when none is given on the command line.
func Defaults() *onboard.Config {
	return &onboard.Config{
		EnableBackgroundTransition: true,
		Scenes: []onboard.SceneConfig{
			{Name: "welcome", BackgroundColor: "#3D5AFE"},
			{Name: "features", BackgroundColor: "#00BFA5"},
			{Name: "sync", BackgroundColor: "#FF6D00"},
		},
		Actionable: "signup",
	}
}
