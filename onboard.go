package onboard

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default clear color.
var ColorWhite = Color{1, 1, 1, 1}

// IsZero reports whether c is the zero value (fully transparent black), which
// option defaulting treats as "unset".
func (c Color) IsZero() bool {
	return c == Color{}
}

// toRGBA converts to a premultiplied color.RGBA for ebiten.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are not considered intersecting,
// so a scene page resting exactly one viewport away is skipped.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// SceneContent is the externally supplied renderable unit of a scene. Draw is
// called with an offscreen page the size of the viewport and the scene's
// parallax value (see TransitionMapper.Parallax). The value is opaque to the
// carousel; content may use it to drive internal parallax effects.
type SceneContent interface {
	Draw(page *ebiten.Image, parallax float64)
}

// SceneContentFunc adapts a plain function to SceneContent.
type SceneContentFunc func(page *ebiten.Image, parallax float64)

// Draw calls f(page, parallax).
func (f SceneContentFunc) Draw(page *ebiten.Image, parallax float64) {
	f(page, parallax)
}

// SceneUpdater is optionally implemented by SceneContent that animates on its
// own. Update is called once per tick for every scene, visible or not.
type SceneUpdater interface {
	Update(dt float64)
}

// Scene is one navigable page of content with an associated background color.
// Identity is the position in the carousel's sequence.
type Scene struct {
	Content         SceneContent
	BackgroundColor Color
}

// controlKind identifies the tappable carousel controls.
type controlKind uint8

const (
	controlNone       controlKind = iota // no control hit (scene area)
	controlIndicator                     // page indicator dot; index carries the scene
	controlNavigate                      // "Continue" / "Completed" button
	controlActionable                    // shortcut to the actionable scene
)

// control is a hit-testable region of the controller area.
type control struct {
	kind   controlKind
	index  int
	bounds Rect
}
