package onboard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// --- Constants ---

const (
	maxPointers = 2 // pointer 0 = mouse, 1 = first active touch
	noPointer   = -1
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hit      control
	dragging bool
}

// --- Synthetic input ---

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on
// the next frame's input pass, taking the place of real mouse input.
func (c *Carousel) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at (x, y) with the button held down.
func (c *Carousel) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (c *Carousel) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (c *Carousel) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY). Minimum
// frames is 2.
func (c *Carousel) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// --- Input processing ---

// processInput runs once per Update. An injected event, when queued,
// replaces real pointer input for the frame.
func (c *Carousel) processInput() {
	if len(c.injectQueue) > 0 {
		evt := c.injectQueue[0]
		copy(c.injectQueue, c.injectQueue[1:])
		c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
		c.processPointer(0, evt.x, evt.y, evt.pressed)
		return
	}

	mx, my := ebiten.CursorPosition()
	c.processPointer(0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	c.processTouch()
	c.processKeys()
}

// processTouch tracks the first touch that lands while no touch is active.
func (c *Carousel) processTouch() {
	c.touchIDs = ebiten.AppendTouchIDs(c.touchIDs[:0])
	if c.touchActive {
		for _, id := range c.touchIDs {
			if id == c.touchID {
				x, y := ebiten.TouchPosition(id)
				c.processPointer(1, float64(x), float64(y), true)
				return
			}
		}
		ps := &c.pointers[1]
		c.processPointer(1, ps.lastX, ps.lastY, false)
		c.touchActive = false
		return
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(c.justTouched[:0]) {
		c.touchActive = true
		c.touchID = id
		x, y := ebiten.TouchPosition(id)
		c.processPointer(1, float64(x), float64(y), true)
		return
	}
}

// keyAction is the navigation a key press requests.
type keyAction uint8

const (
	keyNone     keyAction = iota
	keyNext               // Right, PageDown
	keyPrevious           // Left, PageUp
	keyFirst              // Home
	keyLast               // End
)

var navigationKeys = []ebiten.Key{
	ebiten.KeyArrowRight, ebiten.KeyPageDown,
	ebiten.KeyArrowLeft, ebiten.KeyPageUp,
	ebiten.KeyHome, ebiten.KeyEnd,
}

// actionForKey maps a key to its navigation action.
func actionForKey(k ebiten.Key) keyAction {
	switch k {
	case ebiten.KeyArrowRight, ebiten.KeyPageDown:
		return keyNext
	case ebiten.KeyArrowLeft, ebiten.KeyPageUp:
		return keyPrevious
	case ebiten.KeyHome:
		return keyFirst
	case ebiten.KeyEnd:
		return keyLast
	}
	return keyNone
}

// processKeys applies the first navigation key pressed this frame.
func (c *Carousel) processKeys() {
	for _, k := range navigationKeys {
		if inpututil.IsKeyJustPressed(k) {
			c.applyKeyAction(actionForKey(k))
			return
		}
	}
}

// applyKeyAction performs a key's navigation. Keys are ignored while a
// pointer owns the carousel.
func (c *Carousel) applyKeyAction(a keyAction) {
	if c.owner != noPointer {
		return
	}
	switch a {
	case keyNext:
		c.nav.Next()
	case keyPrevious:
		c.nav.Previous()
	case keyFirst:
		c.nav.JumpTo(0)
	case keyLast:
		c.nav.JumpTo(c.nav.Len() - 1)
	}
}

// processPointer runs the pointer state machine for a single pointer. Only
// one pointer owns the carousel at a time; others are ignored until it
// releases.
func (c *Carousel) processPointer(pointerID int, x, y float64, pressed bool) {
	if c.owner != noPointer && c.owner != pointerID {
		return
	}
	ps := &c.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hit = c.hitTest(x, y)
		ps.dragging = false
		c.owner = pointerID

	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			dx := x - ps.startX
			if !ps.dragging && math.Abs(dx) > c.opts.DragDeadZone {
				ps.dragging = true
				c.nav.BeginDrag()
			}
			if ps.dragging {
				c.nav.Drag(dx)
			}
		}
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		if !ps.dragging && math.Abs(x-ps.startX) > c.opts.DragDeadZone {
			// Release landed past the dead zone without an intermediate move.
			ps.dragging = true
			c.nav.BeginDrag()
		}
		if ps.dragging {
			if dx := x - ps.startX; dx != ps.lastX-ps.startX {
				c.nav.Drag(dx)
			}
			intent := c.nav.EndDrag()
			c.log.Debug("swipe released",
				zap.Stringer("intent", intent), zap.Int("index", c.nav.Index()))
		} else if ps.hit.kind != controlNone && c.hitTest(x, y) == ps.hit {
			c.activate(ps.hit)
		}
		*ps = pointerState{lastX: x, lastY: y}
		c.owner = noPointer

	default:
		ps.lastX, ps.lastY = x, y
	}
}

// hitTest returns the control under (x, y), or a controlNone control.
func (c *Carousel) hitTest(x, y float64) control {
	for _, ctl := range c.controls {
		if ctl.bounds.Contains(x, y) {
			return ctl
		}
	}
	return control{}
}

// activate performs a tapped control's navigation. Taps bypass the swipe
// threshold entirely.
func (c *Carousel) activate(ctl control) {
	switch ctl.kind {
	case controlIndicator:
		c.nav.JumpTo(ctl.index)
	case controlNavigate:
		c.nav.Next()
	case controlActionable:
		c.nav.JumpTo(c.nav.Len() - 1)
	}
}
