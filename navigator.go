package onboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

var (
	// ErrNoScenes is returned when a carousel is configured without scenes.
	ErrNoScenes = errors.New("onboard: at least one scene is required")
	// ErrInvalidThreshold is returned for a negative or non-finite swipe threshold.
	ErrInvalidThreshold = errors.New("onboard: swipe threshold must be positive and finite")
	// ErrInvalidWidth is returned for a negative or non-finite unit width.
	ErrInvalidWidth = errors.New("onboard: unit width must be non-negative and finite")
)

// DefaultTransitionDuration is the scene-to-scene animation time in seconds.
const DefaultTransitionDuration float32 = 0.3

// NavigatorConfig configures a Navigator. Zero values take defaults.
type NavigatorConfig struct {
	SceneCount    int
	HasActionable bool

	// UnitWidth is the width of one scene in pixels. It may be zero until
	// the first layout and is updated with SetUnitWidth.
	UnitWidth float64

	MinSwipeDistance   float64 // 0 = DefaultMinSwipeDistance
	TransitionDuration float32 // 0 = DefaultTransitionDuration; < 0 = instant
	Easing             ease.TweenFunc

	OnCompleted   func()
	OnSceneChange func(from, to int)
	Logger        *zap.Logger
}

// Navigator is the scene state machine. It owns the current index and the
// offset animation value; nothing else writes the offset.
//
// Indexes run from 0 to Len()-1. When an actionable scene is configured it
// occupies the final index and is never the "last scene": OnCompleted fires
// only when moving forward from SceneCount()-1.
type Navigator struct {
	sceneCount    int
	hasActionable bool
	unitWidth     float64
	threshold     float64
	duration      float32
	easing        ease.TweenFunc

	current  int
	atLast   bool
	offset   *AnimationValue
	dragBase float64
	dragging bool

	onCompleted   func()
	onSceneChange func(from, to int)
	log           *zap.Logger
}

// NewNavigator validates cfg and returns a navigator resting on scene 0.
func NewNavigator(cfg NavigatorConfig) (*Navigator, error) {
	if cfg.SceneCount < 1 {
		return nil, ErrNoScenes
	}
	threshold := cfg.MinSwipeDistance
	if threshold == 0 {
		threshold = DefaultMinSwipeDistance
	}
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, cfg.MinSwipeDistance)
	}
	if cfg.UnitWidth < 0 || math.IsNaN(cfg.UnitWidth) || math.IsInf(cfg.UnitWidth, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWidth, cfg.UnitWidth)
	}
	duration := cfg.TransitionDuration
	if duration == 0 {
		duration = DefaultTransitionDuration
	}
	easing := cfg.Easing
	if easing == nil {
		easing = ease.OutCubic
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &Navigator{
		sceneCount:    cfg.SceneCount,
		hasActionable: cfg.HasActionable,
		unitWidth:     cfg.UnitWidth,
		threshold:     threshold,
		duration:      duration,
		easing:        easing,
		offset:        NewAnimationValue(0),
		onCompleted:   cfg.OnCompleted,
		onSceneChange: cfg.OnSceneChange,
		log:           logger,
	}
	n.atLast = n.current == n.sceneCount-1
	return n, nil
}

// Index returns the current scene index.
func (n *Navigator) Index() int { return n.current }

// Len returns the number of navigable indexes, including the actionable scene.
func (n *Navigator) Len() int {
	if n.hasActionable {
		return n.sceneCount + 1
	}
	return n.sceneCount
}

// SceneCount returns the number of regular scenes.
func (n *Navigator) SceneCount() int { return n.sceneCount }

// HasActionable reports whether an actionable scene follows the regular scenes.
func (n *Navigator) HasActionable() bool { return n.hasActionable }

// IsAtLastScene reports whether the current index is the last regular scene.
func (n *Navigator) IsAtLastScene() bool { return n.atLast }

// IsOnActionable reports whether the actionable scene is current.
func (n *Navigator) IsOnActionable() bool {
	return n.hasActionable && n.current == n.sceneCount
}

// Threshold returns the minimum swipe distance.
func (n *Navigator) Threshold() float64 { return n.threshold }

// UnitWidth returns the width of one scene.
func (n *Navigator) UnitWidth() float64 { return n.unitWidth }

// Offset returns the live horizontal offset.
func (n *Navigator) Offset() float64 { return n.offset.Value() }

// Animating reports whether the offset is moving toward a target.
func (n *Navigator) Animating() bool { return n.offset.Animating() }

// Dragging reports whether a drag is in progress.
func (n *Navigator) Dragging() bool { return n.dragging }

// AddOffsetListener registers fn to observe offset changes.
func (n *Navigator) AddOffsetListener(fn func(float64)) ListenerHandle {
	return n.offset.AddListener(fn)
}

// Update advances the offset animation by dt seconds.
func (n *Navigator) Update(dt float32) {
	n.offset.Update(dt)
}

// SetUnitWidth changes the scene width (e.g. on window resize) and snaps the
// offset to the current scene's resting position.
func (n *Navigator) SetUnitWidth(w float64) {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) || w == n.unitWidth {
		return
	}
	n.unitWidth = w
	n.dragging = false
	n.offset.Set(n.rest(n.current))
}

// rest returns the resting offset of index i.
func (n *Navigator) rest(i int) float64 {
	return float64(i) * n.unitWidth
}

// JumpTo moves to target. Out-of-range targets are clamped to [0, Len()-1].
// Jumping to the current index is a no-op.
func (n *Navigator) JumpTo(target int) {
	if last := n.Len() - 1; target < 0 || target > last {
		clamped := max(0, min(target, last))
		n.log.Debug("jump target clamped",
			zap.Int("requested", target), zap.Int("clamped", clamped))
		target = clamped
	}
	if target == n.current {
		return
	}
	from := n.current
	n.current = target
	n.dragging = false
	n.animate(n.rest(target))
	n.atLast = n.current == n.sceneCount-1
	n.log.Debug("scene change", zap.Int("from", from), zap.Int("to", target))
	if n.onSceneChange != nil {
		n.onSceneChange(from, target)
	}
}

// Next advances one scene. On the last regular scene it invokes OnCompleted
// and snaps back instead of moving into the actionable scene. On the
// actionable scene it recenters.
func (n *Navigator) Next() {
	last := n.sceneCount - 1
	switch {
	case n.current < last:
		n.JumpTo(n.current + 1)
	case n.current == last:
		n.Recenter()
		n.log.Debug("onboarding completed", zap.Int("scene", n.current))
		if n.onCompleted != nil {
			n.onCompleted()
		}
	default:
		n.Recenter()
	}
}

// Previous moves back one scene, or recenters on the first scene.
func (n *Navigator) Previous() {
	if n.current > 0 {
		n.JumpTo(n.current - 1)
		return
	}
	n.Recenter()
}

// Recenter animates the offset back to the current scene without changing
// the index.
func (n *Navigator) Recenter() {
	n.dragging = false
	n.animate(n.rest(n.current))
}

// ResolveGesture interprets a released drag of dx pixels (see Interpret) and
// performs the resulting transition.
func (n *Navigator) ResolveGesture(dx float64) Intent {
	intent := Interpret(dx, n.threshold)
	switch intent {
	case IntentAdvance:
		n.Next()
	case IntentRetreat:
		n.Previous()
	default:
		n.Recenter()
	}
	return intent
}

// Displacement returns the pointer-space displacement of the live offset from
// the current scene's resting position: positive when the previous scene is
// being pulled into view.
func (n *Navigator) Displacement() float64 {
	return n.rest(n.current) - n.offset.Value()
}

// BeginDrag starts a drag from the live offset, stopping any running
// animation where it stands.
func (n *Navigator) BeginDrag() {
	n.dragging = true
	n.dragBase = n.offset.Value()
	n.offset.Set(n.dragBase)
}

// Drag moves the offset to follow a pointer that has moved dx pixels since
// BeginDrag. Calls without a preceding BeginDrag start one implicitly.
func (n *Navigator) Drag(dx float64) {
	if !n.dragging {
		n.BeginDrag()
	}
	n.offset.Set(n.dragBase - dx)
}

// EndDrag releases the drag and resolves it against the last committed
// scene position.
func (n *Navigator) EndDrag() Intent {
	n.dragging = false
	return n.ResolveGesture(n.Displacement())
}

func (n *Navigator) animate(to float64) {
	n.offset.AnimateTo(to, n.duration, n.easing, nil)
}
