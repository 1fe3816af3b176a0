package onboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// ErrNilContent is returned when a scene has no content.
var ErrNilContent = errors.New("onboard: scene content is nil")

// Default titles and colors.
const (
	DefaultNavigateButtonTitle          = "Continue"
	DefaultNavigateButtonCompletedTitle = "Completed"
	DefaultActionableButtonTitle        = "Skip to Get Started"
	DefaultDragDeadZone                 = 4.0 // pixels
)

var (
	DefaultActiveColor   = Color{R: 0.961, G: 0.651, B: 0.137, A: 1} // #F5A623
	DefaultInactiveColor = Color{R: 0.847, G: 0.847, B: 0.847, A: 1} // #D8D8D8
)

// Options configures a Carousel. Zero values take the documented defaults.
type Options struct {
	// Scenes is the ordered scene sequence. At least one is required.
	Scenes []Scene

	// ActionableScene is an optional extra page after the last scene,
	// reachable through the shortcut button. It has no indicator and no
	// background color.
	ActionableScene SceneContent

	// MinSwipeDistance is the drag distance a release must exceed to change
	// scenes. 0 = DefaultMinSwipeDistance (50); negative is an error.
	MinSwipeDistance float64

	ActiveColor   Color // indicator highlight and button fill
	InactiveColor Color // idle indicator

	// EnableBackgroundTransition crossfades scene background colors behind
	// the scenes as the offset moves.
	EnableBackgroundTransition bool

	// ShowStatusBar keeps the platform status bar visible. It is hidden by
	// default. Has no effect on desktop hosts.
	ShowStatusBar bool

	NavigateButtonTitle          string // "Continue"
	NavigateButtonCompletedTitle string // "Completed"; shown on the last scene
	ActionableButtonTitle        string // "Skip to Get Started"

	// OnCompleted fires once per forward navigation from the last regular
	// scene. Nil is a no-op.
	OnCompleted func()

	// OnSceneChange fires after every index change.
	OnSceneChange func(from, to int)

	TransitionDuration float32        // seconds; 0 = 0.3, negative = instant
	Easing             ease.TweenFunc // nil = ease.OutCubic
	DragDeadZone       float64        // pixels; 0 = 4
	ClearColor         Color          // background when transitions are off; zero = white

	Logger *zap.Logger // nil = no logging
	Debug  bool        // per-frame timing logs at debug level
}

// withDefaults validates o and returns a copy with defaults filled in.
func (o Options) withDefaults() (Options, error) {
	if len(o.Scenes) == 0 {
		return o, ErrNoScenes
	}
	for i, s := range o.Scenes {
		if s.Content == nil {
			return o, fmt.Errorf("scene %d: %w", i, ErrNilContent)
		}
	}
	if o.MinSwipeDistance == 0 {
		o.MinSwipeDistance = DefaultMinSwipeDistance
	}
	if o.MinSwipeDistance < 0 || math.IsNaN(o.MinSwipeDistance) || math.IsInf(o.MinSwipeDistance, 0) {
		return o, fmt.Errorf("%w: got %v", ErrInvalidThreshold, o.MinSwipeDistance)
	}
	if o.ActiveColor.IsZero() {
		o.ActiveColor = DefaultActiveColor
	}
	if o.InactiveColor.IsZero() {
		o.InactiveColor = DefaultInactiveColor
	}
	if o.NavigateButtonTitle == "" {
		o.NavigateButtonTitle = DefaultNavigateButtonTitle
	}
	if o.NavigateButtonCompletedTitle == "" {
		o.NavigateButtonCompletedTitle = DefaultNavigateButtonCompletedTitle
	}
	if o.ActionableButtonTitle == "" {
		o.ActionableButtonTitle = DefaultActionableButtonTitle
	}
	if o.TransitionDuration == 0 {
		o.TransitionDuration = DefaultTransitionDuration
	}
	if o.Easing == nil {
		o.Easing = ease.OutCubic
	}
	if o.DragDeadZone <= 0 {
		o.DragDeadZone = DefaultDragDeadZone
	}
	if o.ClearColor.IsZero() {
		o.ClearColor = ColorWhite
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	o.Scenes = append([]Scene(nil), o.Scenes...)
	return o, nil
}
