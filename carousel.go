package onboard

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// Carousel is a swipeable onboarding carousel. It implements ebiten.Game and
// can be run directly with Run, or embedded by calling Update, Draw and
// Layout from a host game.
//
// The carousel owns no navigation policy: drags and taps are forwarded to
// its Navigator, and every visual is derived from the navigator's offset
// through a TransitionMapper.
type Carousel struct {
	opts   Options
	nav    *Navigator
	mapper *TransitionMapper
	log    *zap.Logger

	width, height int
	controls      []control
	pages         [2]*ebiten.Image
	face          text.Face

	// Input state
	pointers    [maxPointers]pointerState
	owner       int
	touchActive bool
	touchID     ebiten.TouchID
	touchIDs    []ebiten.TouchID
	justTouched []ebiten.TouchID

	// Test tooling
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	debug bool
}

// NewCarousel validates opts and creates a carousel resting on the first
// scene. Configuration errors (no scenes, nil content, bad threshold) are
// returned rather than deferred to the first frame.
func NewCarousel(opts Options) (*Carousel, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	nav, err := NewNavigator(NavigatorConfig{
		SceneCount:         len(o.Scenes),
		HasActionable:      o.ActionableScene != nil,
		MinSwipeDistance:   o.MinSwipeDistance,
		TransitionDuration: o.TransitionDuration,
		Easing:             o.Easing,
		OnCompleted:        o.OnCompleted,
		OnSceneChange:      o.OnSceneChange,
		Logger:             o.Logger,
	})
	if err != nil {
		return nil, err
	}

	backgrounds := make([]Color, len(o.Scenes))
	for i, s := range o.Scenes {
		backgrounds[i] = s.BackgroundColor
	}

	c := &Carousel{
		opts:          o,
		nav:           nav,
		mapper:        NewTransitionMapper(backgrounds, o.ActiveColor, o.InactiveColor, 0),
		log:           o.Logger.Named("onboard"),
		owner:         noPointer,
		face:          text.NewGoXFace(basicfont.Face7x13),
		ScreenshotDir: "screenshots",
		debug:         o.Debug,
	}
	c.log.Debug("carousel created",
		zap.Int("scenes", nav.SceneCount()),
		zap.Bool("actionable", nav.HasActionable()),
		zap.Float64("threshold", nav.Threshold()))
	return c, nil
}

// Navigator returns the carousel's state machine, for programmatic
// navigation and inspection.
func (c *Carousel) Navigator() *Navigator { return c.nav }

// Mapper returns the transition mapper driving the carousel's visuals.
func (c *Carousel) Mapper() *TransitionMapper { return c.mapper }

// StatusBarHidden reports whether the host should hide the platform status
// bar while the carousel is shown.
func (c *Carousel) StatusBarHidden() bool { return !c.opts.ShowStatusBar }

// NavigateTitle returns the current navigate button title.
func (c *Carousel) NavigateTitle() string {
	if c.nav.IsAtLastScene() {
		return c.opts.NavigateButtonCompletedTitle
	}
	return c.opts.NavigateButtonTitle
}

// Layout implements ebiten.Game. The carousel fills the outside size; the
// viewport width becomes the scene unit width.
func (c *Carousel) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// resize applies a new viewport size to the navigator, the mapper and the
// control layout.
func (c *Carousel) resize(w, h int) {
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.nav.SetUnitWidth(float64(w))
	c.mapper.SetUnitWidth(float64(w))
	c.layoutControls()
	for i, p := range c.pages {
		if p != nil {
			p.Deallocate()
			c.pages[i] = nil
		}
	}
}

// Update implements ebiten.Game: runs the test script, processes input,
// advances the offset animation and ticks scene content.
func (c *Carousel) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInput()
	c.nav.Update(float32(dt))
	c.updateScenes(dt)

	if c.debug {
		c.debugUpdate(time.Since(t0))
	}
	return nil
}

func (c *Carousel) updateScenes(dt float64) {
	for _, s := range c.opts.Scenes {
		if u, ok := s.Content.(SceneUpdater); ok {
			u.Update(dt)
		}
	}
	if u, ok := c.opts.ActionableScene.(SceneUpdater); ok {
		u.Update(dt)
	}
}

// sceneContent returns the content shown at navigable index i.
func (c *Carousel) sceneContent(i int) SceneContent {
	if i < len(c.opts.Scenes) {
		return c.opts.Scenes[i].Content
	}
	return c.opts.ActionableScene
}
