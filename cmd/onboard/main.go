// Command onboard runs an onboarding carousel from a YAML config using the
// built-in demo scenes.
//
//	onboard --config onboarding.yaml --width 375 --height 667
//	onboard --script swipe.json --screenshots out/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/onboard"
	"github.com/phanxgames/onboard/internal/scenes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errCompleted stops the game loop once onboarding finishes.
var errCompleted = errors.New("onboarding completed")

type flags struct {
	config      string
	width       int
	height      int
	debug       bool
	fps         bool
	script      string
	screenshots string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "onboard",
		Short:        "Run a swipeable onboarding carousel",
		Long:         `Loads a carousel config, resolves scene names against the built-in demo scenes and opens a window.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(f)
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "path to a YAML carousel config (default: built-in demo)")
	fl.IntVar(&f.width, "width", 375, "window width")
	fl.IntVar(&f.height, "height", 667, "window height")
	fl.BoolVar(&f.debug, "debug", false, "enable debug logging and per-frame timing")
	fl.BoolVar(&f.fps, "fps", false, "show FPS overlay")
	fl.StringVar(&f.script, "script", "", "path to a JSON test script to drive the carousel")
	fl.StringVar(&f.screenshots, "screenshots", "screenshots", "directory for test script screenshots")
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(f flags) error {
	logger, err := newLogger(f.debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := scenes.Defaults()
	if f.config != "" {
		if cfg, err = onboard.LoadConfig(f.config); err != nil {
			return err
		}
	}

	opts, err := cfg.Options(scenes.Registry())
	if err != nil {
		return err
	}
	opts.Logger = logger
	opts.Debug = f.debug

	var carousel *onboard.Carousel
	completed := false
	opts.OnCompleted = func() {
		logger.Info("onboarding completed", zap.Int("scene", carousel.Navigator().Index()))
		completed = true
	}
	opts.OnSceneChange = func(from, to int) {
		logger.Info("scene changed", zap.Int("from", from), zap.Int("to", to))
	}

	carousel, err = onboard.NewCarousel(opts)
	if err != nil {
		return err
	}
	carousel.ScreenshotDir = f.screenshots

	var runner *onboard.TestRunner
	if f.script != "" {
		data, err := os.ReadFile(f.script)
		if err != nil {
			return fmt.Errorf("read test script: %w", err)
		}
		if runner, err = onboard.LoadTestScript(data); err != nil {
			return err
		}
		carousel.SetTestRunner(runner)
	}

	game := &session{Game: carousel, completed: &completed}
	if runner != nil {
		game.runner = runner
	}
	err = onboard.Run(game, onboard.RunConfig{
		Title:     "Onboarding",
		Width:     f.width,
		Height:    f.height,
		Resizable: true,
		ShowFPS:   f.fps,
	})
	if errors.Is(err, errCompleted) || errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if runner != nil {
		for _, msg := range runner.Failures() {
			logger.Error("test script", zap.String("failure", msg))
		}
		if n := len(runner.Failures()); n > 0 && err == nil {
			err = fmt.Errorf("test script: %d failed expectations", n)
		}
	}
	return err
}

// session ends the game loop when onboarding completes or the test script
// finishes. A finished script gets one more Draw so screenshots queued by its
// last step are written.
type session struct {
	ebiten.Game
	completed *bool
	runner    interface{ Done() bool }
	flushed   bool
}

func (s *session) Update() error {
	if err := s.Game.Update(); err != nil {
		return err
	}
	if *s.completed {
		return errCompleted
	}
	if s.flushed {
		return ebiten.Termination
	}
	return nil
}

func (s *session) Draw(screen *ebiten.Image) {
	s.Game.Draw(screen)
	if s.runner != nil && s.runner.Done() {
		s.flushed = true
	}
}
