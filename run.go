package onboard

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int // default 375
	Height    int // default 667
	Resizable bool
	ShowFPS   bool
}

const (
	defaultRunWidth  = 375
	defaultRunHeight = 667
)

// Run opens a window and runs game until the window closes or Update returns
// an error. game is typically a *Carousel or an *AppEntry.
func Run(game ebiten.Game, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = defaultRunWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultRunHeight
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		game = &fpsOverlay{Game: game}
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// fpsOverlay draws the current FPS and TPS over the wrapped game.
type fpsOverlay struct {
	ebiten.Game
}

func (f *fpsOverlay) Draw(screen *ebiten.Image) {
	f.Game.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
