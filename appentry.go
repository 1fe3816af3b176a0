package onboard

import "github.com/hajimehoshi/ebiten/v2"

// AppEntry is the top-level switch between the onboarding flow and the main
// application. The choice is made on the first Update and re-evaluated after
// Reload, typically from the carousel's OnCompleted callback:
//
//	entry := &onboard.AppEntry{App: app, IsOnboardingCompleted: store.Done}
//	carousel, _ := onboard.NewCarousel(onboard.Options{
//		Scenes:      scenes,
//		OnCompleted: func() { store.MarkDone(); entry.Reload() },
//	})
//	entry.Onboarding = carousel
type AppEntry struct {
	App        ebiten.Game
	Onboarding ebiten.Game

	// IsOnboardingCompleted selects App when it returns true. Nil means
	// completed.
	IsOnboardingCompleted func() bool

	active ebiten.Game
	fresh  bool
	w, h   int
}

// Reload re-evaluates IsOnboardingCompleted before the next Update.
func (e *AppEntry) Reload() {
	e.active = nil
}

// Active returns the game currently receiving Update and Draw.
func (e *AppEntry) Active() ebiten.Game {
	if e.active == nil {
		e.active = e.choose()
		e.fresh = true
	}
	return e.active
}

func (e *AppEntry) choose() ebiten.Game {
	if e.IsOnboardingCompleted == nil || e.IsOnboardingCompleted() {
		return e.App
	}
	return e.Onboarding
}

// Update implements ebiten.Game.
func (e *AppEntry) Update() error {
	g := e.Active()
	if g == nil {
		return nil
	}
	if e.fresh && e.w > 0 && e.h > 0 {
		// Give a newly activated game its size before its first Update.
		g.Layout(e.w, e.h)
	}
	e.fresh = false
	return g.Update()
}

// Draw implements ebiten.Game.
func (e *AppEntry) Draw(screen *ebiten.Image) {
	if g := e.Active(); g != nil {
		g.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (e *AppEntry) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.w, e.h = outsideWidth, outsideHeight
	if g := e.Active(); g != nil {
		return g.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
