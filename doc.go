// Package onboard is a swipeable, multi-scene onboarding carousel for
// [Ebitengine].
//
// A carousel shows a sequence of full-width scenes. Users move between them
// by swiping or by tapping the page indicators and the navigate button; the
// final "Completed" tap fires a callback. An optional actionable scene (for
// example a sign-up form) can follow the sequence and is reached through a
// shortcut link.
//
// # Quick start
//
//	carousel, err := onboard.NewCarousel(onboard.Options{
//		Scenes: []onboard.Scene{
//			{Content: welcome, BackgroundColor: onboard.MustParseHex("#3D5AFE")},
//			{Content: features, BackgroundColor: onboard.MustParseHex("#00BFA5")},
//		},
//		EnableBackgroundTransition: true,
//		OnCompleted: func() { entry.Reload() },
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	onboard.Run(carousel, onboard.RunConfig{Title: "Welcome"})
//
// # How it moves
//
// A single [AnimationValue] holds the horizontal offset. While a finger is
// down the offset follows it directly. On release the drag is reduced to an
// [Intent] by [Interpret] and the [Navigator] either advances, retreats, or
// recenters, tweening the offset (via [gween]) to the resting position
// index*width. A new navigation while a tween runs retargets it from the
// live value.
//
// Everything drawn is a pure function of that offset, computed by a
// [TransitionMapper]: the crossfaded background, each indicator's
// highlight, and a per-scene parallax value passed to [SceneContent.Draw].
//
// # Configuration files
//
// [LoadConfig] reads the scalar options and scene list from YAML. Scene
// content is resolved by name with [Config.Options].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package onboard
