package onboard

import "math"

// Intent is the navigation decision derived from a released drag.
type Intent uint8

const (
	IntentRecenter Intent = iota // not swiped far enough; snap back
	IntentAdvance                // go to the next scene
	IntentRetreat                // go to the previous scene
)

// String returns the lowercase intent name.
func (i Intent) String() string {
	switch i {
	case IntentAdvance:
		return "advance"
	case IntentRetreat:
		return "retreat"
	default:
		return "recenter"
	}
}

// DefaultMinSwipeDistance is the drag distance, in pixels, a release must
// exceed to change scenes.
const DefaultMinSwipeDistance = 50.0

// Interpret converts a released drag into an Intent.
//
// dx is the pointer's horizontal displacement from the last committed scene
// position, in screen pixels. Moving the finger left (dx < 0) pulls the next
// scene into view, so dx < -threshold advances and dx > threshold retreats.
// Displacements of exactly ±threshold, or NaN, recenter.
func Interpret(dx, threshold float64) Intent {
	switch {
	case math.IsNaN(dx):
		return IntentRecenter
	case dx < -threshold:
		return IntentAdvance
	case dx > threshold:
		return IntentRetreat
	default:
		return IntentRecenter
	}
}
