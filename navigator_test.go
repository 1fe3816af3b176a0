package onboard

import (
	"errors"
	"math"
	"testing"
)

const testWidth = 100.0

func newTestNavigator(t *testing.T, scenes int, actionable bool) (*Navigator, *int) {
	t.Helper()
	completed := new(int)
	n, err := NewNavigator(NavigatorConfig{
		SceneCount:       scenes,
		HasActionable:    actionable,
		UnitWidth:        testWidth,
		MinSwipeDistance: 50,
		OnCompleted:      func() { *completed++ },
	})
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return n, completed
}

// settle runs the offset animation to completion.
func settle(n *Navigator) {
	n.Update(1)
}

func TestNavigatorInitialState(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	if n.Index() != 0 {
		t.Errorf("Index = %d, want 0", n.Index())
	}
	if n.Offset() != 0 {
		t.Errorf("Offset = %v, want 0", n.Offset())
	}
	if n.IsAtLastScene() {
		t.Error("should not be at last scene")
	}
	if n.Len() != 3 || n.SceneCount() != 3 {
		t.Errorf("Len = %d, SceneCount = %d, want 3, 3", n.Len(), n.SceneCount())
	}
}

func TestNavigatorSingleSceneIsLast(t *testing.T) {
	n, completed := newTestNavigator(t, 1, false)
	if !n.IsAtLastScene() {
		t.Error("single scene should be the last scene")
	}
	n.Next()
	if *completed != 1 {
		t.Errorf("completed = %d, want 1", *completed)
	}
}

func TestNavigatorJumpToEveryIndex(t *testing.T) {
	for _, actionable := range []bool{false, true} {
		n, _ := newTestNavigator(t, 3, actionable)
		for i := 0; i < n.Len(); i++ {
			n.JumpTo(i)
			settle(n)
			if n.Index() != i {
				t.Errorf("actionable=%v: Index = %d, want %d", actionable, n.Index(), i)
			}
			if want := float64(i) * testWidth; n.Offset() != want {
				t.Errorf("actionable=%v: Offset = %v, want %v", actionable, n.Offset(), want)
			}
			if n.IsAtLastScene() != (i == 2) {
				t.Errorf("actionable=%v: IsAtLastScene at %d = %v", actionable, i, n.IsAtLastScene())
			}
		}
	}
}

func TestNavigatorJumpToSameIndexIsNoop(t *testing.T) {
	changes := 0
	n, err := NewNavigator(NavigatorConfig{
		SceneCount:    3,
		UnitWidth:     testWidth,
		OnSceneChange: func(from, to int) { changes++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	n.JumpTo(0)
	if changes != 0 {
		t.Errorf("OnSceneChange fired %d times, want 0", changes)
	}
	if n.Animating() {
		t.Error("jump to current index should not animate")
	}
}

func TestNavigatorJumpToClamps(t *testing.T) {
	n, _ := newTestNavigator(t, 3, true)
	n.JumpTo(99)
	if n.Index() != 3 {
		t.Errorf("Index = %d, want 3 (clamped)", n.Index())
	}
	n.JumpTo(-5)
	if n.Index() != 0 {
		t.Errorf("Index = %d, want 0 (clamped)", n.Index())
	}
}

func TestNavigatorSceneChangeCallback(t *testing.T) {
	var got [][2]int
	n, err := NewNavigator(NavigatorConfig{
		SceneCount:    3,
		UnitWidth:     testWidth,
		OnSceneChange: func(from, to int) { got = append(got, [2]int{from, to}) },
	})
	if err != nil {
		t.Fatal(err)
	}
	n.Next()
	n.JumpTo(2)
	n.Previous()
	want := [][2]int{{0, 1}, {1, 2}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNavigatorResolveGesture(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)

	if got := n.ResolveGesture(-60); got != IntentAdvance {
		t.Errorf("intent = %v, want advance", got)
	}
	if n.Index() != 1 {
		t.Errorf("Index = %d, want 1", n.Index())
	}

	for _, dx := range []float64{-49, 0, 30, 50, -50} {
		if got := n.ResolveGesture(dx); got != IntentRecenter {
			t.Errorf("ResolveGesture(%v) = %v, want recenter", dx, got)
		}
		if n.Index() != 1 {
			t.Errorf("ResolveGesture(%v): Index = %d, want 1", dx, n.Index())
		}
	}

	if got := n.ResolveGesture(60); got != IntentRetreat {
		t.Errorf("intent = %v, want retreat", got)
	}
	if n.Index() != 0 {
		t.Errorf("Index = %d, want 0", n.Index())
	}
}

func TestNavigatorRecenterIdempotent(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	n.JumpTo(1)
	settle(n)
	n.Drag(20)

	n.Recenter()
	settle(n)
	idx, off := n.Index(), n.Offset()
	n.Recenter()
	settle(n)

	if n.Index() != idx || n.Offset() != off {
		t.Errorf("after second recenter: (%d, %v), want (%d, %v)", n.Index(), n.Offset(), idx, off)
	}
	if off != testWidth {
		t.Errorf("Offset = %v, want %v", off, testWidth)
	}
}

func TestNavigatorNextAtLastFiresCompletedOnce(t *testing.T) {
	n, completed := newTestNavigator(t, 3, false)
	n.JumpTo(2)
	settle(n)

	n.Next()
	if *completed != 1 {
		t.Errorf("completed = %d, want 1", *completed)
	}
	if n.Index() != 2 {
		t.Errorf("Index = %d, want 2", n.Index())
	}

	n.Next()
	if *completed != 2 {
		t.Errorf("completed = %d, want 2 (once per call)", *completed)
	}
}

func TestNavigatorNilCompletedIsNoop(t *testing.T) {
	n, err := NewNavigator(NavigatorConfig{SceneCount: 2, UnitWidth: testWidth})
	if err != nil {
		t.Fatal(err)
	}
	n.JumpTo(1)
	n.Next()
	if n.Index() != 1 {
		t.Errorf("Index = %d, want 1", n.Index())
	}
}

func TestNavigatorPreviousAtFirst(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	n.Drag(-20)
	n.Previous()
	settle(n)
	if n.Index() != 0 {
		t.Errorf("Index = %d, want 0", n.Index())
	}
	if n.Offset() != 0 {
		t.Errorf("Offset = %v, want 0", n.Offset())
	}
}

func TestNavigatorThreeSceneScenario(t *testing.T) {
	n, completed := newTestNavigator(t, 3, false)

	n.ResolveGesture(-60)
	if n.Index() != 1 {
		t.Fatalf("step 1: Index = %d, want 1", n.Index())
	}
	n.ResolveGesture(-60)
	if n.Index() != 2 {
		t.Fatalf("step 2: Index = %d, want 2", n.Index())
	}
	n.ResolveGesture(-60)
	if n.Index() != 2 || *completed != 1 {
		t.Fatalf("step 3: Index = %d, completed = %d, want 2, 1", n.Index(), *completed)
	}
	if got := n.ResolveGesture(30); got != IntentRecenter {
		t.Errorf("step 4: intent = %v, want recenter", got)
	}
	if n.Index() != 2 || *completed != 1 {
		t.Errorf("step 4: Index = %d, completed = %d, want 2, 1", n.Index(), *completed)
	}
	settle(n)
	if n.Offset() != 2*testWidth {
		t.Errorf("Offset = %v, want %v", n.Offset(), 2*testWidth)
	}
}

func TestNavigatorActionableScenario(t *testing.T) {
	n, completed := newTestNavigator(t, 2, true)
	if n.Len() != 3 {
		t.Fatalf("Len = %d, want 3", n.Len())
	}

	n.JumpTo(2)
	if n.Index() != 2 {
		t.Fatalf("Index = %d, want 2", n.Index())
	}
	if n.IsAtLastScene() {
		t.Error("actionable scene must not be the last scene")
	}
	if !n.IsOnActionable() {
		t.Error("expected IsOnActionable")
	}

	// Next from the actionable scene recenters without completing.
	n.Next()
	if n.Index() != 2 || *completed != 0 {
		t.Errorf("Next on actionable: Index = %d, completed = %d, want 2, 0", n.Index(), *completed)
	}
	settle(n)
	if n.Offset() != 2*testWidth {
		t.Errorf("Offset = %v, want %v", n.Offset(), 2*testWidth)
	}

	// Back to the last regular scene, where Next completes.
	n.Previous()
	if n.Index() != 1 || !n.IsAtLastScene() {
		t.Fatalf("Previous: Index = %d, IsAtLastScene = %v", n.Index(), n.IsAtLastScene())
	}
	n.Next()
	if *completed != 1 || n.Index() != 1 {
		t.Errorf("Next at last: completed = %d, Index = %d, want 1, 1", *completed, n.Index())
	}
}

func TestNavigatorDragPassthrough(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	n.BeginDrag()
	n.Drag(-30)
	if n.Offset() != 30 {
		t.Errorf("Offset = %v, want 30", n.Offset())
	}
	n.Drag(-70)
	if n.Offset() != 70 {
		t.Errorf("Offset = %v, want 70", n.Offset())
	}
	if d := n.Displacement(); d != -70 {
		t.Errorf("Displacement = %v, want -70", d)
	}

	if got := n.EndDrag(); got != IntentAdvance {
		t.Errorf("EndDrag = %v, want advance", got)
	}
	if n.Dragging() {
		t.Error("still dragging after EndDrag")
	}
	settle(n)
	if n.Index() != 1 || n.Offset() != testWidth {
		t.Errorf("(Index, Offset) = (%d, %v), want (1, %v)", n.Index(), n.Offset(), testWidth)
	}
}

func TestNavigatorShortDragRecenters(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	n.Drag(-40)
	if got := n.EndDrag(); got != IntentRecenter {
		t.Errorf("EndDrag = %v, want recenter", got)
	}
	settle(n)
	if n.Index() != 0 || n.Offset() != 0 {
		t.Errorf("(Index, Offset) = (%d, %v), want (0, 0)", n.Index(), n.Offset())
	}
}

func TestNavigatorDragDuringAnimationHasNoJump(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	n.JumpTo(1)
	n.Update(0.1)
	mid := n.Offset()
	if mid <= 0 || mid >= testWidth {
		t.Fatalf("mid-animation offset = %v, want in (0, %v)", mid, testWidth)
	}

	n.BeginDrag()
	if n.Offset() != mid {
		t.Errorf("Offset after BeginDrag = %v, want %v", n.Offset(), mid)
	}
	if n.Animating() {
		t.Error("BeginDrag should stop the animation")
	}
	n.Drag(10)
	if n.Offset() != mid-10 {
		t.Errorf("Offset = %v, want %v", n.Offset(), mid-10)
	}
}

func TestNavigatorRetargetIsMonotonic(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	n.JumpTo(1)
	n.Update(0.1)
	prev := n.Offset()

	n.JumpTo(2)
	if n.Offset() != prev {
		t.Fatalf("retarget jumped from %v to %v", prev, n.Offset())
	}
	for i := 0; i < 30; i++ {
		n.Update(1.0 / 60)
		if n.Offset() < prev {
			t.Fatalf("offset moved backwards: %v -> %v", prev, n.Offset())
		}
		prev = n.Offset()
	}
	settle(n)
	if n.Offset() != 2*testWidth {
		t.Errorf("Offset = %v, want %v", n.Offset(), 2*testWidth)
	}
}

func TestNavigatorSetUnitWidthSnaps(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	n.JumpTo(2)
	n.SetUnitWidth(320)
	if n.Offset() != 640 {
		t.Errorf("Offset = %v, want 640", n.Offset())
	}
	if n.Animating() {
		t.Error("resize should stop the animation")
	}
}

func TestNavigatorOffsetListener(t *testing.T) {
	n, _ := newTestNavigator(t, 3, false)
	var seen []float64
	h := n.AddOffsetListener(func(v float64) { seen = append(seen, v) })
	n.Drag(-10)
	n.Drag(-20)
	h.Remove()
	n.Drag(-30)
	if len(seen) != 2 || seen[0] != 10 || seen[1] != 20 {
		t.Errorf("seen = %v, want [10 20]", seen)
	}
}

func TestNewNavigatorErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  NavigatorConfig
		want error
	}{
		{"no scenes", NavigatorConfig{}, ErrNoScenes},
		{"negative threshold", NavigatorConfig{SceneCount: 1, MinSwipeDistance: -1}, ErrInvalidThreshold},
		{"nan threshold", NavigatorConfig{SceneCount: 1, MinSwipeDistance: math.NaN()}, ErrInvalidThreshold},
		{"infinite threshold", NavigatorConfig{SceneCount: 1, MinSwipeDistance: math.Inf(1)}, ErrInvalidThreshold},
		{"negative width", NavigatorConfig{SceneCount: 1, UnitWidth: -1}, ErrInvalidWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNavigator(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewNavigatorDefaultThreshold(t *testing.T) {
	n, err := NewNavigator(NavigatorConfig{SceneCount: 2})
	if err != nil {
		t.Fatal(err)
	}
	if n.Threshold() != DefaultMinSwipeDistance {
		t.Errorf("Threshold = %v, want %v", n.Threshold(), DefaultMinSwipeDistance)
	}
}
