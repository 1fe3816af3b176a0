package onboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationValue is a single continuously observable scalar, used by the
// carousel as its horizontal scroll offset. It is driven either by direct
// assignment (drag passthrough) or by a gween tween toward a target.
//
// There is no global animation manager; the owner calls Update each tick.
type AnimationValue struct {
	value  float64
	target float64
	tween  *gween.Tween
	onDone func()

	listeners []valueListener
	nextID    uint32
}

type valueListener struct {
	id uint32
	fn func(float64)
}

// ListenerHandle allows removing a registered change listener.
type ListenerHandle struct {
	id uint32
	v  *AnimationValue
}

// Remove unregisters the listener so it no longer fires.
func (h ListenerHandle) Remove() {
	if h.v == nil {
		return
	}
	s := h.v.listeners
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = valueListener{}
			h.v.listeners = s[:len(s)-1]
			return
		}
	}
}

// NewAnimationValue creates a value resting at v.
func NewAnimationValue(v float64) *AnimationValue {
	return &AnimationValue{value: v, target: v}
}

// Value returns the current value.
func (v *AnimationValue) Value() float64 {
	return v.value
}

// Target returns the value the animation is heading toward, or the current
// value when idle.
func (v *AnimationValue) Target() float64 {
	return v.target
}

// Animating reports whether a tween is in progress.
func (v *AnimationValue) Animating() bool {
	return v.tween != nil
}

// AddListener registers fn to be called with the new value whenever it
// changes.
func (v *AnimationValue) AddListener(fn func(float64)) ListenerHandle {
	v.nextID++
	v.listeners = append(v.listeners, valueListener{id: v.nextID, fn: fn})
	return ListenerHandle{id: v.nextID, v: v}
}

// Set assigns x immediately, cancelling any running animation without
// firing its completion callback. Safe to call every frame.
func (v *AnimationValue) Set(x float64) {
	v.tween = nil
	v.onDone = nil
	v.target = x
	v.write(x)
}

// AnimateTo tweens from the current value to `to` over duration seconds.
// A call while another animation is running retargets it: the new tween
// starts from the live value and the previous onDone is dropped. A
// non-positive duration assigns immediately and fires onDone.
func (v *AnimationValue) AnimateTo(to float64, duration float32, fn ease.TweenFunc, onDone func()) {
	if fn == nil {
		fn = ease.Linear
	}
	v.target = to
	v.onDone = onDone
	if duration <= 0 || v.value == to {
		v.tween = nil
		v.write(to)
		v.complete()
		return
	}
	v.tween = gween.New(float32(v.value), float32(to), duration, fn)
}

// Update advances the running animation by dt seconds. When the tween
// finishes the value is exactly the target and onDone fires once.
func (v *AnimationValue) Update(dt float32) {
	if v.tween == nil {
		return
	}
	cur, finished := v.tween.Update(dt)
	if finished {
		v.tween = nil
		v.write(v.target)
		v.complete()
		return
	}
	v.write(float64(cur))
}

// Finish jumps a running animation to its target and fires its completion
// callback. No-op when idle.
func (v *AnimationValue) Finish() {
	if v.tween == nil {
		return
	}
	v.tween = nil
	v.write(v.target)
	v.complete()
}

// Interpolate maps the current value through ip.
func (v *AnimationValue) Interpolate(ip Interpolation) float64 {
	return ip.At(v.value)
}

// InterpolateColor maps the current value through ci.
func (v *AnimationValue) InterpolateColor(ci ColorInterpolation) Color {
	return ci.At(v.value)
}

func (v *AnimationValue) write(x float64) {
	if x == v.value {
		return
	}
	v.value = x
	for _, l := range v.listeners {
		l.fn(x)
	}
}

func (v *AnimationValue) complete() {
	done := v.onDone
	v.onDone = nil
	if done != nil {
		done()
	}
}
