package onboard

// TransitionMapper derives every visual feedback value from the carousel
// offset. All mappings are continuous in the offset, so visuals track the
// finger during a drag as well as the settle animation afterwards.
//
// Control points are precomputed per unit width; evaluation does not
// allocate.
type TransitionMapper struct {
	unitWidth   float64
	backgrounds []Color
	active      Color
	inactive    Color

	background ColorInterpolation
	indicators []ColorInterpolation
	parallax   []Interpolation
}

// NewTransitionMapper builds a mapper for the given per-scene background
// colors (one per regular scene; the actionable scene has none).
func NewTransitionMapper(backgrounds []Color, active, inactive Color, unitWidth float64) *TransitionMapper {
	m := &TransitionMapper{
		backgrounds: append([]Color(nil), backgrounds...),
		active:      active,
		inactive:    inactive,
	}
	m.SetUnitWidth(unitWidth)
	return m
}

// UnitWidth returns the width the control points were built for.
func (m *TransitionMapper) UnitWidth() float64 { return m.unitWidth }

// SetUnitWidth rebuilds the control points for a new scene width.
func (m *TransitionMapper) SetUnitWidth(w float64) {
	m.unitWidth = w
	n := len(m.backgrounds)

	// A zero width collapses every control point onto 0, which would make
	// the ranges non-increasing. Use a unit width of 1 until layout.
	if w <= 0 {
		w = 1
	}

	in := make([]float64, n)
	for i := range in {
		in[i] = float64(i) * w
	}
	m.background = ColorInterpolation{Input: in, Output: m.backgrounds}

	m.indicators = make([]ColorInterpolation, n)
	m.parallax = make([]Interpolation, n)
	for i := 0; i < n; i++ {
		start := float64(i) * w
		m.indicators[i] = ColorInterpolation{
			Input:  []float64{start - w/2, start, start + w/2},
			Output: []Color{m.inactive, m.active, m.inactive},
		}
		m.parallax[i] = Interpolation{
			Input:       []float64{start, start + w},
			Output:      []float64{0, w},
			Extrapolate: ExtrapolateExtend,
		}
	}
}

// BackgroundColor returns the crossfaded background at offset: exactly
// scenes[i].BackgroundColor at i*unitWidth, blended in between, clamped to
// the first and last scene outside the range.
func (m *TransitionMapper) BackgroundColor(offset float64) Color {
	if len(m.backgrounds) == 0 {
		return Color{}
	}
	return m.background.At(offset)
}

// IndicatorColor returns the highlight for indicator i: active when the
// offset rests on scene i, fading to inactive half a scene away.
func (m *TransitionMapper) IndicatorColor(i int, offset float64) Color {
	if i < 0 || i >= len(m.indicators) {
		return m.inactive
	}
	return m.indicators[i].At(offset)
}

// Parallax returns the animation input handed to scene i's content: 0 when
// the scene is centered, growing linearly to unitWidth as the next scene
// arrives, and negative while the previous scene is shown. Scenes without
// a control range (the actionable scene) get 0.
func (m *TransitionMapper) Parallax(i int, offset float64) float64 {
	if i < 0 || i >= len(m.parallax) {
		return 0
	}
	return m.parallax[i].At(offset)
}
