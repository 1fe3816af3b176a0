package onboard

import (
	"errors"
	"fmt"
	"math"
)

// Extrapolate selects how an interpolation behaves outside its input range.
type Extrapolate uint8

const (
	ExtrapolateExtend Extrapolate = iota // continue the first/last segment linearly
	ExtrapolateClamp                     // hold the first/last output value
)

var errBadRange = errors.New("onboard: invalid interpolation range")

// Interpolation is a piecewise-linear mapping from an input range to an
// output range. Input must be strictly increasing and the same length as
// Output.
type Interpolation struct {
	Input       []float64
	Output      []float64
	Extrapolate Extrapolate
}

// ColorInterpolation is a piecewise-linear mapping from an input range to
// colors. Colors are always clamped outside the input range.
type ColorInterpolation struct {
	Input  []float64
	Output []Color
}

// Validate checks that the range is usable.
func (ip Interpolation) Validate() error {
	return validateInput(ip.Input, len(ip.Output))
}

// Validate checks that the range is usable.
func (ci ColorInterpolation) Validate() error {
	return validateInput(ci.Input, len(ci.Output))
}

func validateInput(in []float64, outLen int) error {
	if len(in) == 0 {
		return fmt.Errorf("%w: empty input", errBadRange)
	}
	if len(in) != outLen {
		return fmt.Errorf("%w: %d inputs, %d outputs", errBadRange, len(in), outLen)
	}
	for i := 1; i < len(in); i++ {
		if !(in[i] > in[i-1]) {
			return fmt.Errorf("%w: input not strictly increasing at %d", errBadRange, i)
		}
	}
	return nil
}

// segment locates x within in. It returns the index of the segment's left
// control point and the fraction t in [0, 1] along it, or t outside [0, 1]
// when x lies beyond the ends. in must have at least two points.
func segment(in []float64, x float64) (int, float64) {
	n := len(in)
	i := 0
	switch {
	case x <= in[0]:
		i = 0
	case x >= in[n-1]:
		i = n - 2
	default:
		// Linear scan; carousels have a handful of control points.
		for i < n-2 && x > in[i+1] {
			i++
		}
	}
	return i, (x - in[i]) / (in[i+1] - in[i])
}

// At evaluates the mapping at x. Callers must Validate ranges built from
// untrusted data; At assumes a valid range.
func (ip Interpolation) At(x float64) float64 {
	if len(ip.Input) == 1 || math.IsNaN(x) {
		return ip.Output[0]
	}
	i, t := segment(ip.Input, x)
	if ip.Extrapolate == ExtrapolateClamp {
		if t <= 0 {
			return ip.Output[i]
		}
		if t >= 1 {
			return ip.Output[i+1]
		}
	}
	switch t {
	case 0:
		return ip.Output[i]
	case 1:
		return ip.Output[i+1]
	}
	return ip.Output[i] + (ip.Output[i+1]-ip.Output[i])*t
}

// At evaluates the color mapping at x, clamped at both ends.
func (ci ColorInterpolation) At(x float64) Color {
	if len(ci.Input) == 1 || math.IsNaN(x) {
		return ci.Output[0]
	}
	i, t := segment(ci.Input, x)
	return lerpColor(ci.Output[i], ci.Output[i+1], math.Max(0, math.Min(1, t)))
}
