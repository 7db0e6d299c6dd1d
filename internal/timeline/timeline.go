// Package timeline evaluates piecewise cubic keyframe curves.
//
// A Track is plain data: an initial value followed by an ordered list of
// keys, each key giving a target value and the fraction of the total
// lifetime spent easing toward it. Evaluation is a pure function of the
// track and a progress value, so the same track can drive any number of
// particles concurrently.
package timeline

// Key is one leg of a piecewise curve: ease from the previous value to
// Target over Duration, where Duration is a fraction of total lifetime.
type Key struct {
	Target   float64
	Duration float64
}

// Track is an independent property curve. Segments are evaluated
// cumulatively: key i covers [sum(dur<i), sum(dur<i)+dur_i). Progress past
// the last key holds the final target.
type Track struct {
	Start float64
	Keys  []Key
}

// Value returns the interpolated value at progress p. p is the wall-clock
// fraction of the particle's lifetime, not re-normalized per segment.
func (t Track) Value(p float64) float64 {
	from := t.Start
	elapsed := 0.0
	for _, k := range t.Keys {
		if k.Duration > 0 && p < elapsed+k.Duration {
			return lerp(from, k.Target, easeInOutCubic((p-elapsed)/k.Duration))
		}
		from = k.Target
		elapsed += k.Duration
	}
	// Past the covered range: hold the last target (or Start for an
	// empty track). No extrapolation.
	return from
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeInOutCubic maps a local segment fraction in [0,1] onto a cubic
// ease-in/ease-out curve.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Clamp01 clamps a progress value into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
