// Package particle defines the two particle variants and their pure
// time-driven visual behavior. A Spec's randomized parameters are fixed at
// construction and never change; all variation over a particle's life
// comes from evaluating the spec at a progress fraction.
package particle

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avdva/burstfx/internal/timeline"
)

// DefaultLifetime is the fixed lifetime assigned to every particle.
const DefaultLifetime = 1500 * time.Millisecond

// Kind tags a particle variant.
type Kind uint8

const (
	// KindHeart drifts upward with a horizontal wobble.
	KindHeart Kind = iota
	// KindSpray shoots radially outward and spins in the tail of its life.
	KindSpray
)

// Vec is a 2-D offset in logical canvas units.
type Vec struct {
	X, Y float64
}

// Frame is the evaluated visual state of a particle at one progress value.
// Rotation is in degrees.
type Frame struct {
	Offset   Vec
	Opacity  float64
	Rotation float64
}

// Spec holds a variant tag plus the variant's immutable randomized
// parameters. Only the fields of the tagged variant are meaningful.
type Spec struct {
	Kind     Kind
	Lifetime time.Duration

	// Heart parameters.
	Amplitude        float64 // horizontal wobble, [-30, 30]
	VerticalDistance float64 // total upward drift, [50, 90]

	// Spray parameters.
	EndOffset Vec     // final radial position
	Hue       float64 // tint hue in degrees, [0, 360)
}

// NewHeart builds a heart-drift spec with randomized wobble amplitude and
// vertical travel.
func NewHeart(r *rand.Rand) Spec {
	return Spec{
		Kind:             KindHeart,
		Lifetime:         DefaultLifetime,
		Amplitude:        r.Float64()*60 - 30,
		VerticalDistance: 50 + r.Float64()*40,
	}
}

// NewSpray builds a radial-spray spec. The end offset is derived from a
// random angle in [0, 360)° and a random length in [25, 100).
func NewSpray(r *rand.Rand) Spec {
	angle := r.Float64() * 2 * math.Pi
	length := 25 + r.Float64()*75
	return Spec{
		Kind:     KindSpray,
		Lifetime: DefaultLifetime,
		EndOffset: Vec{
			X: math.Cos(angle) * length,
			Y: math.Sin(angle) * length,
		},
		Hue: r.Float64() * 360,
	}
}

// opacityKeys is shared by both variants: fade in fast, fade out slow.
var opacityKeys = []timeline.Key{
	{Target: 1, Duration: 0.2},
	{Target: 0, Duration: 0.8},
}

// Evaluate returns the keyframe-driven visual state at progress p.
// It is a pure function of the spec and p.
func (s Spec) Evaluate(p float64) Frame {
	opacity := timeline.Track{Keys: opacityKeys}.Value(p)

	switch s.Kind {
	case KindHeart:
		wobble := timeline.Track{Keys: []timeline.Key{
			{Target: s.Amplitude, Duration: 0.2},
			{Target: -0.8 * s.Amplitude, Duration: 0.3},
			{Target: 0.5 * s.Amplitude, Duration: 0.4},
		}}
		drift := timeline.Track{Keys: []timeline.Key{
			{Target: -s.VerticalDistance, Duration: 1.0},
		}}
		return Frame{
			Offset:  Vec{X: wobble.Value(p), Y: drift.Value(p)},
			Opacity: opacity,
		}
	case KindSpray:
		offsetX := timeline.Track{Keys: []timeline.Key{
			{Target: s.EndOffset.X, Duration: 1.0},
		}}
		offsetY := timeline.Track{Keys: []timeline.Key{
			{Target: s.EndOffset.Y, Duration: 1.0},
		}}
		spin := timeline.Track{Keys: []timeline.Key{
			{Target: 0, Duration: 0.7},
			{Target: 45, Duration: 0.3},
		}}
		return Frame{
			Offset:   Vec{X: offsetX.Value(p), Y: offsetY.Value(p)},
			Opacity:  opacity,
			Rotation: spin.Value(p),
		}
	}
	return Frame{}
}

// Oscillation is the extra horizontal motion a heart composes on top of
// its keyframe-driven drift. Zero for other variants.
func (s Spec) Oscillation(p float64) float64 {
	if s.Kind != KindHeart {
		return 0
	}
	return math.Sin(p*2*math.Pi) * s.Amplitude
}

// Draw stamps the resolved symbol onto dst at anchor (x, y) plus the
// particle's evaluated offset, with the evaluated opacity and rotation
// applied. Progress is clamped to [0, 1] for drawing.
func (s Spec) Draw(dst, symbol *ebiten.Image, p, x, y float64) {
	if symbol == nil {
		panic("particle: symbol not resolved before draw")
	}
	p = timeline.Clamp01(p)
	f := s.Evaluate(p)

	w := float64(symbol.Bounds().Dx())
	h := float64(symbol.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2) // rotate and place about the symbol center
	if f.Rotation != 0 {
		op.GeoM.Rotate(f.Rotation * math.Pi / 180)
	}
	op.GeoM.Translate(x+f.Offset.X+s.Oscillation(p), y+f.Offset.Y)

	if s.Kind == KindSpray {
		r, g, b := hsvToRGB(s.Hue, 0.8, 1.0)
		op.ColorScale.Scale(float32(r)/255, float32(g)/255, float32(b)/255, 1)
	}
	op.ColorScale.ScaleAlpha(float32(f.Opacity))

	dst.DrawImage(symbol, op)
}
