package effect

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures one effect attachment site.
type Options struct {
	// Count is the number of particles spawned per burst.
	Count int
	// CanvasWidth and CanvasHeight bound the effect region in logical units.
	CanvasWidth  int
	CanvasHeight int
	// MaxJitter bounds the per-particle random start delay.
	MaxJitter time.Duration
}

// DefaultOptions matches the stock effect: 30 particles on a 200×200 canvas.
func DefaultOptions() Options {
	return Options{
		Count:        30,
		CanvasWidth:  200,
		CanvasHeight: 200,
		MaxJitter:    DefaultMaxJitter,
	}
}

type drawCmd struct {
	inst     Instance
	progress float64
}

// View composes a pool and driver for one attachment site. The host calls
// Burst on trigger, Update once per frame, and Draw during its draw pass.
// All methods must run on the host's single update/render goroutine.
type View struct {
	opts    Options
	pool    *Pool
	driver  *Driver
	factory Factory

	symbol *ebiten.Image
	canvas *ebiten.Image
	cmds   []drawCmd
}

// NewView builds a view spawning specs from factory and stamping symbol.
// The symbol may be replaced later with SetSymbol, but must be resolved
// before the first draw pass with live particles.
func NewView(opts Options, factory Factory, symbol *ebiten.Image, rng *rand.Rand) *View {
	pool := NewPool(rng, opts.MaxJitter)
	return &View{
		opts:    opts,
		pool:    pool,
		driver:  NewDriver(pool),
		factory: factory,
		symbol:  symbol,
	}
}

// SetSymbol swaps the stamped symbol, e.g. for a user-supplied image.
func (v *View) SetSymbol(symbol *ebiten.Image) { v.symbol = symbol }

// SetCount changes the number of particles per burst.
func (v *View) SetCount(n int) { v.opts.Count = n }

// Paused reports whether the view's driver is idle.
func (v *View) Paused() bool { return v.driver.Paused() }

// Len returns the live particle count, jittered not-yet-due ones included.
func (v *View) Len() int { return v.pool.Len() }

// Burst spawns one full batch at now and resumes the driver.
func (v *View) Burst(now time.Time) {
	v.pool.SpawnBatch(now, v.opts.Count, v.factory)
	v.driver.NotifySpawn()
}

// Update runs one advance/reap pass and records the frame's draw commands.
// A no-op while the driver is paused.
func (v *View) Update(now time.Time) {
	v.cmds = v.cmds[:0]
	v.driver.Tick(now, func(in Instance, p float64) {
		v.cmds = append(v.cmds, drawCmd{inst: in, progress: p})
	})
}

// Draw renders the last Update's particles onto dst with the effect canvas
// anchored bottom-center at (x, y). Drawing with live particles and no
// resolved symbol is a broken host integration and panics.
func (v *View) Draw(dst *ebiten.Image, x, y float64) {
	if len(v.cmds) == 0 {
		return
	}
	if v.symbol == nil {
		panic("effect: symbol not resolved before draw pass")
	}
	if v.canvas == nil {
		v.canvas = ebiten.NewImage(v.opts.CanvasWidth, v.opts.CanvasHeight)
	}
	v.canvas.Clear()

	// Particles originate at the bottom-center of the effect region.
	originX := float64(v.opts.CanvasWidth) / 2
	originY := float64(v.opts.CanvasHeight) - float64(v.symbol.Bounds().Dy())/2
	for _, c := range v.cmds {
		c.inst.Spec.Draw(v.canvas, v.symbol, c.progress, originX, originY)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-originX, y-float64(v.opts.CanvasHeight))
	dst.DrawImage(v.canvas, op)
}
