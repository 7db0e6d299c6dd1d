// Package effect manages the lifecycle of spawned particles: the pool that
// owns live instances, the frame driver that pauses itself while the pool
// is empty, the trigger watcher that converts value changes into spawn
// batches, and the view that composes them for one attachment site.
package effect

import (
	"math/rand"
	"time"

	"github.com/avdva/burstfx/internal/particle"
)

// DefaultMaxJitter bounds the random start delay added to each spawned
// particle so a batch does not pop in all at once.
const DefaultMaxJitter = time.Second

// Factory produces a fresh randomized spec for one particle.
type Factory func() particle.Spec

// Instance is one live particle: an immutable spec plus its jittered start
// time. Instances are never mutated after spawn; only pool membership
// changes.
type Instance struct {
	Spec  particle.Spec
	Start time.Time
}

// Due reports whether the instance's jitter delay has elapsed.
func (in Instance) Due(now time.Time) bool {
	return !now.Before(in.Start)
}

// Expired reports whether the instance has reached the end of its
// lifetime. Expiry is strict: a particle at exactly progress 1 is expired.
func (in Instance) Expired(now time.Time) bool {
	return !now.Before(in.Start.Add(in.Spec.Lifetime))
}

// Progress returns the fraction of the lifetime elapsed at now. Valid only
// once the instance is due.
func (in Instance) Progress(now time.Time) float64 {
	return float64(now.Sub(in.Start)) / float64(in.Spec.Lifetime)
}

// Pool exclusively owns the currently-alive particle instances of one
// effect attachment site.
type Pool struct {
	members   []Instance
	rng       *rand.Rand
	maxJitter time.Duration
}

// NewPool builds a pool drawing start-delay jitter from rng.
func NewPool(rng *rand.Rand, maxJitter time.Duration) *Pool {
	if maxJitter < 0 {
		maxJitter = 0
	}
	return &Pool{rng: rng, maxJitter: maxJitter}
}

// SpawnBatch appends count new instances, each with a fresh spec from
// factory and a start time of now plus random jitter in [0, maxJitter).
func (p *Pool) SpawnBatch(now time.Time, count int, factory Factory) {
	for i := 0; i < count; i++ {
		jitter := time.Duration(p.rng.Float64() * float64(p.maxJitter))
		p.members = append(p.members, Instance{
			Spec:  factory(),
			Start: now.Add(jitter),
		})
	}
}

// AdvanceAndReap yields (instance, progress) to visit for every due,
// unexpired member, then removes expired members. Members still inside
// their jitter delay are retained but not yielded. Removal happens after
// the visiting pass, so visit sees a stable membership.
func (p *Pool) AdvanceAndReap(now time.Time, visit func(Instance, float64)) {
	if visit != nil {
		for _, in := range p.members {
			if in.Due(now) && !in.Expired(now) {
				visit(in, in.Progress(now))
			}
		}
	}
	kept := p.members[:0]
	for _, in := range p.members {
		if !in.Expired(now) {
			kept = append(kept, in)
		}
	}
	p.members = kept
}

// Len returns the number of live instances, including those still waiting
// out their jitter delay.
func (p *Pool) Len() int { return len(p.members) }

// Empty reports whether no instances are alive. It gates the render clock.
func (p *Pool) Empty() bool { return len(p.members) == 0 }
