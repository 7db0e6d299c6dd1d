package effect

import "time"

// State is the render driver's scheduling state.
type State uint8

const (
	// Paused means no frame work is scheduled; the effect costs nothing.
	Paused State = iota
	// Running means each frame advances and draws the pool.
	Running
)

// Driver is the render/tick state machine. It runs only while its pool is
// non-empty: a spawn resumes it, the reap pass that drains the pool pauses
// it. Transitions happen synchronously at those two boundaries, never
// mid-iteration.
type Driver struct {
	pool  *Pool
	state State

	// OnResume and OnPause, when set, fire exactly once per transition.
	// The host can use them to arm or disarm its animation clock.
	OnResume func()
	OnPause  func()
}

// NewDriver builds a paused driver over pool.
func NewDriver(pool *Pool) *Driver {
	return &Driver{pool: pool, state: Paused}
}

// Paused reports whether the driver is idle. The host's animation clock
// should deliver frames only while this is false.
func (d *Driver) Paused() bool { return d.state == Paused }

// NotifySpawn must be called after a spawn batch. It resumes the driver on
// the empty→non-empty transition.
func (d *Driver) NotifySpawn() {
	if d.state == Paused && !d.pool.Empty() {
		d.state = Running
		if d.OnResume != nil {
			d.OnResume()
		}
	}
}

// Tick runs one frame: advance every due member through visit, reap the
// expired, and pause if the pool drained. It reports whether any work was
// done; while paused it returns immediately.
func (d *Driver) Tick(now time.Time, visit func(Instance, float64)) bool {
	if d.state == Paused {
		return false
	}
	d.pool.AdvanceAndReap(now, visit)
	if d.pool.Empty() {
		d.state = Paused
		if d.OnPause != nil {
			d.OnPause()
		}
	}
	return true
}
