package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDriverStartsPaused(t *testing.T) {
	d := NewDriver(newTestPool(0))
	require.True(t, d.Paused())
}

func TestDriverResumesOnSpawn(t *testing.T) {
	p := newTestPool(0)
	d := NewDriver(p)
	resumes := 0
	d.OnResume = func() { resumes++ }

	t0 := time.Unix(100, 0)
	p.SpawnBatch(t0, 2, heartFactory)
	d.NotifySpawn()
	require.False(t, d.Paused())
	require.Equal(t, 1, resumes)

	// A second batch while running does not re-fire the transition.
	p.SpawnBatch(t0, 2, heartFactory)
	d.NotifySpawn()
	require.Equal(t, 1, resumes)
}

func TestDriverNotifySpawnWithEmptyPoolStaysPaused(t *testing.T) {
	d := NewDriver(newTestPool(0))
	d.NotifySpawn()
	require.True(t, d.Paused())
}

func TestDriverPausesExactlyOnceWhenDrained(t *testing.T) {
	p := newTestPool(0)
	d := NewDriver(p)
	pauses := 0
	d.OnPause = func() { pauses++ }

	t0 := time.Unix(100, 0)
	p.SpawnBatch(t0, 3, heartFactory)
	d.NotifySpawn()

	require.True(t, d.Tick(t0.Add(750*time.Millisecond), nil))
	require.False(t, d.Paused())
	require.Zero(t, pauses)

	require.True(t, d.Tick(t0.Add(1500*time.Millisecond), nil))
	require.True(t, d.Paused())
	require.Equal(t, 1, pauses)

	// Further ticks are no-ops: no work, no repeated transition.
	require.False(t, d.Tick(t0.Add(2*time.Second), nil))
	require.Equal(t, 1, pauses)
}

func TestDriverTickWhilePausedDoesNoWork(t *testing.T) {
	p := newTestPool(0)
	d := NewDriver(p)
	visited := false
	require.False(t, d.Tick(time.Unix(100, 0), func(Instance, float64) { visited = true }))
	require.False(t, visited)
}

func TestDriverResumesAgainAfterPause(t *testing.T) {
	p := newTestPool(0)
	d := NewDriver(p)

	t0 := time.Unix(100, 0)
	p.SpawnBatch(t0, 1, heartFactory)
	d.NotifySpawn()
	d.Tick(t0.Add(1500*time.Millisecond), nil)
	require.True(t, d.Paused())

	t1 := t0.Add(5 * time.Second)
	p.SpawnBatch(t1, 1, heartFactory)
	d.NotifySpawn()
	require.False(t, d.Paused())
}
