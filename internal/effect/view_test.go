package effect

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestView(count int) *View {
	opts := DefaultOptions()
	opts.Count = count
	opts.MaxJitter = 0
	return NewView(opts, heartFactory, nil, rand.New(rand.NewSource(1)))
}

func TestViewBurstSpawnsAndResumes(t *testing.T) {
	v := newTestView(3)
	require.True(t, v.Paused())
	require.Zero(t, v.Len())

	v.Burst(time.Unix(100, 0))
	require.Equal(t, 3, v.Len())
	require.False(t, v.Paused())
}

func TestViewPausesAfterAllParticlesExpire(t *testing.T) {
	v := newTestView(3)
	t0 := time.Unix(100, 0)
	v.Burst(t0)

	v.Update(t0.Add(750 * time.Millisecond))
	require.Equal(t, 3, v.Len())
	require.False(t, v.Paused())

	v.Update(t0.Add(1500 * time.Millisecond))
	require.Zero(t, v.Len())
	require.True(t, v.Paused())
}

func TestViewRapidBurstsCoexist(t *testing.T) {
	v := newTestView(5)
	t0 := time.Unix(100, 0)
	v.Burst(t0)
	v.Burst(t0.Add(100 * time.Millisecond))
	require.Equal(t, 10, v.Len())
}

func TestViewDrawWithoutSymbolPanics(t *testing.T) {
	v := newTestView(2)
	t0 := time.Unix(100, 0)
	v.Burst(t0)
	v.Update(t0.Add(100 * time.Millisecond))

	// The symbol check fires before any draw target is touched.
	require.Panics(t, func() { v.Draw(nil, 0, 0) })
}

func TestViewDrawWithNoLiveParticlesIsNoop(t *testing.T) {
	v := newTestView(2)
	require.NotPanics(t, func() { v.Draw(nil, 0, 0) })
}

func TestViewSetCountAffectsNextBurst(t *testing.T) {
	v := newTestView(2)
	v.SetCount(9)
	v.Burst(time.Unix(100, 0))
	require.Equal(t, 9, v.Len())
}
