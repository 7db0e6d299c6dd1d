package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueEmptyTrackReturnsStart(t *testing.T) {
	tr := Track{Start: 3}
	require.Equal(t, 3.0, tr.Value(0))
	require.Equal(t, 3.0, tr.Value(0.5))
	require.Equal(t, 3.0, tr.Value(1))
}

func TestValueStartsAtInitialValue(t *testing.T) {
	tr := Track{Keys: []Key{{Target: 1, Duration: 0.2}, {Target: 0, Duration: 0.8}}}
	require.Equal(t, 0.0, tr.Value(0))
}

func TestValueEaseMidpoint(t *testing.T) {
	// Cubic ease-in/ease-out passes through 0.5 at the segment midpoint.
	tr := Track{Keys: []Key{{Target: 1, Duration: 0.2}}}
	require.InDelta(t, 0.5, tr.Value(0.1), 1e-12)
}

func TestValueSegmentBoundaries(t *testing.T) {
	tr := Track{Keys: []Key{{Target: 10, Duration: 0.2}, {Target: -4, Duration: 0.3}}}

	// Second segment begins at the first segment's end value.
	require.InDelta(t, 10.0, tr.Value(0.2), 1e-12)
	// Midpoint of the second segment: halfway from 10 to -4.
	require.InDelta(t, 3.0, tr.Value(0.35), 1e-9)
	// Past all keys: hold the final target.
	require.Equal(t, -4.0, tr.Value(0.5))
	require.Equal(t, -4.0, tr.Value(1))
	require.Equal(t, -4.0, tr.Value(2))
}

func TestValueUnderCoveredTrackHolds(t *testing.T) {
	tr := Track{Keys: []Key{{Target: 7, Duration: 0.4}}}
	require.Equal(t, 7.0, tr.Value(0.4))
	require.Equal(t, 7.0, tr.Value(0.9))
	require.Equal(t, 7.0, tr.Value(1))
}

func TestValueMonotonicWithinSegment(t *testing.T) {
	tr := Track{Keys: []Key{{Target: 1, Duration: 1}}}
	prev := tr.Value(0)
	for i := 1; i <= 20; i++ {
		p := float64(i) * 0.05
		v := tr.Value(p)
		require.GreaterOrEqual(t, v, prev, "p=%v", p)
		prev = v
	}
	require.InDelta(t, 1.0, prev, 1e-12)
}

func TestValueIsPure(t *testing.T) {
	tr := Track{Keys: []Key{{Target: 5, Duration: 0.5}, {Target: 1, Duration: 0.5}}}
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		require.Equal(t, tr.Value(p), tr.Value(p))
	}
}

func TestClamp01(t *testing.T) {
	require.Equal(t, 0.0, Clamp01(-1))
	require.Equal(t, 0.25, Clamp01(0.25))
	require.Equal(t, 1.0, Clamp01(1.5))
}
