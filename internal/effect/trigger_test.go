package effect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWatcherFirstObservationArmsWithoutFiring(t *testing.T) {
	var w Watcher[int]
	require.False(t, w.Changed(7))
}

func TestWatcherFiresOncePerChange(t *testing.T) {
	var w Watcher[int]
	w.Changed(0)

	require.True(t, w.Changed(1))
	require.False(t, w.Changed(1))
	require.False(t, w.Changed(1))
	require.True(t, w.Changed(2))
}

func TestWatcherRapidChangesEachFire(t *testing.T) {
	var w Watcher[int]
	w.Changed(0)
	for i := 1; i <= 10; i++ {
		require.True(t, w.Changed(i))
	}
}

func TestWatcherWorksWithStrings(t *testing.T) {
	var w Watcher[string]
	w.Changed("a")
	require.True(t, w.Changed("b"))
	require.False(t, w.Changed("b"))
	require.True(t, w.Changed("a"))
}
