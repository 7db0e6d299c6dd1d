package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/require"
)

func TestPopStreamsBoundedSamplesThenEnds(t *testing.T) {
	sr := beep.SampleRate(44100)
	s := Pop(sr, 880, 100*time.Millisecond)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			require.LessOrEqual(t, math.Abs(buf[i][0]), 0.4)
			require.Equal(t, buf[i][0], buf[i][1])
		}
		total += n
		if !ok {
			break
		}
	}
	require.Equal(t, sr.N(100*time.Millisecond), total)
	require.NoError(t, s.Err())
}

func TestPopDecays(t *testing.T) {
	sr := beep.SampleRate(44100)
	s := Pop(sr, 880, 300*time.Millisecond)

	n := sr.N(300 * time.Millisecond)
	buf := make([][2]float64, n)
	s.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for i := from; i < to; i++ {
			if a := math.Abs(buf[i][0]); a > m {
				m = a
			}
		}
		return m
	}
	require.Greater(t, peak(0, n/4), peak(3*n/4, n))
}

func TestDisabledPlayerIsNoop(t *testing.T) {
	pl := NewPlayer(false)
	require.NoError(t, pl.Play())
}
