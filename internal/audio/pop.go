// Package audio synthesizes the short percussive blip played when a burst
// of particles spawns.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// pop is a beep.Streamer producing a sine burst with an exponential decay
// envelope.
type pop struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

// Pop returns a streamer playing a blip at freq for dur.
func Pop(sr beep.SampleRate, freq float64, dur time.Duration) beep.Streamer {
	return &pop{sr: sr, freq: freq, length: sr.N(dur)}
}

func (p *pop) Stream(samples [][2]float64) (int, bool) {
	if p.pos >= p.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if p.pos >= p.length {
			break
		}
		t := float64(p.pos) / float64(p.sr)
		v := math.Sin(2*math.Pi*p.freq*t) * math.Exp(-t*14) * 0.4
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
		n++
	}
	return n, true
}

func (p *pop) Err() error { return nil }

// Player owns the speaker and queues blips. Disabled players are no-ops so
// call sites need no branching.
type Player struct {
	sr       beep.SampleRate
	enabled  bool
	initDone bool
}

// NewPlayer builds a player at 44.1 kHz.
func NewPlayer(enabled bool) *Player {
	return &Player{sr: beep.SampleRate(44100), enabled: enabled}
}

// Play queues one blip, initializing the speaker on first use.
func (pl *Player) Play() error {
	if !pl.enabled {
		return nil
	}
	if !pl.initDone {
		if err := speaker.Init(pl.sr, pl.sr.N(time.Second/20)); err != nil {
			return err
		}
		pl.initDone = true
	}
	speaker.Play(Pop(pl.sr, 880, 300*time.Millisecond))
	return nil
}
