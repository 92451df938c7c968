package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/blockfall/internal/core"
)

// SampleRate is the rate every cue is generated at.
const SampleRate = beep.SampleRate(44100)

// Cue timing.
const (
	chimeNote1    = 90 * time.Millisecond
	chimeNote2    = 160 * time.Millisecond
	chimeAttack   = 5 * time.Millisecond
	chimeRelease  = 80 * time.Millisecond
	gameOverSweep = 700 * time.Millisecond
	gameOverGap   = 60 * time.Millisecond
	gameOverThud  = 250 * time.Millisecond
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSaw
	WaveSquare
)

// Cue returns a new streamer for the event at the given base-2 volume, or
// nil if the event has no sound. Each call returns a fresh, finite stream.
func Cue(e core.Event, volume float64) beep.Streamer {
	switch e {
	case core.EventLineClear:
		return LineClearCue(SampleRate, volume)
	case core.EventGameOver:
		return GameOverCue(SampleRate, volume)
	default:
		return nil
	}
}

// HasCue reports whether Cue returns a sound for e.
func HasCue(e core.Event) bool {
	return e == core.EventLineClear || e == core.EventGameOver
}

// LineClearCue is a rising two-note sine chime (E5 then A5).
func LineClearCue(sr beep.SampleRate, volume float64) beep.Streamer {
	first := shaped(sineNote(sr, 659.25, chimeNote1), sr, chimeNote1, chimeAttack, chimeRelease/2)
	second := shaped(sineNote(sr, 880.0, chimeNote2), sr, chimeNote2, chimeAttack, chimeRelease)
	return withVolume(beep.Seq(first, second), volume-1)
}

// GameOverCue is a descending saw sweep followed by a low square thud.
func GameOverCue(sr beep.SampleRate, volume float64) beep.Streamer {
	sweep := shaped(NewSweep(sr, 440, 110, gameOverSweep, WaveSaw), sr, gameOverSweep, 10*time.Millisecond, 200*time.Millisecond)
	thud := shaped(NewSweep(sr, 82.41, 55, gameOverThud, WaveSquare), sr, gameOverThud, 5*time.Millisecond, 150*time.Millisecond)
	return withVolume(beep.Seq(sweep, generators.Silence(sr.N(gameOverGap)), thud), volume-2)
}

// sineNote takes a fixed-length slice of an endless sine tone. It falls
// back to the local oscillator when the frequency is above Nyquist.
func sineNote(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return NewSweep(sr, freq, freq, d, WaveSine)
	}
	return beep.Take(sr.N(d), tone)
}

func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volume,
		Silent:   volume <= -10,
	}
}

// Sweep is an oscillator whose frequency moves linearly from one value to
// another over a fixed duration.
type Sweep struct {
	from, to float64
	wave     Wave
	rate     float64
	total    int
	pos      int
	phase    float64
}

// NewSweep creates a finite oscillator. from == to gives a steady tone.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration, wave Wave) *Sweep {
	return &Sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  float64(sr),
		total: sr.N(d),
	}
}

// Stream fills samples until the duration is used up.
func (s *Sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		var v float64
		switch s.wave {
		case WaveSaw:
			v = 2*s.phase - 1
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * s.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / s.rate
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (s *Sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known
// length and ends the stream at that length.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func shaped(s beep.Streamer, sr beep.SampleRate, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		s:       s,
		total:   sr.N(d),
		attack:  sr.N(attack),
		release: sr.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if remaining := e.total - e.pos; len(samples) > remaining {
		samples = samples[:remaining]
	}
	if len(samples) == 0 {
		return 0, false
	}
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }
