package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Synth plays cues through the default audio device. All cues share one
// mixer that the speaker drains on its own goroutine.
type Synth struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	logger *log.Logger
	closed bool
}

// NewSynth opens the audio device. volume is a base-2 gain exponent.
func NewSynth(volume float64, logger *log.Logger) (*Synth, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: open speaker: %w", err)
	}

	s := &Synth{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	speaker.Play(s.mixer)
	logger.Debug("audio ready", "rate", int(SampleRate), "volume", volume)
	return s, nil
}

// Play queues the cue for e. Events without a cue are ignored.
func (s *Synth) Play(e core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	cue := Cue(e, s.volume)
	if cue == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(cue)
	speaker.Unlock()
	s.logger.Debug("cue", "event", e)
}

// Close silences the mixer and releases the device.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// Open returns a Synth when enabled and the device opens, and Nop
// otherwise. Device failures are logged, not returned.
func Open(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Nop{}
	}
	synth, err := NewSynth(volume, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return Nop{}
	}
	return synth
}
