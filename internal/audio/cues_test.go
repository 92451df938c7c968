package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// drain streams s to the end and returns the sample count and the largest
// absolute sample. It fails the test if s never ends.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	limit := SampleRate.N(5 * time.Second)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, abs(buf[i][0]), abs(buf[i][1]))
		}
		total += n
		if !ok {
			break
		}
		require.Less(t, total, limit, "stream did not end")
	}
	require.NoError(t, s.Err())
	return total, peak
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestLineClearCueIsFinite(t *testing.T) {
	n, peak := drain(t, Cue(core.EventLineClear, 0))
	assert.Equal(t, SampleRate.N(chimeNote1)+SampleRate.N(chimeNote2), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.0)
}

func TestGameOverCueIsFinite(t *testing.T) {
	n, peak := drain(t, Cue(core.EventGameOver, 0))
	want := SampleRate.N(gameOverSweep) + SampleRate.N(gameOverGap) + SampleRate.N(gameOverThud)
	assert.Equal(t, want, n)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestQuietVolumeSilences(t *testing.T) {
	_, peak := drain(t, Cue(core.EventLineClear, -20))
	assert.Zero(t, peak)
}

func TestEventsWithoutCue(t *testing.T) {
	for _, e := range []core.Event{core.EventNone, core.EventLock} {
		assert.Nil(t, Cue(e, 0), e.String())
		assert.False(t, HasCue(e))
	}
	assert.True(t, HasCue(core.EventLineClear))
	assert.True(t, HasCue(core.EventGameOver))
}

func TestSweepShapes(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"saw", WaveSaw},
		{"square", WaveSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSweep(SampleRate, 440, 220, 50*time.Millisecond, tc.wave)
			n, peak := drain(t, s)
			assert.Equal(t, SampleRate.N(50*time.Millisecond), n)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	s := NewSweep(SampleRate, 220, 220, 10*time.Millisecond, WaveSquare)
	buf := make([][2]float64, 100)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		v := buf[i][0]
		assert.True(t, v == 1 || v == -1, "sample %d = %f", i, v)
	}
}

func TestEnvelopeEndsAtDuration(t *testing.T) {
	// The sweep is longer than the envelope; the envelope cuts it.
	inner := NewSweep(SampleRate, 440, 440, time.Second, WaveSine)
	env := shaped(inner, SampleRate, 20*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond)

	n, _ := drain(t, env)
	assert.Equal(t, SampleRate.N(20*time.Millisecond), n)
}

func TestEnvelopeStartsSilent(t *testing.T) {
	inner := NewSweep(SampleRate, 440, 440, 20*time.Millisecond, WaveSquare)
	env := shaped(inner, SampleRate, 20*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond)

	buf := make([][2]float64, 1)
	n, ok := env.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 1, n)
	assert.Zero(t, buf[0][0])
}
