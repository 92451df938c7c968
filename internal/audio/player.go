// Package audio plays the synthesized line-clear and game-over cues.
package audio

import "github.com/vovakirdan/blockfall/internal/core"

// Player receives game events and makes noise for the ones it knows.
// Play must not block the caller.
type Player interface {
	Play(e core.Event)
	Close() error
}

// Nop is a silent Player, used for SSH sessions, --mute and when no audio
// device is available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Event) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// PlayResult plays each distinct event of a frame once, in the order it
// first appeared. Several rows cleared by one lock sound as a single cue.
func PlayResult(p Player, res core.StepResult) {
	if p == nil || len(res.Events) == 0 {
		return
	}
	var played []core.Event
	for _, e := range res.Events {
		if !HasCue(e) || contains(played, e) {
			continue
		}
		played = append(played, e)
		p.Play(e)
	}
}

func contains(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
