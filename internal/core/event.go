package core

// Event is a notification raised by the game during a frame.
// Platforms translate events into side effects such as sound cues.
type Event int

const (
	EventNone      Event = iota
	EventLock            // A piece was written into the board
	EventLineClear       // One row was cleared (raised once per row)
	EventGameOver        // The game ended
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventLock:
		return "Lock"
	case EventLineClear:
		return "LineClear"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
