package tetris

// StateType names the controller state seen by the renderer.
type StateType string

const (
	StateFalling  StateType = "falling"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// Snapshot is a read-only copy of everything a renderer draws.
// It is also used by determinism tests.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	Board    [][]Cell // Visible rows, top to bottom
	Piece    Piece
	Cells    []Point // Board positions of the active piece
	GhostRow int
	Score    int
	Streak   int
	Lines    int
	Pieces   int
	Interval int
	Level    int
	Paused   bool
	GameOver bool
	State    StateType
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StateFalling
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Width:    g.board.Width(),
		Height:   g.board.Height(),
		Board:    g.board.Rows(),
		Piece:    g.piece.Clone(),
		Cells:    g.piece.Cells(),
		GhostRow: g.GhostRow(),
		Score:    g.scorer.Score(),
		Streak:   g.scorer.Streak(),
		Lines:    g.lines,
		Pieces:   g.pieces,
		Interval: g.interval,
		Level:    g.rules.Speed.Level(g.interval),
		Paused:   g.paused,
		GameOver: g.gameOver,
		State:    state,
	}
}
