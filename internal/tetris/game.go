// Package tetris implements the falling-block puzzle: the shape catalog,
// the bag randomizer, the board, the active piece controller, scoring and
// the frame-driven clock. It has no knowledge of terminals or windows;
// frontends feed it core.InputFrames and draw its snapshots.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Rules bundles every tunable of a session.
type Rules struct {
	Width      int
	Height     int
	HiddenRows int
	Scoring    ScoringRules
	Speed      SpeedRules
	Ghost      bool // Draw the landing position in the terminal renderer
}

// DefaultRules returns the classic 10x20 board with default scoring and speed.
func DefaultRules() Rules {
	return Rules{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		HiddenRows: DefaultHiddenRows,
		Scoring:    DefaultScoringRules(),
		Speed:      DefaultSpeedRules(),
	}
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sends lock, clear and game-over diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game is the state of one session: board, randomizer, active piece,
// score and clock. It is mutated only through its methods, from a single
// goroutine.
type Game struct {
	rules  Rules
	logger *log.Logger

	rng    *rand.Rand
	board  *Board
	bag    *Bag
	piece  Piece
	scorer *Scorer

	tick     uint64 // Frames since reset
	frame    int    // Frames since the last gravity step
	interval int    // Current gravity interval in frames
	lines    int    // Rows cleared
	pieces   int    // Pieces locked

	paused   bool
	gameOver bool
	events   []core.Event

	screenW int
	screenH int
}

// New creates a game with the given rules. Call Reset before stepping.
func New(rules Rules, opts ...Option) *Game {
	g := &Game{
		rules:  rules,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Reset discards all state and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(g.rules.Width, g.rules.Height, g.rules.HiddenRows)
	g.bag = NewBag(g.rng)
	g.scorer = NewScorer(g.rules.Scoring)
	g.tick = 0
	g.frame = 0
	g.interval = g.rules.Speed.Interval(0)
	g.lines = 0
	g.pieces = 0
	g.paused = false
	g.gameOver = false
	g.events = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.spawn()
	g.logger.Debug("game reset", "seed", cfg.Seed, "first", g.piece.Kind)
}

// Resize updates the terminal dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// spawn takes the next kind from the bag and places it above the board.
func (g *Game) spawn() {
	g.piece = SpawnPiece(g.bag.Next(), g.board.Width())
}

// controllable reports whether the active piece accepts commands.
func (g *Game) controllable() bool {
	return !g.gameOver && !g.paused
}

// MoveHorizontal shifts the piece by delta columns if the new position is
// valid. Returns whether the piece moved.
func (g *Game) MoveHorizontal(delta int) bool {
	if !g.controllable() {
		return false
	}
	col := g.piece.Col + delta
	if !g.board.IsValidPlacement(g.piece.Matrix, g.piece.Row, col) {
		return false
	}
	g.piece.Col = col
	return true
}

// Rotate turns the piece clockwise in place if the rotated matrix fits.
// There are no wall kicks. Returns whether the piece rotated.
func (g *Game) Rotate() bool {
	if !g.controllable() {
		return false
	}
	rotated := RotateMatrix(g.piece.Matrix)
	if !g.board.IsValidPlacement(rotated, g.piece.Row, g.piece.Col) {
		return false
	}
	g.piece.Matrix = rotated
	return true
}

// SoftDrop moves the piece down one row, or locks it where it is when the
// row below is blocked. Returns whether a lock occurred.
func (g *Game) SoftDrop() bool {
	if !g.controllable() {
		return false
	}
	return g.advance()
}

// advance is the single gravity step shared by soft drop, hard drop and
// the clock.
func (g *Game) advance() bool {
	row := g.piece.Row + 1
	if g.board.IsValidPlacement(g.piece.Matrix, row, g.piece.Col) {
		g.piece.Row = row
		return false
	}
	g.lockPiece()
	return true
}

// HardDrop drops the piece to its resting row and locks it. Returns the
// number of rows travelled.
func (g *Game) HardDrop() int {
	if !g.controllable() {
		return 0
	}
	// Each step moves the piece down one row, so it must lock within
	// the full board height.
	limit := g.board.Height() + g.board.HiddenRows() + g.piece.Matrix.Size()
	for rows := 0; rows < limit; rows++ {
		if g.advance() {
			return rows
		}
	}
	g.lockPiece()
	return limit
}

// GhostRow returns the row the piece would lock on if hard dropped.
func (g *Game) GhostRow() int {
	row := g.piece.Row
	for g.board.IsValidPlacement(g.piece.Matrix, row+1, g.piece.Col) {
		row++
	}
	return row
}

// lockPiece writes the piece into the board, scores the result and either
// spawns the next piece or ends the game.
func (g *Game) lockPiece() {
	res := g.board.Lock(g.piece)
	if res.GameOver {
		g.gameOver = true
		g.emit(core.EventGameOver)
		g.logger.Debug("game over", "score", g.scorer.Score(), "lines", g.lines, "pieces", g.pieces)
		return
	}

	g.pieces++
	g.emit(core.EventLock)
	points := g.scorer.Award(res.Cleared)
	if res.Cleared > 0 {
		g.lines += res.Cleared
		for range res.Cleared {
			g.emit(core.EventLineClear)
		}
		g.logger.Debug("rows cleared",
			"rows", res.ClearedRows,
			"points", points,
			"streak", g.scorer.Streak(),
			"score", g.scorer.Score(),
		)
	}
	g.spawn()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// TogglePause suspends or resumes the clock. Has no effect after game over.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// Step advances the game by one frame. Actions are applied in arrival
// order; then, unless the game is paused or over, the frame counter
// advances and gravity runs once it exceeds the drop interval.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tick++

	for _, a := range in.Actions() {
		if a == core.ActionRestart {
			g.Reset(core.RuntimeConfig{
				Seed:    g.rng.Int63(),
				ScreenW: g.screenW,
				ScreenH: g.screenH,
			})
			return g.result()
		}
		g.apply(a)
	}

	if g.gameOver || g.paused {
		return g.result()
	}

	g.interval = g.rules.Speed.Interval(g.scorer.Score())
	g.frame++
	if g.frame > g.interval {
		g.advance()
		g.frame = 0
	}

	return g.result()
}

// apply runs one input action.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.TogglePause()
	case core.ActionLeft:
		g.MoveHorizontal(-1)
	case core.ActionRight:
		g.MoveHorizontal(1)
	case core.ActionRotate:
		g.Rotate()
	case core.ActionSoftDrop:
		g.SoftDrop()
	case core.ActionHardDrop:
		g.HardDrop()
	}
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorer.Score(),
		Level:    g.rules.Speed.Level(g.interval),
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *Board {
	return g.board
}

// Piece returns a copy of the active piece.
func (g *Game) Piece() Piece {
	return g.piece.Clone()
}

// Score returns the current score.
func (g *Game) Score() int { return g.scorer.Score() }

// Streak returns the current clear streak.
func (g *Game) Streak() int { return g.scorer.Streak() }

// Interval returns the current gravity interval in frames.
func (g *Game) Interval() int { return g.interval }

// Paused reports whether the clock is suspended.
func (g *Game) Paused() bool { return g.paused }

// GameOver reports whether the session has ended.
func (g *Game) GameOver() bool { return g.gameOver }
