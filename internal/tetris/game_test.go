package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(DefaultRules())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

// setPiece replaces the active piece with a freshly spawned kind.
func setPiece(g *Game, kind Kind) {
	g.piece = SpawnPiece(kind, g.board.Width())
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func countEvents(res core.StepResult, e core.Event) int {
	n := 0
	for _, ev := range res.Events {
		if ev == e {
			n++
		}
	}
	return n
}

func bottomRows(b *Board, n int) string {
	lines := strings.Split(b.String(), "\n")
	return strings.Join(lines[len(lines)-n:], "\n")
}

func TestResetSpawnsPiece(t *testing.T) {
	g := newTestGame(t, 1)

	p := g.Piece()
	assert.Equal(t, SpawnRow, p.Row)
	assert.Equal(t, SpawnColumn(DefaultWidth, p.Matrix.Size()), p.Col)
	assert.Zero(t, g.Score())
	assert.Equal(t, 40, g.Interval())
	assert.Equal(t, 1, g.State().Level)
	assert.False(t, g.GameOver())
}

func TestSquaresStackWithoutClearing(t *testing.T) {
	g := newTestGame(t, 1)

	for range 2 {
		setPiece(g, Square)
		for range 4 {
			require.True(t, g.MoveHorizontal(-1))
		}
		assert.False(t, g.MoveHorizontal(-1), "left wall")
		g.HardDrop()
	}

	want := "OO........\nOO........\nOO........\nOO........"
	assert.Equal(t, want, bottomRows(g.Board(), 4))
	assert.True(t, g.Board().Cell(15, 0).Empty())
	assert.Zero(t, g.Score())
	assert.Zero(t, g.State().Lines)
	assert.Equal(t, 2, g.Snapshot().Pieces)
}

func TestCompletingRowScores(t *testing.T) {
	g := newTestGame(t, 1)
	require.NoError(t, g.board.Fill(
		"T.........",
		"JJJJJJJJ..",
	))
	setPiece(g, Square)
	for range 4 {
		require.True(t, g.MoveHorizontal(1))
	}

	res := g.Step(frame(core.ActionHardDrop))

	assert.Equal(t, 3000, res.State.Score)
	assert.Equal(t, 1, res.State.Lines)
	assert.True(t, res.Has(core.EventLock))
	assert.Equal(t, 1, countEvents(res, core.EventLineClear))
	assert.Equal(t, "..........\nT.......OO", bottomRows(g.Board(), 2))
	assert.Equal(t, 1, g.Streak())
}

func TestMultiRowClearRaisesEventPerRow(t *testing.T) {
	g := newTestGame(t, 1)
	require.NoError(t, g.board.Fill(
		"IIIIIIIII.",
		"OOOOOOOOO.",
	))
	g.piece = Piece{Kind: Long, Matrix: verticalLong(), Row: SpawnRow, Col: 7}

	res := g.Step(frame(core.ActionHardDrop))

	assert.Equal(t, 2, countEvents(res, core.EventLineClear))
	assert.Equal(t, 3000, res.State.Score, "a lock scores once regardless of rows")
	assert.Equal(t, 2, res.State.Lines)
}

func TestGravityWaitsForInterval(t *testing.T) {
	g := newTestGame(t, 1)
	empty := core.NewInputFrame()

	for range 40 {
		g.Step(empty)
	}
	assert.Equal(t, SpawnRow, g.Piece().Row, "frame counter must exceed the interval")

	g.Step(empty)
	assert.Equal(t, SpawnRow+1, g.Piece().Row)

	for range 41 {
		g.Step(empty)
	}
	assert.Equal(t, SpawnRow+2, g.Piece().Row)
}

func TestActionsApplyInOrder(t *testing.T) {
	g := newTestGame(t, 1)
	setPiece(g, Square)

	g.Step(frame(core.ActionLeft, core.ActionLeft, core.ActionRight))
	assert.Equal(t, 3, g.Piece().Col)
}

func TestRotateHasNoWallKick(t *testing.T) {
	g := newTestGame(t, 1)
	g.piece = Piece{Kind: Long, Matrix: verticalLong(), Row: 5, Col: -2}

	assert.False(t, g.Rotate())
	assert.True(t, g.Piece().Matrix.Equal(verticalLong()))

	g.piece.Col = 3
	assert.True(t, g.Rotate())
}

func TestSoftDropLocksWhenBlocked(t *testing.T) {
	g := newTestGame(t, 1)
	g.piece = Piece{Kind: Square, Matrix: parseMatrix("##", "##"), Row: 17, Col: 0}

	assert.False(t, g.SoftDrop())
	assert.Equal(t, 18, g.Piece().Row)

	assert.True(t, g.SoftDrop())
	assert.Equal(t, "OO........\nOO........", bottomRows(g.Board(), 2))
	assert.Equal(t, SpawnRow, g.Piece().Row, "next piece spawned")
}

func TestHardDropIsBounded(t *testing.T) {
	g := newTestGame(t, 1)
	setPiece(g, Square)

	rows := g.HardDrop()
	assert.Equal(t, DefaultHeight, rows)
	assert.Equal(t, 1, g.Snapshot().Pieces)
}

func TestGhostRow(t *testing.T) {
	g := newTestGame(t, 1)
	require.NoError(t, g.board.Fill("OO........"))
	setPiece(g, Square)

	assert.Equal(t, 18, g.GhostRow())
	for range 4 {
		g.MoveHorizontal(-1)
	}
	assert.Equal(t, 17, g.GhostRow())
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	g := newTestGame(t, 1)
	g.board.Set(0, 4, Occupied(J))
	g.board.Set(0, 5, Occupied(J))
	setPiece(g, Square)

	res := g.Step(frame(core.ActionSoftDrop))

	assert.True(t, res.State.GameOver)
	assert.True(t, res.Has(core.EventGameOver))
	assert.Equal(t, StateGameOver, g.Snapshot().State)
	assert.True(t, g.Board().Cell(-1, 4).Empty(), "nothing written above the top")

	// Only restart is honored once the game has ended.
	assert.False(t, g.MoveHorizontal(-1))
	assert.Zero(t, g.HardDrop())
	g.TogglePause()
	assert.False(t, g.Paused())

	res = g.Step(frame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Zero(t, res.State.Score)
	assert.True(t, g.Board().Cell(0, 4).Empty())
}

func TestPauseFreezesGravityAndInput(t *testing.T) {
	g := newTestGame(t, 1)
	setPiece(g, T)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)

	for range 200 {
		g.Step(frame(core.ActionLeft, core.ActionSoftDrop))
	}
	p := g.Piece()
	assert.Equal(t, SpawnRow, p.Row)
	assert.Equal(t, 3, p.Col)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.True(t, g.MoveHorizontal(-1))
}

func TestRestartClearsSession(t *testing.T) {
	g := newTestGame(t, 1)
	require.NoError(t, g.board.Fill("T.........", "JJJJJJJJ.."))
	setPiece(g, Square)
	for range 4 {
		g.MoveHorizontal(1)
	}
	g.HardDrop()
	require.Equal(t, 3000, g.Score())

	res := g.Step(frame(core.ActionRestart, core.ActionLeft))

	assert.Zero(t, res.State.Score)
	assert.Zero(t, res.State.Lines)
	assert.Zero(t, g.Streak())
	assert.Equal(t, strings.Repeat("..........\n", DefaultHeight-1)+"..........", g.Board().String())
	assert.Equal(t, SpawnRow, g.Piece().Row)
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i%97 == 0:
			return frame(core.ActionHardDrop)
		case i%13 == 0:
			return frame(core.ActionRotate)
		case i%7 == 0:
			return frame(core.ActionLeft)
		case i%5 == 0:
			return frame(core.ActionRight, core.ActionSoftDrop)
		}
		return core.NewInputFrame()
	}

	a := newTestGame(t, 42)
	b := newTestGame(t, 42)
	for i := range 3000 {
		a.Step(script(i))
		b.Step(script(i))
	}

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSpeedIncreasesWithScore(t *testing.T) {
	g := newTestGame(t, 1)
	g.scorer.score = 5000

	g.Step(core.NewInputFrame())
	assert.Equal(t, 35, g.Interval())
	assert.Equal(t, 6, g.State().Level)
}

func TestFixedSpeedRules(t *testing.T) {
	rules := DefaultRules()
	rules.Speed.Progression = false
	g := New(rules)
	g.Reset(core.RuntimeConfig{Seed: 3})
	g.scorer.score = 90000

	g.Step(core.NewInputFrame())
	assert.Equal(t, 40, g.Interval())
	assert.Equal(t, 1, g.State().Level)
}
