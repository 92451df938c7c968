package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out, cmd
}

func TestMenuNavigationWraps(t *testing.T) {
	m := NewMenuModel(config.DifficultyNormal, 80, 24)
	assert.Equal(t, MenuPlay, m.Cursor())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, MenuQuit, m.Cursor())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, MenuPlay, m.Cursor())

	m, _ = menuUpdate(t, m, runeKey('j'))
	assert.Equal(t, MenuDifficulty, m.Cursor())
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(config.DifficultyNormal, 80, 24)
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyNormal, m.Difficulty(), "only the difficulty row changes it")

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyHard, m.Difficulty())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, config.DifficultyFixed, m.Difficulty())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, config.DifficultyEasy, m.Difficulty())

	assert.Contains(t, m.View(), "Difficulty: < Easy >")
}

func TestMenuSelectPlay(t *testing.T) {
	m := NewMenuModel("", 80, 24)
	assert.Equal(t, config.DifficultyNormal, m.Difficulty())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Started())
	assert.False(t, m.IsQuitting())
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(config.DifficultyHard, 80, 24)
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(config.DifficultyNormal, 0, 0)
	view := m.View()
	assert.Contains(t, view, "B L O C K F A L L")
	assert.Contains(t, view, "> Play")
	assert.Contains(t, view, "Difficulty: < Normal >")
	assert.Contains(t, view, "Quit")
}

func newTestApp(skipMenu bool) App {
	cfg := config.Default()
	return NewApp(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 11}, Options{}, skipMenu)
}

func appUpdate(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	out, ok := next.(App)
	require.True(t, ok)
	return out, cmd
}

func TestAppMenuToGameAndBack(t *testing.T) {
	a := newTestApp(false)
	assert.False(t, a.InGame())
	assert.Nil(t, a.Init())

	// Pick hard, then play.
	a, _ = appUpdate(t, a, tea.KeyMsg{Type: tea.KeyDown})
	a, _ = appUpdate(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a, _ = appUpdate(t, a, tea.KeyMsg{Type: tea.KeyUp})
	a, cmd := appUpdate(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.InGame())
	assert.NotNil(t, cmd, "game start schedules the first tick")
	assert.Equal(t, 25, a.game.game.Rules().Speed.BaseInterval)
	firstGen := a.game.gen

	// Pause, then back to the menu.
	a, _ = appUpdate(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a, _ = appUpdate(t, a, TickMsg{Gen: firstGen})
	a, _ = appUpdate(t, a, runeKey('b'))
	require.False(t, a.InGame())
	assert.Equal(t, config.DifficultyHard, a.menu.Difficulty(), "menu remembers the preset")

	// A new game gets a new tick generation.
	a, _ = appUpdate(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.InGame())
	assert.NotEqual(t, firstGen, a.game.gen)
}

func TestAppSkipMenu(t *testing.T) {
	a := newTestApp(true)
	require.True(t, a.InGame())
	assert.NotNil(t, a.Init())
	assert.Contains(t, a.View(), "Score")
}

func TestAppTracksResize(t *testing.T) {
	a := newTestApp(false)
	a, _ = appUpdate(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	a, _ = appUpdate(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.InGame())
	assert.Equal(t, 120, a.game.screen.Width())
}

func TestAppQuitFromGame(t *testing.T) {
	a := newTestApp(true)
	a, cmd := appUpdate(t, a, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, a.View())
}
