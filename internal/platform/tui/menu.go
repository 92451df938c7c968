package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// MenuItem identifies a row of the start menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuDifficulty
	MenuQuit
	menuItemCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorAccent.ANSI())).
			MarginBottom(1)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorText.ANSI()))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorPieceL.ANSI()))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorDim.ANSI())).MarginTop(1)
)

// MenuModel is the start menu: play, pick a difficulty, or quit.
type MenuModel struct {
	cursor     MenuItem
	difficulty config.DifficultyPreset
	width      int
	height     int
	keys       MenuKeyMap
	help       help.Model
	started    bool
	quitting   bool
}

// NewMenuModel creates a menu with the given starting difficulty.
func NewMenuModel(difficulty config.DifficultyPreset, width, height int) MenuModel {
	if _, err := config.ParseDifficulty(string(difficulty)); err != nil || difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	return MenuModel{
		difficulty: difficulty,
		width:      width,
		height:     height,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + menuItemCount - 1) % menuItemCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % menuItemCount
	case key.Matches(msg, m.keys.Next):
		if m.cursor == MenuDifficulty {
			m.difficulty = m.difficulty.Next()
		}
	case key.Matches(msg, m.keys.Prev):
		if m.cursor == MenuDifficulty {
			m.difficulty = prevPreset(m.difficulty)
		}
	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case MenuPlay:
			m.started = true
		case MenuDifficulty:
			m.difficulty = m.difficulty.Next()
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// prevPreset steps backwards through the presets.
func prevPreset(p config.DifficultyPreset) config.DifficultyPreset {
	all := config.Presets()
	for i, known := range all {
		if known == p {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return config.DifficultyNormal
}

// View renders the menu centered in the terminal.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	labels := [menuItemCount]string{
		MenuPlay:       "Play",
		MenuDifficulty: fmt.Sprintf("Difficulty: < %s >", m.difficulty.Label()),
		MenuQuit:       "Quit",
	}
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		if MenuItem(i) == m.cursor {
			lines = append(lines, menuSelectedStyle.Render("> "+label))
			continue
		}
		lines = append(lines, menuItemStyle.Render("  "+label))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("B L O C K F A L L"),
		strings.Join(lines, "\n"),
		menuHintStyle.Render(m.help.View(m.keys)),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Started returns true once Play was chosen.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// Cursor returns the highlighted row.
func (m MenuModel) Cursor() MenuItem {
	return m.cursor
}
