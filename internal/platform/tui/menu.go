package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// MenuChoice is an entry on the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

var menuLabels = map[MenuChoice]string{
	MenuPlay:   "Play",
	MenuScores: "High Scores",
	MenuQuit:   "Quit",
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	gameID   string
	title    string
	items    []MenuChoice
	cursor   int
	best     int
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	chosen   MenuChoice
}

// NewMenuModel creates a start menu for one game. The best score is read
// once from store when it is available.
func NewMenuModel(gameID, title string, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		gameID: gameID,
		title:  title,
		items:  []MenuChoice{MenuPlay, MenuScores, MenuQuit},
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		m.chosen = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.chosen = m.items[m.cursor]
		if m.chosen == MenuQuit {
			m.quitting = true
		}
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.chosen != MenuNone {
		return ""
	}

	var b strings.Builder
	title := strings.Join(strings.Split(strings.ToUpper(m.title), ""), " ")

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(menuDim.Render(centerText(fmt.Sprintf("Best: %d", m.best), m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + menuLabels[item]
		if i == m.cursor {
			b.WriteString(menuCursor.Render(centerText("> "+menuLabels[item], m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDim.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the selected entry, or MenuNone while the menu is open.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(gameID, title string, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(gameID, title, store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok || m.Chosen() == MenuNone {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Chosen(), Config: m.Config()}, nil
}
